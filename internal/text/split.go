package text

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"JaundiceAnalyzer/internal/ports"
)

// negationParticle survives the short-word filter so negations still count.
const negationParticle = "не"

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var quoteReplacer = strings.NewReplacer("«", "", "»", "", "…", "")

// ErrTimeout reports that normalization exceeded its time budget.
var ErrTimeout = errors.New("split by words: time budget exceeded")

// Splitter turns plain text into normalized tokens using a shared lemmatizer.
type Splitter struct {
	morph ports.Lemmatizer
	now   func() time.Time
}

// NewSplitter wires the lemmatizer; it is safe to share between jobs.
func NewSplitter(morph ports.Lemmatizer) *Splitter {
	return &Splitter{morph: morph, now: time.Now}
}

// Split cleans, lemmatizes and filters every whitespace-separated word of text.
// The elapsed time is checked after each word; once it exceeds budget the
// split is abandoned with ErrTimeout. A non-positive budget disables the check.
func (s *Splitter) Split(ctx context.Context, text string, budget time.Duration) ([]string, error) {
	start := s.now()
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	for _, field := range fields {
		normalized := s.morph.Lemma(cleanWord(field))
		if utf8.RuneCountInString(normalized) > 2 || normalized == negationParticle {
			words = append(words, normalized)
		}

		if budget > 0 && s.now().Sub(start) > budget {
			return nil, ErrTimeout
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return words, nil
}

func cleanWord(word string) string {
	word = quoteReplacer.Replace(word)
	return strings.Trim(word, asciiPunctuation)
}
