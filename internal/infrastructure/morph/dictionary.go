package morph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"JaundiceAnalyzer/internal/ports"
)

// Dictionary maps inflected word forms to their lemmas.
// It is built once and never mutated afterwards, so jobs may share it.
type Dictionary struct {
	lemmas map[string]string
	casers sync.Pool
}

var _ ports.Lemmatizer = (*Dictionary)(nil)

// NewDictionary builds a lemmatizer from an in-memory form→lemma table.
func NewDictionary(lemmas map[string]string) *Dictionary {
	d := &Dictionary{lemmas: make(map[string]string, len(lemmas))}
	d.casers.New = func() any {
		c := cases.Lower(language.Russian)
		return &c
	}
	for form, lemma := range lemmas {
		d.lemmas[d.fold(form)] = d.fold(lemma)
	}
	return d
}

// LoadDictionary reads a tab separated "form<TAB>lemma" file.
// Blank lines and lines starting with '#' are skipped.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	lemmas, err := readPairs(f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return NewDictionary(lemmas), nil
}

// Lemma returns the dictionary form of word; unknown forms are returned lower-cased.
func (d *Dictionary) Lemma(word string) string {
	folded := d.fold(word)
	if lemma, ok := d.lemmas[folded]; ok {
		return lemma
	}
	return folded
}

// Len returns the number of known word forms.
func (d *Dictionary) Len() int {
	return len(d.lemmas)
}

func (d *Dictionary) fold(word string) string {
	caser := d.casers.Get().(*cases.Caser)
	defer d.casers.Put(caser)
	return strings.ReplaceAll(caser.String(word), "ё", "е")
}

func readPairs(r io.Reader) (map[string]string, error) {
	lemmas := map[string]string{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		form, lemma, ok := strings.Cut(raw, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected form<TAB>lemma", line)
		}
		form, lemma = strings.TrimSpace(form), strings.TrimSpace(lemma)
		if form == "" || lemma == "" {
			return nil, fmt.Errorf("line %d: empty form or lemma", line)
		}
		lemmas[form] = lemma
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lemmas, nil
}
