package vocabulary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"JaundiceAnalyzer/internal/domain"
)

// LoadChargedWords reads newline separated vocabularies and merges them into one set.
func LoadChargedWords(paths ...string) (domain.ChargedWords, error) {
	var words []string
	for _, path := range paths {
		loaded, err := loadFile(path)
		if err != nil {
			return domain.ChargedWords{}, err
		}
		words = append(words, loaded...)
	}
	return domain.NewChargedWords(words), nil
}

func loadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open charged words: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read charged words %s: %w", path, err)
	}
	return words, nil
}

// ReadWords returns one word per line, dropping line endings and blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
