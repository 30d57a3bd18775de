package domain

// ChargedWords is the immutable vocabulary of emotionally charged lemmas.
type ChargedWords struct {
	words map[string]struct{}
}

// NewChargedWords copies the given words into a lookup set.
func NewChargedWords(words []string) ChargedWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return ChargedWords{words: set}
}

// Contains reports whether word belongs to the vocabulary.
func (c ChargedWords) Contains(word string) bool {
	_, ok := c.words[word]
	return ok
}

// Len returns the vocabulary size.
func (c ChargedWords) Len() int {
	return len(c.words)
}
