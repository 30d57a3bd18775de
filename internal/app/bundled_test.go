package app

import (
	"path/filepath"
	"testing"

	"JaundiceAnalyzer/internal/infrastructure/morph"
	"JaundiceAnalyzer/internal/infrastructure/vocabulary"
)

func TestBundledDictionaryMatchesVocabulary(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("..", "..", "charged_dict")
	charged, err := vocabulary.LoadChargedWords(
		filepath.Join(dir, "negative_words.txt"),
		filepath.Join(dir, "positive_words.txt"),
	)
	if err != nil {
		t.Fatalf("load bundled vocabulary: %v", err)
	}
	dict, err := morph.LoadDictionary(filepath.Join(dir, "lemmas.tsv"))
	if err != nil {
		t.Fatalf("load bundled dictionary: %v", err)
	}

	for _, form := range []string{"сенсации", "Скандалы", "шокирующие", "катастрофой"} {
		if lemma := dict.Lemma(form); !charged.Contains(lemma) {
			t.Fatalf("%q lemmatized to %q, which is not a charged word", form, lemma)
		}
	}
	if got := dict.Lemma("хочет"); got != "хотеть" {
		t.Fatalf("unexpected lemma for хочет: %q", got)
	}
}
