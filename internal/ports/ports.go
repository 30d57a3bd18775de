package ports

import (
	"context"
	"time"
)

// Fetcher downloads the raw page of a single article.
type Fetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// Extractor turns raw markup into plain article text.
// Implementations report a markup mismatch with extract.ErrArticleNotFound.
type Extractor interface {
	Extract(pageURL string, html string) (string, error)
}

// Lemmatizer returns the dictionary form of a token.
// A single instance is shared by all jobs and must be safe for concurrent use.
type Lemmatizer interface {
	Lemma(word string) string
}

// Normalizer splits plain text into normalized tokens within a time budget.
type Normalizer interface {
	Split(ctx context.Context, text string, budget time.Duration) ([]string, error)
}
