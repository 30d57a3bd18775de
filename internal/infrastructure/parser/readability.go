package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"JaundiceAnalyzer/internal/extract"
)

// ReadabilityExtractor is a generic adapter for sites without dedicated markup rules.
type ReadabilityExtractor struct{}

// NewReadabilityExtractor builds the generic adapter.
func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{}
}

// Name identifies the strategy inside the registry.
func (e *ReadabilityExtractor) Name() string {
	return "readability"
}

// Extract runs the readability heuristics; pages without readable content are not articles.
func (e *ReadabilityExtractor) Extract(pageURL string, raw string, _ map[string]string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url %s: %v", extract.ErrArticleNotFound, pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(raw), parsedURL)
	if err != nil {
		return "", fmt.Errorf("%w: readability %s: %v", extract.ErrArticleNotFound, pageURL, err)
	}

	content := strings.Join(strings.Fields(article.TextContent), " ")
	if content == "" {
		return "", fmt.Errorf("%w: no readable content on %s", extract.ErrArticleNotFound, pageURL)
	}
	return content, nil
}
