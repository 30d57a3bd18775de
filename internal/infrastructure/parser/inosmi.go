package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"JaundiceAnalyzer/internal/extract"
)

const (
	inosmiArticleSelector = "article.article"
	inosmiBuzzSelector    = ".article-disclaimer, footer.article-footer, aside, script, style, noscript, figure"
)

var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "blockquote": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"section": {}, "header": {}, "footer": {}, "table": {}, "tr": {}, "td": {}, "th": {},
}

// InosmiExtractor pulls the article body out of inosmi.ru pages.
type InosmiExtractor struct{}

// NewInosmiExtractor builds the inosmi.ru adapter.
func NewInosmiExtractor() *InosmiExtractor {
	return &InosmiExtractor{}
}

// Name identifies the strategy inside the registry.
func (e *InosmiExtractor) Name() string {
	return "inosmi"
}

// Extract returns the plain text of the single article root found in html.
// The root selector may be overridden with the "selector" option.
func (e *InosmiExtractor) Extract(pageURL string, raw string, options map[string]string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: parse %s: %v", extract.ErrArticleNotFound, pageURL, err)
	}

	selector := options["selector"]
	if selector == "" {
		selector = inosmiArticleSelector
	}

	articles := doc.Find(selector)
	if articles.Length() != 1 {
		return "", fmt.Errorf("%w: %d %q roots on %s", extract.ErrArticleNotFound, articles.Length(), selector, pageURL)
	}

	article := articles.First()
	article.Find(inosmiBuzzSelector).Remove()

	return plainText(article), nil
}

func plainText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeText(&b, node)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}

	if n.Type == html.ElementNode {
		if _, ok := blockElements[n.Data]; ok {
			b.WriteByte(' ')
		}
	}
}
