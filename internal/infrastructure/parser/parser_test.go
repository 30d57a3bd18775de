package parser

import (
	"errors"
	"strings"
	"testing"

	"JaundiceAnalyzer/internal/config"
	"JaundiceAnalyzer/internal/extract"
)

const inosmiPage = `
<html><body>
  <header>Главная</header>
  <article class="article">
    <h1>Заголовок статьи</h1>
    <div class="article-disclaimer">Материалы ИноСМИ содержат оценки</div>
    <p>Первый абзац<b>жирный</b>.</p><p>Второй абзац</p>
    <aside>Читайте также</aside>
    <script>var x = 1;</script>
    <footer class="article-footer">Подписывайтесь</footer>
  </article>
</body></html>`

func TestInosmiExtract(t *testing.T) {
	t.Parallel()

	text, err := NewInosmiExtractor().Extract("https://inosmi.ru/a.html", inosmiPage, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	want := "Заголовок статьи Первый абзацжирный. Второй абзац"
	if text != want {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestInosmiExtractNotFound(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no article":    `<html><body><p>Example Domain</p></body></html>`,
		"two articles":  `<article class="article">a</article><article class="article">b</article>`,
		"plain article": `<article>without class</article>`,
	}
	for name, page := range cases {
		_, err := NewInosmiExtractor().Extract("https://inosmi.ru/x", page, nil)
		if !errors.Is(err, extract.ErrArticleNotFound) {
			t.Fatalf("%s: expected ErrArticleNotFound, got %v", name, err)
		}
	}
}

func TestInosmiExtractCustomSelector(t *testing.T) {
	t.Parallel()

	page := `<div class="layout-article"><div class="article__text">Текст новости</div></div>`
	text, err := NewInosmiExtractor().Extract("https://inosmi.ru/x", page, map[string]string{"selector": "div.layout-article"})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if text != "Текст новости" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestReadabilityExtractNoContent(t *testing.T) {
	t.Parallel()

	_, err := NewReadabilityExtractor().Extract("https://example.com/", `<html><body></body></html>`, nil)
	if !errors.Is(err, extract.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestReadabilityExtract(t *testing.T) {
	t.Parallel()

	paragraph := strings.Repeat("Это длинный абзац текста статьи, который читается легко и содержит много слов. ", 20)
	page := `<html><head><title>Новость</title></head><body><article><h1>Новость</h1><p>` +
		paragraph + `</p><p>` + paragraph + `</p></article></body></html>`

	text, err := NewReadabilityExtractor().Extract("https://example.com/news", page, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !strings.Contains(text, "длинный абзац") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestSiteRouter(t *testing.T) {
	t.Parallel()

	reg := extract.NewRegistry()
	reg.Register(NewInosmiExtractor())
	reg.Register(NewReadabilityExtractor())

	router, err := NewSiteRouter(reg, []config.SiteConfig{
		{Name: "inosmi", Hosts: []string{"inosmi.ru"}, Extractor: "inosmi"},
	}, nil)
	if err != nil {
		t.Fatalf("NewSiteRouter error: %v", err)
	}

	for _, u := range []string{"https://inosmi.ru/a.html", "https://www.inosmi.ru/a.html", "https://m.inosmi.ru/a.html"} {
		if _, err := router.Extract(u, inosmiPage); err != nil {
			t.Fatalf("%s: unexpected error: %v", u, err)
		}
	}

	_, err = router.Extract("http://example.com", inosmiPage)
	if !errors.Is(err, extract.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound for unknown host, got %v", err)
	}
}

func TestSiteRouterUnknownExtractor(t *testing.T) {
	t.Parallel()

	_, err := NewSiteRouter(extract.NewRegistry(), []config.SiteConfig{
		{Name: "broken", Hosts: []string{"a.ru"}, Extractor: "missing"},
	}, nil)
	if !errors.Is(err, extract.ErrUnknownExtractor) {
		t.Fatalf("expected ErrUnknownExtractor, got %v", err)
	}
}
