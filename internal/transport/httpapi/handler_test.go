package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"JaundiceAnalyzer/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubAnalyzer struct {
	err  error
	seen []string
}

func (s *stubAnalyzer) AnalyzeBatch(_ context.Context, urls []string) ([]domain.AnalysisResult, error) {
	s.seen = urls
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.AnalysisResult, 0, len(urls))
	for i, u := range urls {
		if i == 0 {
			out = append(out, domain.Succeeded(u, 120, 2.5))
			continue
		}
		out = append(out, domain.Failed(u, domain.StatusParsingError))
	}
	return out, nil
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON: %v (body: %s)", err, rr.Body.String())
	}
}

func TestAnalyzeMissingURLs(t *testing.T) {
	for _, path := range []string{"/", "/?urls=", "/?urls=%20,%20"} {
		rr := get(t, NewRouter(&stubAnalyzer{}, 10, nil), path)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rr.Code)
		}
		var resp ErrorResponse
		decode(t, rr, &resp)
		if resp.Error != errInvalidRequest {
			t.Fatalf("%s: unexpected error class %q", path, resp.Error)
		}
	}
}

func TestAnalyzeTooManyURLs(t *testing.T) {
	urls := make([]string, 11)
	for i := range urls {
		urls[i] = "https://inosmi.ru/a"
	}
	stub := &stubAnalyzer{}
	rr := get(t, NewRouter(stub, 10, nil), "/?urls="+url.QueryEscape(strings.Join(urls, ",")))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var resp ErrorResponse
	decode(t, rr, &resp)
	if resp.Error != errTooManyURLs {
		t.Fatalf("unexpected error class %q", resp.Error)
	}
	if resp.Message != "too many urls in request, should be 10 or less" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if stub.seen != nil {
		t.Fatalf("analyzer must not run for rejected request")
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	stub := &stubAnalyzer{}
	rr := get(t, NewRouter(stub, 10, nil), "/?urls=https://inosmi.ru/a,%20http://example.com")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := strings.Join(stub.seen, "|"); got != "https://inosmi.ru/a|http://example.com" {
		t.Fatalf("unexpected urls passed to analyzer: %s", got)
	}

	var raw struct {
		Results []map[string]any `json:"results"`
	}
	decode(t, rr, &raw)
	if len(raw.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(raw.Results))
	}

	ok := raw.Results[0]
	if ok["status"] != "OK" || ok["words_count"] != float64(120) || ok["score"] != 2.5 {
		t.Fatalf("unexpected ok result: %v", ok)
	}
	failed := raw.Results[1]
	if failed["status"] != "PARSING_ERROR" || failed["words_count"] != nil || failed["score"] != nil {
		t.Fatalf("unexpected failed result: %v", failed)
	}
	if _, present := failed["words_count"]; !present {
		t.Fatalf("words_count must be serialized as null")
	}
}

func TestAnalyzeInternalError(t *testing.T) {
	rr := get(t, NewRouter(&stubAnalyzer{err: errors.New("boom")}, 10, nil), "/?urls=https://inosmi.ru/a")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	rr := get(t, NewRouter(&stubAnalyzer{}, 10, nil), "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestParseURLs(t *testing.T) {
	got := parseURLs(" a , ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected urls: %q", got)
	}
}
