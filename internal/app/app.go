package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"JaundiceAnalyzer/internal/config"
	"JaundiceAnalyzer/internal/domain"
	"JaundiceAnalyzer/internal/extract"
	"JaundiceAnalyzer/internal/infrastructure/fetcher"
	"JaundiceAnalyzer/internal/infrastructure/morph"
	"JaundiceAnalyzer/internal/infrastructure/parser"
	"JaundiceAnalyzer/internal/infrastructure/vocabulary"
	"JaundiceAnalyzer/internal/logging"
	"JaundiceAnalyzer/internal/text"
	"JaundiceAnalyzer/internal/transport/httpapi"
	"JaundiceAnalyzer/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// ErrTooManyURLs rejects batches larger than the configured bound.
var ErrTooManyURLs = errors.New("too many urls")

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	analyzer *usecase.Analyzer
	logger   *slog.Logger
}

// New loads the shared vocabulary and lemmatizer once and builds the analyzer.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	charged, err := vocabulary.LoadChargedWords(cfg.Charged.Files...)
	if err != nil {
		return nil, fmt.Errorf("load charged words: %w", err)
	}
	baseLogger.Info("charged words loaded", "files", len(cfg.Charged.Files), "words", charged.Len())

	dictionary := morph.NewDictionary(nil)
	if cfg.Morph.Dictionary != "" {
		dictionary, err = morph.LoadDictionary(cfg.Morph.Dictionary)
		if err != nil {
			return nil, fmt.Errorf("load morph dictionary: %w", err)
		}
		baseLogger.Info("morph dictionary loaded", "forms", dictionary.Len())
	}

	registry := extract.NewRegistry()
	registry.Register(parser.NewInosmiExtractor())
	registry.Register(parser.NewReadabilityExtractor())

	router, err := parser.NewSiteRouter(registry, cfg.Sites, baseLogger.With("component", "extractor"))
	if err != nil {
		return nil, fmt.Errorf("build extractor router: %w", err)
	}

	analyzer, err := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Fetcher:      fetcher.NewHTTPFetcher(newHTTPClient(), cfg.Analysis.UserAgent),
		Extractor:    router,
		Normalizer:   text.NewSplitter(dictionary),
		Charged:      charged,
		FetchTimeout: cfg.Analysis.FetchTimeout.Duration,
		SplitTimeout: cfg.Analysis.SplitTimeout.Duration,
		Logger:       baseLogger.With("component", "analyzer"),
	})
	if err != nil {
		return nil, err
	}

	return &Application{cfg: cfg, analyzer: analyzer, logger: baseLogger}, nil
}

// Analyze runs a single batch outside of the HTTP surface, with the same
// batch size bound as the HTTP endpoint.
func (a *Application) Analyze(ctx context.Context, urls []string) ([]domain.AnalysisResult, error) {
	if limit := a.cfg.HTTP.MaxURLs; limit > 0 && len(urls) > limit {
		return nil, fmt.Errorf("%w: got %d, should be %d or less", ErrTooManyURLs, len(urls), limit)
	}
	return a.analyzer.AnalyzeBatch(ctx, urls)
}

// Handler returns the HTTP request surface.
func (a *Application) Handler() http.Handler {
	return httpapi.NewRouter(a.analyzer, a.cfg.HTTP.MaxURLs, a.logger.With("component", "http"))
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.logger.Info("http server stopped")
	return nil
}

func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	return &http.Client{Transport: transport}
}
