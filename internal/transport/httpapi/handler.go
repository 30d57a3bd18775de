package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"JaundiceAnalyzer/internal/domain"
)

// BatchAnalyzer scores a batch of article URLs.
type BatchAnalyzer interface {
	AnalyzeBatch(ctx context.Context, urls []string) ([]domain.AnalysisResult, error)
}

// Handler serves the analysis endpoint.
type Handler struct {
	analyzer BatchAnalyzer
	maxURLs  int
	logger   *slog.Logger
}

// NewRouter builds a gin engine with the analysis and health routes.
func NewRouter(analyzer BatchAnalyzer, maxURLs int, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{analyzer: analyzer, maxURLs: maxURLs, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/", h.analyze)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func (h *Handler) analyze(c *gin.Context) {
	urls := parseURLs(c.Query("urls"))
	if len(urls) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   errInvalidRequest,
			Message: "query parameter urls is required",
		})
		return
	}
	if h.maxURLs > 0 && len(urls) > h.maxURLs {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   errTooManyURLs,
			Message: fmt.Sprintf("too many urls in request, should be %d or less", h.maxURLs),
		})
		return
	}

	results, err := h.analyzer.AnalyzeBatch(c.Request.Context(), urls)
	if err != nil {
		h.logger.Error("analyze batch", "urls", len(urls), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   errInternal,
			Message: "batch analysis failed",
		})
		return
	}

	if results == nil {
		results = []domain.AnalysisResult{}
	}
	c.JSON(http.StatusOK, AnalyzeResponse{Results: results})
}

// parseURLs splits a comma separated list, dropping blank entries.
func parseURLs(raw string) []string {
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(started),
		)
	}
}
