package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"JaundiceAnalyzer/internal/domain"
	"JaundiceAnalyzer/internal/extract"
	"JaundiceAnalyzer/internal/ports"
	"JaundiceAnalyzer/internal/text"
)

// AnalyzerDeps wires shared collaborators into the orchestrator.
// Every dependency is shared read-only by all jobs of every batch.
type AnalyzerDeps struct {
	Fetcher      ports.Fetcher
	Extractor    ports.Extractor
	Normalizer   ports.Normalizer
	Charged      domain.ChargedWords
	FetchTimeout time.Duration
	SplitTimeout time.Duration
	Logger       *slog.Logger
}

// Analyzer scores batches of articles, one isolated job per URL.
type Analyzer struct {
	fetcher      ports.Fetcher
	extractor    ports.Extractor
	normalizer   ports.Normalizer
	charged      domain.ChargedWords
	fetchTimeout time.Duration
	splitTimeout time.Duration
	logger       *slog.Logger
}

// NewAnalyzer constructs the orchestration component.
func NewAnalyzer(deps AnalyzerDeps) (*Analyzer, error) {
	switch {
	case deps.Fetcher == nil:
		return nil, errors.New("analyzer: fetcher is required")
	case deps.Extractor == nil:
		return nil, errors.New("analyzer: extractor is required")
	case deps.Normalizer == nil:
		return nil, errors.New("analyzer: normalizer is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{
		fetcher:      deps.Fetcher,
		extractor:    deps.Extractor,
		normalizer:   deps.Normalizer,
		charged:      deps.Charged,
		fetchTimeout: deps.FetchTimeout,
		splitTimeout: deps.SplitTimeout,
		logger:       logger,
	}, nil
}

// AnalyzeBatch analyzes urls with the configured budgets.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, urls []string) ([]domain.AnalysisResult, error) {
	jobs := make([]domain.ArticleJob, 0, len(urls))
	for _, u := range urls {
		jobs = append(jobs, domain.ArticleJob{
			URL:          u,
			FetchTimeout: a.fetchTimeout,
			SplitTimeout: a.splitTimeout,
		})
	}
	return a.AnalyzeJobs(ctx, jobs)
}

// AnalyzeJobs runs every job concurrently and waits for all of them.
// The result holds exactly one entry per job, in completion order. Only an
// error outside the defined failure kinds aborts the batch.
func (a *Analyzer) AnalyzeJobs(ctx context.Context, jobs []domain.ArticleJob) ([]domain.AnalysisResult, error) {
	results := NewResults(len(jobs))
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("article %s: panic: %v", job.URL, r)
				}
			}()

			result, err := a.ProcessArticle(gctx, job)
			if err != nil {
				return err
			}
			results.Add(result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("batch aborted", "jobs", len(jobs), "error", err)
		return nil, err
	}

	a.logger.Info("batch analyzed", "jobs", len(jobs), "elapsed", time.Since(started))
	return results.Items(), nil
}

// ProcessArticle walks one job through fetch, extract, split and score.
// The first failing phase decides the status and skips the rest.
func (a *Analyzer) ProcessArticle(ctx context.Context, job domain.ArticleJob) (domain.AnalysisResult, error) {
	started := time.Now()

	html, status := a.fetch(ctx, job)
	if status != domain.StatusOK {
		return a.finish(job, domain.Failed(job.URL, status), started), nil
	}

	plain, status, err := a.extract(job, html)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if status != domain.StatusOK {
		return a.finish(job, domain.Failed(job.URL, status), started), nil
	}

	words, status, err := a.split(ctx, job, plain)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if status != domain.StatusOK {
		return a.finish(job, domain.Failed(job.URL, status), started), nil
	}

	score := text.JaundiceRate(words, a.charged)
	return a.finish(job, domain.Succeeded(job.URL, len(words), score), started), nil
}

func (a *Analyzer) fetch(ctx context.Context, job domain.ArticleJob) (string, domain.ProcessingStatus) {
	html, err := a.fetcher.Fetch(ctx, job.URL, job.FetchTimeout)
	if err == nil {
		return html, domain.StatusOK
	}

	if errors.Is(err, context.DeadlineExceeded) {
		a.logger.Info("fetch timed out", "url", job.URL, "timeout", job.FetchTimeout)
		return "", domain.StatusTimeout
	}
	a.logger.Info("fetch failed", "url", job.URL, "error", err)
	return "", domain.StatusFetchError
}

func (a *Analyzer) extract(job domain.ArticleJob, html string) (string, domain.ProcessingStatus, error) {
	plain, err := a.extractor.Extract(job.URL, html)
	if err == nil {
		return plain, domain.StatusOK, nil
	}

	if errors.Is(err, extract.ErrArticleNotFound) {
		a.logger.Info("article markup not recognized", "url", job.URL, "error", err)
		return "", domain.StatusParsingError, nil
	}
	return "", "", fmt.Errorf("extract %s: %w", job.URL, err)
}

func (a *Analyzer) split(ctx context.Context, job domain.ArticleJob, plain string) ([]string, domain.ProcessingStatus, error) {
	words, err := a.normalizer.Split(ctx, plain, job.SplitTimeout)
	if err == nil {
		return words, domain.StatusOK, nil
	}

	switch {
	case errors.Is(err, text.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		a.logger.Info("split timed out", "url", job.URL, "budget", job.SplitTimeout, "error", err)
		return nil, domain.StatusTimeout, nil
	case errors.Is(err, context.Canceled):
		// same status a cancelled fetch ends with
		a.logger.Info("split cancelled", "url", job.URL)
		return nil, domain.StatusFetchError, nil
	}
	return nil, "", fmt.Errorf("split %s: %w", job.URL, err)
}

func (a *Analyzer) finish(job domain.ArticleJob, result domain.AnalysisResult, started time.Time) domain.AnalysisResult {
	args := []any{"url", job.URL, "status", result.Status, "elapsed", time.Since(started)}
	if result.WordsCount != nil {
		args = append(args, "words_count", *result.WordsCount, "score", *result.Score)
	}
	a.logger.Debug("article processed", args...)
	return result
}
