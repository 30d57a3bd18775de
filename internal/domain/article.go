package domain

import "time"

// ArticleJob is a single unit of work: one URL analyzed under its own budget.
type ArticleJob struct {
	URL          string
	FetchTimeout time.Duration
	SplitTimeout time.Duration
}

// ProcessingStatus enumerates terminal states of an article job.
type ProcessingStatus string

const (
	StatusOK           ProcessingStatus = "OK"
	StatusFetchError   ProcessingStatus = "FETCH_ERROR"
	StatusParsingError ProcessingStatus = "PARSING_ERROR"
	StatusTimeout      ProcessingStatus = "TIMEOUT"
)

// AnalysisResult is the outcome of one article job.
// WordsCount and Score are set only when Status is StatusOK.
type AnalysisResult struct {
	URL        string           `json:"url"`
	Status     ProcessingStatus `json:"status"`
	WordsCount *int             `json:"words_count"`
	Score      *float64         `json:"score"`
}

// Succeeded builds an OK result carrying the word count and jaundice rate.
func Succeeded(url string, wordsCount int, score float64) AnalysisResult {
	return AnalysisResult{
		URL:        url,
		Status:     StatusOK,
		WordsCount: &wordsCount,
		Score:      &score,
	}
}

// Failed builds a result for a failure status; metrics stay empty.
func Failed(url string, status ProcessingStatus) AnalysisResult {
	return AnalysisResult{URL: url, Status: status}
}
