package httpapi

import "JaundiceAnalyzer/internal/domain"

const (
	errInvalidRequest = "invalid request"
	errTooManyURLs    = "too many urls"
	errInternal       = "internal error"
)

// AnalyzeResponse wraps the result collection of one batch.
type AnalyzeResponse struct {
	Results []domain.AnalysisResult `json:"results"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
