package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"JaundiceAnalyzer/internal/ports"
)

const (
	defaultUserAgent = "JaundiceAnalyzer/1.0"
	maxBodyBytes     = 8 << 20
)

// HTTPFetcher downloads article pages with a per-call deadline.
// The underlying client is shared between all jobs.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// ErrBodyTooLarge rejects pages that would only be scored partially.
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

var _ ports.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher wires an HTTP client; a nil client gets a pooled default.
func NewHTTPFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HTTPFetcher{client: client, userAgent: userAgent, maxBody: maxBodyBytes}
}

// Fetch returns the page body. Any failure caused by the timeout wraps
// context.DeadlineExceeded; transport errors and non-2xx statuses do not.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		if isTimeout(ctx, err) && !errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return "", err
	}
	return body, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(raw)) > f.maxBody {
		return "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, f.maxBody)
	}
	return string(raw), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
