package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrFetch indicates the document could not be retrieved.
var ErrFetch = errors.New("fetch: request failed")

// maxBodyBytes caps how much of a response is read into memory.
const maxBodyBytes = 16 << 20 // 16 MiB

// Fetcher retrieves documents with a shared client and rate limiter.
type Fetcher struct {
	client  *http.Client
	limiter *Limiter
}

// New builds a fetcher; requestsPerSecond of 0 disables rate limiting.
func New(timeout time.Duration, requestsPerSecond float64) *Fetcher {
	return &Fetcher{
		client:  newClient(timeout),
		limiter: NewLimiter(requestsPerSecond),
	}
}

// Fetch retrieves one URL, honoring the rate limit and ctx cancellation.
// Non-2xx responses fail; the body is capped to protect the parser from
// unbounded input.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}

	return body, nil
}
