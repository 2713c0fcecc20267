package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPExecutor is the default Executor.
type HTTPExecutor struct {
	client HTTPDoer
	logger zerolog.Logger
}

// NewHTTPExecutor creates an executor sending requests through client. A nil
// client falls back to an *http.Client with DefaultTimeout.
func NewHTTPExecutor(client HTTPDoer, logger zerolog.Logger) *HTTPExecutor {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPExecutor{client: client, logger: logger}
}

// Execute implements Executor.
func (e *HTTPExecutor) Execute(ctx context.Context, rawURL string, params url.Values, out any) error {
	target := rawURL
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &RequestError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return &RequestError{URL: rawURL, Err: redactURLError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DecodeError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	e.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received TMDB response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}

// redactURLError strips the query string, which carries the API key, from
// errors produced by net/http.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	redacted := *urlErr
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		redacted.URL = u.String()
	}
	return &redacted
}
