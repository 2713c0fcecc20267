package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultTimeout applies to the built-in HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Client represents a TMDB API client
type Client struct {
	baseURL  string
	apiKey   string
	executor Executor
	logger   zerolog.Logger
}

// NewClient creates a new TMDB client
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingAPIKey)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := strings.TrimRight(options.baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is empty", ErrInvalidConfig)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %w", ErrInvalidConfig, err)
	}

	executor := options.executor
	if executor == nil {
		httpClient := options.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: options.timeout}
		}

		mws := options.middlewares
		if options.userAgent != "" {
			mws = append([]Middleware{UserAgentMiddleware(options.userAgent)}, mws...)
		}
		if len(mws) > 0 {
			executor = NewMiddlewareExecutor(httpClient, options.logger, mws...)
		} else {
			executor = NewHTTPExecutor(httpClient, options.logger)
		}
	}

	if options.rateLimit > 0 {
		executor = NewRateLimitedExecutor(executor, options.rateLimit, options.burst)
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		executor: executor,
		logger:   options.logger,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// String implements fmt.Stringer without exposing the API key.
func (c *Client) String() string {
	return fmt.Sprintf("tmdb.Client{baseURL: %s, apiKey: REDACTED}", c.baseURL)
}

// Do encodes cmd into a path and query string and decodes the response into out.
func (c *Client) Do(ctx context.Context, cmd Command, out any) error {
	params, err := query.Values(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode query for %s: %w", cmd.Path(), err)
	}
	return c.Execute(ctx, cmd.Path(), params, out)
}

// Execute sends a GET to path with params and the API key appended.
func (c *Client) Execute(ctx context.Context, path string, params url.Values, out any) error {
	values := url.Values{}
	for k, v := range params {
		values[k] = append([]string(nil), v...)
	}

	c.logger.Debug().
		Str("path", path).
		Str("query", values.Encode()).
		Msg("Sending TMDB request")

	values.Set("api_key", c.apiKey)

	return c.executor.Execute(ctx, c.baseURL+path, values, out)
}

// TestConnection verifies the API key by fetching the configuration
func (c *Client) TestConnection(ctx context.Context) error {
	if err := c.Do(ctx, Configuration{}, nil); err != nil {
		return fmt.Errorf("failed to connect to TMDB: %w", err)
	}

	c.logger.Debug().Msg("Successfully connected to TMDB")
	return nil
}
