package tmdb

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL     string
	executor    Executor
	httpClient  *http.Client
	timeout     time.Duration
	logger      zerolog.Logger
	middlewares []Middleware
	userAgent   string
	rateLimit   float64
	burst       int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
}

// WithBaseURL overrides the API root, mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithExecutor replaces the built-in HTTP executor. Middlewares, user agent,
// timeout and HTTP client options are ignored when a custom executor is set.
func WithExecutor(executor Executor) Option {
	return func(o *clientOptions) {
		o.executor = executor
	}
}

// WithHTTPClient sets the HTTP client used by the built-in executor.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger sets the logger for the client and its executor.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMiddleware appends round-tripper middlewares. The first one registered
// sees the request first.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *clientOptions) {
		o.middlewares = append(o.middlewares, mws...)
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithRateLimit wraps the executor in a RateLimitedExecutor allowing rps
// requests per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		o.rateLimit = rps
		o.burst = burst
	}
}
