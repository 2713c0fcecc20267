package tmdb

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Middleware decorates the transport of the middleware executor.
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewMiddlewareExecutor returns an HTTPExecutor whose client transport is
// wrapped by mws. The given client is copied, never mutated.
func NewMiddlewareExecutor(client *http.Client, logger zerolog.Logger, mws ...Middleware) *HTTPExecutor {
	wrapped := &http.Client{Timeout: DefaultTimeout}
	if client != nil {
		copied := *client
		wrapped = &copied
	}

	transport := wrapped.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	for i := len(mws) - 1; i >= 0; i-- {
		transport = mws[i](transport)
	}
	wrapped.Transport = transport

	return NewHTTPExecutor(wrapped, logger)
}

// LoggingMiddleware logs every round trip at debug level. The query string is
// never logged.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			event := logger.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("duration", time.Since(start))
			if err != nil {
				event.Err(redactURLError(err)).Msg("TMDB round trip failed")
				return nil, err
			}
			event.Int("status", resp.StatusCode).Msg("TMDB round trip")
			return resp, nil
		})
	}
}

// UserAgentMiddleware sets the User-Agent header on outgoing requests.
func UserAgentMiddleware(userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			req.Header.Set("User-Agent", userAgent)
			return next.RoundTrip(req)
		})
	}
}

// Metrics holds the collectors registered by NewMetricsMiddleware.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetricsMiddleware registers request counter and latency histogram
// collectors on reg and returns a middleware feeding them. Registering twice
// on the same registry reuses the existing collectors. A nil reg is an
// ErrInvalidConfig error.
func NewMetricsMiddleware(reg prometheus.Registerer) (Middleware, *Metrics, error) {
	if reg == nil {
		return nil, nil, fmt.Errorf("%w: nil metrics registerer", ErrInvalidConfig)
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tmdb",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total TMDB API requests by status code and method.",
	}, []string{"code", "method"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tmdb",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "TMDB API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})

	var err error
	if requests, err = registerOrReuse(reg, requests); err != nil {
		return nil, nil, err
	}
	if duration, err = registerOrReuse(reg, duration); err != nil {
		return nil, nil, err
	}

	mw := func(next http.RoundTripper) http.RoundTripper {
		return promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(duration, next))
	}

	return mw, &Metrics{Requests: requests, Duration: duration}, nil
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("failed to register tmdb metrics: %w", err)
	}
	return c, nil
}
