package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrMissingAPIKey is returned by NewClient when no API key is given
	ErrMissingAPIKey = errors.New("missing api key")
	// ErrInvalidMediaType indicates a command was built for a media type the endpoint does not serve
	ErrInvalidMediaType = errors.New("invalid media type for endpoint")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
)

// RequestError is returned when the request could not be sent or no response
// was received.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("tmdb request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body could not be read or parsed.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tmdb response (status %d) could not be decoded: %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx TMDB response.
//
// Code and Message are filled from the upstream {status_code, status_message}
// body. Errors is filled from the {errors: [...]} body TMDB sends with 422
// validation failures. Body always holds the raw payload.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Errors     []string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case len(e.Errors) > 0:
		return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
	case e.Message != "":
		return fmt.Sprintf("tmdb API error: status %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
	default:
		return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
	}
}

// Is lets errors.Is match ErrNotFound and ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrUnauthorized:
		return e.IsUnauthorized()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsValidation checks if the upstream rejected the request parameters
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

// IsRateLimited checks if the upstream throttled the request
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

type errorBody struct {
	StatusCode    int      `json:"status_code"`
	StatusMessage string   `json:"status_message"`
	Errors        []string `json:"errors"`
}

// newAPIError builds an APIError from a non-2xx response. A body that is not
// JSON is kept only in Body.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Code = payload.StatusCode
	apiErr.Message = payload.StatusMessage
	apiErr.Errors = payload.Errors
	return apiErr
}
