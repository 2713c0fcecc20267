package tmdb

import (
	"context"
	"net/url"
)

// Command describes one TMDB endpoint. Exported fields tagged with `url:"..."`
// become query parameters; fields tagged `url:"-"` only feed Path.
type Command interface {
	Path() string
}

// Requester sends a command and decodes its response into out.
type Requester interface {
	Do(ctx context.Context, cmd Command, out any) error
}

// Executor performs a single GET request against an absolute URL and decodes
// the JSON response into out. A nil out discards the body.
type Executor interface {
	Execute(ctx context.Context, url string, params url.Values, out any) error
}

// execute runs cmd through r and returns the decoded result.
func execute[T any](ctx context.Context, r Requester, cmd Command) (*T, error) {
	var out T
	if err := r.Do(ctx, cmd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// results unwraps endpoints answering {"results": [...]}.
type results[T any] struct {
	Results T `json:"results"`
}

// EntityResults is the {id, results} envelope several sub-resources use.
type EntityResults[T any] struct {
	ID      int `json:"id"`
	Results T   `json:"results"`
}
