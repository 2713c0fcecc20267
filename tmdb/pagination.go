package tmdb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxPage is the highest page TMDB serves for any list endpoint.
	MaxPage = 500
	// DefaultPageConcurrency bounds the number of in-flight page requests.
	DefaultPageConcurrency = 5
)

// Page is the pagination wrapper shared by every list endpoint.
type Page[T any] struct {
	Page         int `json:"page"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
	Results      []T `json:"results"`
}

// HasMorePages returns true if there are more pages to fetch
func (p *Page[T]) HasMorePages() bool {
	return p.Page < p.TotalPages && p.Page < MaxPage
}

// NextPage returns the next page number
func (p *Page[T]) NextPage() (int, error) {
	if !p.HasMorePages() {
		return 0, fmt.Errorf("no more pages (page %d of %d)", p.Page, p.TotalPages)
	}
	return p.Page + 1, nil
}

// LanguageParams carries the optional language query parameter.
type LanguageParams struct {
	Language string `url:"language,omitempty"`
}

// LanguagePageParams carries language and page query parameters.
type LanguagePageParams struct {
	Language string `url:"language,omitempty"`
	Page     int    `url:"page,omitempty"`
}

// ListParams carries language, page and region query parameters.
type ListParams struct {
	Language string `url:"language,omitempty"`
	Page     int    `url:"page,omitempty"`
	Region   string `url:"region,omitempty"`
}

// PageFetcher loads a single page.
type PageFetcher[T any] func(ctx context.Context, page int) (*Page[T], error)

// FetchPages loads page 1, then the remaining pages up to maxPages (or every
// page when maxPages <= 0) with bounded concurrency. Results are returned in
// page order.
func FetchPages[T any](ctx context.Context, maxPages int, fetch PageFetcher[T]) ([]T, error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page 1: %w", err)
	}

	last := first.TotalPages
	if last > MaxPage {
		last = MaxPage
	}
	if maxPages > 0 && last > maxPages {
		last = maxPages
	}
	if last <= 1 {
		return first.Results, nil
	}

	pages := make([][]T, last)
	pages[0] = first.Results

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultPageConcurrency)

	for n := 2; n <= last; n++ {
		g.Go(func() error {
			page, err := fetch(gctx, n)
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", n, err)
			}
			pages[n-1] = page.Results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range pages {
		total += len(p)
	}
	all := make([]T, 0, total)
	for _, p := range pages {
		all = append(all, p...)
	}
	return all, nil
}
