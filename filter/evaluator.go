package filter

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets how many chunks are evaluated at once.
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the list length below which evaluation stays sequential.
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large lists into chunks evaluated in parallel
type ConcurrentEvaluator struct {
	workers   int
	batchSize int
}

// NewConcurrentEvaluator creates an evaluator sized to GOMAXPROCS.
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the items matching filter, in input order. The first
// runtime error aborts evaluation and is returned as an *EvaluationError.
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, items []Item) ([]Item, error) {
	if len(items) == 0 {
		return []Item{}, nil
	}
	if len(items) < e.batchSize {
		return evaluateChunk(ctx, filter, items)
	}

	chunkSize := max(len(items)/e.workers, e.batchSize)
	chunks := slices.Collect(slices.Chunk(items, chunkSize))
	matches := make([][]Item, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			m, err := evaluateChunk(ctx, filter, chunk)
			if err != nil {
				return err
			}
			matches[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(matches...), nil
}

func evaluateChunk(ctx context.Context, filter CompiledFilter, items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items)/4)
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := matchItem(filter, item)
		if err != nil {
			return nil, &EvaluationError{Expression: filter.Expression(), ItemTitle: item.Title, Err: err}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func matchItem(filter CompiledFilter, item Item) (bool, error) {
	if f, ok := filter.(*exprFilter); ok {
		return f.eval(item)
	}
	return filter.Match(item), nil
}
