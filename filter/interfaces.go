package filter

import "context"

// Filter decides whether an item is kept
type Filter interface {
	Match(item Item) bool
}

// CompiledFilter is a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the source expression
	Expression() string
}

// Compiler turns filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator applies a filter to a list of items, keeping their order
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, items []Item) ([]Item, error)
}
