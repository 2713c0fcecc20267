package filter

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when a named preset was never registered.
var ErrUnknownPreset = errors.New("unknown filter preset")

type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter failed at runtime on one item
	EvaluationError struct {
		Expression string
		ItemTitle  string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compile filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compile filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate filter %q on %q: %v", e.Expression, e.ItemTitle, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
