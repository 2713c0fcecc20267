package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filter presets and evaluates them
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	presets   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a manager with a caching expr compiler.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]CompiledFilter),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register compiles and stores a preset, replacing any previous one.
func (m *Manager) Register(name, expression string) error {
	f, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	m.mu.Lock()
	m.presets[name] = f
	m.mu.Unlock()
	return nil
}

// RegisterAll compiles every preset and stores them only if all compile.
func (m *Manager) RegisterAll(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))
	for name, expression := range presets {
		f, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()
	return nil
}

// Get returns a preset by name.
func (m *Manager) Get(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.presets[name]
	return f, ok
}

// Names returns the registered preset names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.presets))
}

// Compile compiles an ad-hoc expression with the manager's compiler.
func (m *Manager) Compile(expression string) (CompiledFilter, error) {
	return m.compiler.Compile(expression)
}

// Apply evaluates a named preset against items.
func (m *Manager) Apply(ctx context.Context, name string, items []Item) ([]Item, error) {
	f, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return m.evaluator.Evaluate(ctx, f, items)
}

// Filter applies an ad-hoc expression and, when preset is non-empty, a named
// preset on top of it. Empty arguments are skipped.
func (m *Manager) Filter(ctx context.Context, expression, preset string, items []Item) ([]Item, error) {
	if expression != "" {
		f, err := m.compiler.Compile(expression)
		if err != nil {
			return nil, err
		}
		if items, err = m.evaluator.Evaluate(ctx, f, items); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		return m.Apply(ctx, preset, items)
	}
	return items, nil
}
