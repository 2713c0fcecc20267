package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tmdbctl/tmdb"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*ExprCompiler)

// WithCache keeps up to size compiled programs keyed by expression.
func WithCache(size int) ExprCompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds helper functions callable from expressions.
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// ExprCompiler compiles expr-lang expressions against Item
type ExprCompiler struct {
	custom map[string]any
	cache  *lruCache[CompiledFilter]
}

// NewExprCompiler creates an expr-based filter compiler.
func NewExprCompiler(opts ...ExprCompilerOption) *ExprCompiler {
	c := &ExprCompiler{custom: make(map[string]any)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression. Shorthand syntax such as
// `genre:"Drama" AND year:>2000` is rewritten to expr first.
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	source := expression
	if IsShorthand(source) {
		source = ConvertShorthand(source)
	}

	program, err := expr.Compile(source,
		expr.Env(environment(Item{}, c.custom)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "invalid expression",
			Err:        err,
		}
	}

	f := &exprFilter{expression: expression, program: program, custom: c.custom}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear drops every cached program.
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached programs.
func (c *ExprCompiler) Size() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

func environment(item Item, custom map[string]any) map[string]any {
	env := itemEnvironment(item)
	maps.Copy(env, custom)
	return env
}

// Match reports whether the item satisfies the expression. Runtime errors
// count as a non-match.
func (f *exprFilter) Match(item Item) bool {
	ok, err := f.eval(item)
	return err == nil && ok
}

func (f *exprFilter) eval(item Item) (bool, error) {
	out, err := expr.Run(f.program, environment(item, f.custom))
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(s string) time.Time {
		t, _ := time.Parse(tmdb.DateLayout, s)
		return t
	}
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

func itemEnvironment(item Item) map[string]any {
	env := make(map[string]any, 40)
	addHelperFunctions(env)

	env["Item"] = item
	env["MediaType"] = string(item.MediaType)
	env["ID"] = item.ID
	env["Title"] = item.Title
	env["OriginalTitle"] = item.OriginalTitle
	env["OriginalLanguage"] = item.OriginalLanguage
	env["Overview"] = item.Overview
	env["ReleaseDate"] = item.ReleaseDate
	env["Year"] = item.Year
	env["GenreIDs"] = item.GenreIDs
	env["Genres"] = item.Genres
	env["OriginCountry"] = item.OriginCountry
	env["Popularity"] = item.Popularity
	env["VoteAverage"] = item.VoteAverage
	env["VoteCount"] = item.VoteCount
	env["Adult"] = item.Adult
	env["Department"] = item.Department

	env["hasGenre"] = hasFoldFunc(item.Genres)
	env["hasCountry"] = hasFoldFunc(item.OriginCountry)
	env["hasGenreID"] = func(id int) bool {
		return slices.Contains(item.GenreIDs, id)
	}
	env["isMovie"] = func() bool { return item.MediaType == tmdb.MediaTypeMovie }
	env["isTV"] = func() bool { return item.MediaType == tmdb.MediaTypeTV }
	env["isPerson"] = func() bool { return item.MediaType == tmdb.MediaTypePerson }
	env["released"] = func() bool {
		return !item.ReleaseDate.IsZero() && item.ReleaseDate.Before(time.Now())
	}
	env["releasedAfter"] = func(t time.Time) bool {
		return !item.ReleaseDate.IsZero() && item.ReleaseDate.After(t)
	}
	env["releasedBefore"] = func(t time.Time) bool {
		return !item.ReleaseDate.IsZero() && item.ReleaseDate.Before(t)
	}

	return env
}

func hasFoldFunc(values []string) func(string) bool {
	lower := make([]string, len(values))
	for i, v := range values {
		lower[i] = strings.ToLower(v)
	}
	return func(v string) bool {
		return slices.Contains(lower, strings.ToLower(v))
	}
}
