package cardxlsx

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultActivityFilter keeps comment actions only.
const DefaultActivityFilter = `type == "commentCard"`

// ActivityFilter selects which actions appear in the activity log. The
// expression sees the variables type, text, author and date.
type ActivityFilter struct {
	source  string
	program *vm.Program
}

var (
	filterCache   sync.Map // expression string → *ActivityFilter
	filterEnvType = map[string]any{
		"type":   "",
		"text":   "",
		"author": "",
		"date":   "",
	}
)

// NewActivityFilter compiles a filter expression. Compiled filters are cached.
func NewActivityFilter(source string) (*ActivityFilter, error) {
	if source == "" {
		source = DefaultActivityFilter
	}
	if cached, ok := filterCache.Load(source); ok {
		return cached.(*ActivityFilter), nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnvType), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile activity filter %q: %w", source, err)
	}
	f := &ActivityFilter{source: source, program: program}
	filterCache.Store(source, f)
	return f, nil
}

// String returns the filter expression.
func (f *ActivityFilter) String() string {
	return f.source
}

// Match evaluates the filter for one action. authorField and dates are used
// to expose the same author and timestamp text the sheet shows.
func (f *ActivityFilter) Match(a Action, authorField string, dates *DateConverter) (bool, error) {
	env := map[string]any{
		"type":   a.Type,
		"text":   a.Text,
		"author": a.Author(authorField),
		"date":   "",
	}
	if dates != nil {
		env["date"] = dates.DateTime(a.Date)
	}
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate activity filter %q: %w", f.source, err)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("activity filter %q evaluated to %T, expected bool", f.source, result)
	}
	return matched, nil
}
