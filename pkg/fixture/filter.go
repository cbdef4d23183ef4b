package fixture

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter selects fixtures with a boolean expr expression. The expression
// sees one fixture at a time through the identifiers name, description,
// tags and payload:
//
//	name == "admin_user"
//	"smoke" in tags
//	payload.role == "admin"
type Filter struct {
	source  string
	program *vm.Program
}

func filterEnv(def Definition) map[string]any {
	payload := def.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	tags := def.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"name":        def.Name,
		"description": def.Description,
		"tags":        tags,
		"payload":     payload,
	}
}

// CompileFilter compiles a filter expression. The expression must
// evaluate to a boolean.
func CompileFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv(Definition{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether def satisfies the filter.
func (f *Filter) Match(def Definition) (bool, error) {
	result, err := expr.Run(f.program, filterEnv(def))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: result is %T, not bool", f.source, result)
	}
	return keep, nil
}

// Apply returns the definitions that satisfy the filter, preserving
// order. A nil filter keeps everything.
func (f *Filter) Apply(defs []Definition) ([]Definition, error) {
	if f == nil {
		return defs, nil
	}
	out := make([]Definition, 0, len(defs))
	for _, def := range defs {
		keep, err := f.Match(def)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, def)
		}
	}
	return out, nil
}
