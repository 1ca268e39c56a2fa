// Package filter provides client-side filtering of listed API payloads
// using expr expressions. Rows are the decoded JSON objects returned in a
// list response's data payload; an expression sees each row's fields as
// top-level variables plus a set of helper functions.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled row filter.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean, e.g.:
//
//	contains(email, "@example.com") && risk_action != "deny"
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(baseEnv()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// Matches evaluates the filter against a single row.
func (f *Filter) Matches(row map[string]any) (bool, error) {
	env := baseEnv()
	for k, v := range row {
		env[k] = v
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", out)
	}
	return matched, nil
}

// Apply returns the rows matching the filter, preserving order.
func (f *Filter) Apply(rows []map[string]any) ([]map[string]any, error) {
	var matched []map[string]any
	for _, row := range rows {
		ok, err := f.Matches(row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// baseEnv returns the helper functions available to every expression.
func baseEnv() map[string]any {
	return map[string]any{
		// String helpers (case-insensitive)
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Date helpers; Paystack timestamps are RFC 3339
		"parseDate": func(dateStr string) time.Time {
			t, err := time.Parse(time.RFC3339, dateStr)
			if err != nil {
				t, _ = time.Parse("2006-01-02", dateStr)
			}
			return t
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
	}
}
