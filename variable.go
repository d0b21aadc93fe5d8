package numo

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var definitionPattern = regexp.MustCompile(`^(\w+)\s*[:=]\s*(.+)$`)

// VariableRunner is the terminal runner for definition lines: it matches
// "name = value" and reports the assigned value, evaluated when the value is
// arithmetic, so an assignment line produces a result instead of nothing.
type VariableRunner struct{}

func NewVariableRunner() *VariableRunner {
	return &VariableRunner{}
}

func (r *VariableRunner) Name() string { return "variable" }

func (r *VariableRunner) Run(_ context.Context, source string) (string, error) {
	m := definitionPattern.FindStringSubmatch(source)
	if m == nil {
		return "", errors.New("not a definition")
	}
	value := strings.TrimSpace(m[2])
	if v, err := Evaluate(value); err == nil {
		return formatNumber(v), nil
	}
	return value, nil
}
