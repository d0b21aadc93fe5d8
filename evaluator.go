package numo

import (
	"context"
	"fmt"
	"math"
)

const (
	// maxExprLen rejects oversized input before parsing.
	maxExprLen = 1000
	// maxTreeDepth bounds expression nesting independent of numeric validity.
	maxTreeDepth = 20
	// smallestNormal is the smallest positive normal float64. Nonzero results
	// below it are subnormal and rejected as invalid.
	smallestNormal = 2.2250738585072014e-308
)

// Evaluate runs the staged pipeline over untrusted arithmetic text: length
// guard, parse into the restricted grammar, structural validation of the
// tree, checked evaluation, and final range validation. Every stage failure
// is an error; the only outcomes are a validated finite number or an error.
func Evaluate(text string) (float64, error) {
	if text == "" {
		return 0, &EvalError{Message: "empty expression"}
	}
	if len(text) > maxExprLen {
		return 0, &EvalError{Message: fmt.Sprintf("expression exceeds %d characters", maxExprLen)}
	}
	node, err := NewParser(text).Parse()
	if err != nil {
		return 0, err
	}
	if err := validateTree(node, 0); err != nil {
		return 0, err
	}
	result, err := node.Eval()
	if err != nil {
		return 0, err
	}
	if err := validateResult(result); err != nil {
		return 0, err
	}
	return result, nil
}

// validateTree walks the tree before any arithmetic runs, rejecting unknown
// node kinds and trees nested deeper than maxTreeDepth. The walk completes
// before evaluation starts so rejected input never computes anything.
func validateTree(node Node, depth int) error {
	if depth > maxTreeDepth {
		return &EvalError{Message: "expression tree exceeds depth limit", Node: node}
	}
	switch n := node.(type) {
	case *NumberNode:
		return nil
	case *UnaryNode:
		return validateTree(n.Child, depth+1)
	case *BinaryNode:
		if err := validateTree(n.Left, depth+1); err != nil {
			return err
		}
		return validateTree(n.Right, depth+1)
	default:
		return &EvalError{Message: fmt.Sprintf("disallowed node kind %T", node), Node: node}
	}
}

func validateResult(v float64) error {
	if math.IsNaN(v) {
		return &EvalError{Message: "result is NaN"}
	}
	if math.IsInf(v, 0) {
		return &EvalError{Message: "result magnitude out of range"}
	}
	if v != 0 && math.Abs(v) < smallestNormal {
		return &EvalError{Message: "result magnitude below normal range"}
	}
	return nil
}

// MathRunner evaluates restricted arithmetic expressions. Input that is not
// a well formed expression within the length, depth and exponent bounds
// yields no result; the runner never panics and never returns a NaN,
// infinite or subnormal value.
type MathRunner struct{}

func NewMathRunner() *MathRunner {
	return &MathRunner{}
}

func (r *MathRunner) Name() string { return "math" }

func (r *MathRunner) Run(_ context.Context, source string) (string, error) {
	v, err := Evaluate(source)
	if err != nil {
		return "", err
	}
	return formatNumber(v), nil
}
