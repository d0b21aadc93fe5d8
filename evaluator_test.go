package numo

import (
	"context"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestEvaluateValid(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 2", 4},
		{"10 / 2", 5},
		{"2 ^ 3", 8},
		{"10 % 3", 1},
		{"-10 % 3", -1},
		{"3 * 4", 12},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ^ 3 ^ 2", 512},
		{"-2 ^ 2", 4},
		{"10 - 3 - 2", 5},
		{"100 / 10 / 2", 5},
		{"-5", -5},
		{"--5", 5},
		{"3.5 + 1.25", 4.75},
		{"2 ^ 100", math.Pow(2, 100)},
		{"0.1 + 0.2", 0.30000000000000004},
		{"(1 + 2) * (3 + 4)", 21},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tt.expr, err)
			}
			if math.Abs(got-tt.want) > 1e-9*math.Max(1, math.Abs(tt.want)) {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateRejected(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"division by zero", "1 / 0"},
		{"modulus by zero", "1 % 0"},
		{"exponent guard", "2 ^ 1000"},
		{"negative exponent guard", "2 ^ -1000"},
		{"overflow", "1e308 + 1e308"},
		{"nan", "(1e308 + 1e308) * 0"},
		{"subnormal literal", "1e-308"},
		{"subnormal result", "2.3e-308 / 1e10"},
		{"identifier", "abc"},
		{"identifier in expression", "xyz + 123"},
		{"dangling operator", "2 +"},
		{"trailing token", "2 2"},
		{"unbalanced paren", "(2 + 3"},
		{"stray rune", "2 $ 3"},
		{"oversized", strings.Repeat("1", maxExprLen+1)},
		{"deep tree", strings.Repeat("1 + ", maxTreeDepth+5) + "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Evaluate(tt.expr); err == nil {
				t.Errorf("Evaluate(%q) = %v, want rejection", tt.expr, got)
			}
		})
	}
}

func TestEvaluateDepthBoundary(t *testing.T) {
	// A left-leaning chain of n additions nests n levels deep.
	shallow := strings.Repeat("1 + ", maxTreeDepth-1) + "1"
	if _, err := Evaluate(shallow); err != nil {
		t.Errorf("chain within depth bound rejected: %v", err)
	}
	deep := strings.Repeat("1 + ", maxTreeDepth+1) + "1"
	if _, err := Evaluate(deep); err == nil {
		t.Error("chain beyond depth bound accepted")
	}
}

func TestValidateTreeRunsBeforeEvaluation(t *testing.T) {
	// The guard must fire on structure alone, even when every arithmetic
	// step in the tree would be valid.
	var node Node = &NumberNode{Value: 1}
	for i := 0; i < maxTreeDepth+2; i++ {
		node = &UnaryNode{Op: "-", Child: node}
	}
	if err := validateTree(node, 0); err == nil {
		t.Error("deep unary chain passed validation")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{4, "4"},
		{2.5, "2.5"},
		{0.30000000000000004, "0.30000000000000004"},
		{1e21, "1e+21"}, // large magnitudes use exponent notation
		{-0.5, "-0.5"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.v); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestMathRunnerStringRoundTrip(t *testing.T) {
	runner := NewMathRunner()
	out, err := runner.Run(context.Background(), "2 + 2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	v, perr := strconv.ParseFloat(out, 64)
	if perr != nil {
		t.Fatalf("result %q does not parse back: %v", out, perr)
	}
	if v != 4 {
		t.Errorf("got %v, want 4", v)
	}
}

func TestMathRunnerDeclines(t *testing.T) {
	runner := NewMathRunner()
	if out, err := runner.Run(context.Background(), "hello in spanish"); err == nil {
		t.Errorf("expected decline, got %q", out)
	}
}
