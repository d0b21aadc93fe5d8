package numo

import (
	"fmt"
	"math"
	"strconv"
)

// maxExponent bounds ^ so pathological inputs like 9999^9999 stay a fixed
// cost instead of grinding through huge float operations.
const maxExponent = 100

// Node is one vertex of a parsed expression tree. Trees are built once,
// evaluated once and discarded; they are never shared or mutated after
// construction.
type Node interface {
	Eval() (float64, error)
	String() string
}

type NumberNode struct {
	Value float64
}

func (n *NumberNode) Eval() (float64, error) {
	return n.Value, nil
}

func (n *NumberNode) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type BinaryNode struct {
	Op    string
	Left  Node
	Right Node
}

func (b *BinaryNode) Eval() (float64, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, &EvalError{Message: "division by zero", Node: b}
		}
		return left / right, nil
	case "%":
		if right == 0 {
			return 0, &EvalError{Message: "modulus by zero", Node: b}
		}
		// math.Mod keeps the sign of the dividend.
		return math.Mod(left, right), nil
	case "^":
		if math.Abs(right) > maxExponent {
			return 0, &EvalError{Message: fmt.Sprintf("exponent magnitude exceeds %d", maxExponent), Node: b}
		}
		return math.Pow(left, right), nil
	default:
		return 0, &EvalError{Message: "unknown operator " + b.Op, Node: b}
	}
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

type UnaryNode struct {
	Op    string
	Child Node
}

func (u *UnaryNode) Eval() (float64, error) {
	val, err := u.Child.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op != "-" {
		return 0, &EvalError{Message: "unknown unary operator " + u.Op, Node: u}
	}
	return -val, nil
}

func (u *UnaryNode) String() string {
	return u.Op + u.Child.String()
}
