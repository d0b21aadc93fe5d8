package numo

type Token int

const (
	EOF Token = iota
	NUMBER
	OPERATOR
	LPAREN
	RPAREN
	INVALID
)

type tokenInfo struct {
	typ   Token
	value string
}

var operatorPrecedence = map[string]int{
	"^": 3,
	"*": 2,
	"/": 2,
	"%": 2,
	"+": 1,
	"-": 1,
}

func getPrecedence(op string) int {
	if prec, ok := operatorPrecedence[op]; ok {
		return prec
	}
	return 0
}

// rightAssociative reports whether same-precedence chains of op group to the
// right. Only exponentiation does; everything else is left-to-right.
func rightAssociative(op string) bool {
	return op == "^"
}
