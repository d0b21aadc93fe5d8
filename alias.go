package numo

import "strings"

// operatorAliases maps each canonical operator symbol to the natural
// language aliases that resolve to it. Alias sets are pairwise disjoint and
// none collides with a valid variable name a user would keep.
var operatorAliases = map[string][]string{
	"+": {"plus", "add"},
	"-": {"minus", "subtract"},
	"*": {"multiply", "times"},
	"/": {"divide", "division"},
	"%": {"mod", "modulus"},
	"^": {"power", "exponent"},
}

// canonicalOf resolves an operator symbol or one of its aliases to the
// canonical symbol. Lookup is case-insensitive.
func canonicalOf(token string) (string, bool) {
	lower := strings.ToLower(token)
	if _, ok := operatorAliases[lower]; ok {
		return lower, true
	}
	for op, aliases := range operatorAliases {
		for _, alias := range aliases {
			if alias == lower {
				return op, true
			}
		}
	}
	return "", false
}
