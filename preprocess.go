package numo

import "strings"

// Preprocessor rewrites a raw line before dispatch: it records assignments in
// the store and substitutes variable and alias references token by token.
type Preprocessor struct {
	store *Store
}

func NewPreprocessor(store *Store) *Preprocessor {
	return &Preprocessor{store: store}
}

func (p *Preprocessor) Process(line string) string {
	source := strings.TrimSpace(line)
	if source == "" {
		return ""
	}
	if out, ok := p.processDefinition(source); ok {
		return out
	}
	return p.substitute(source)
}

// processDefinition splits once on ':' when present, otherwise once on '='.
// ':' takes precedence unconditionally when a line contains both. A line
// whose left-hand side is not a valid identifier is not a definition and
// falls through to plain substitution.
func (p *Preprocessor) processDefinition(source string) (string, bool) {
	sep := "="
	if strings.Contains(source, ":") {
		sep = ":"
	}
	parts := strings.SplitN(source, sep, 2)
	if len(parts) != 2 {
		return "", false
	}
	name := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if sep == ":" {
		// "x := 5" splits on ':' leaving "= 5" on the right.
		value = strings.TrimSpace(strings.TrimPrefix(value, "="))
	}
	if !identPattern.MatchString(name) {
		return "", false
	}
	value = p.substitute(value)
	p.store.Define(name, value)
	return name + " = " + value, true
}

// substitute replaces each whitespace token whose lowercased form is bound in
// the store, leaving other tokens verbatim, and rejoins with single spaces.
// Replacement values are never re-substituted: a chained reference like
// z = x + y resolves through the stored text of z in one pass, which bounds
// the cost per line and keeps substitution cycles from looping.
func (p *Preprocessor) substitute(source string) string {
	tokens := strings.Fields(source)
	for i, token := range tokens {
		if value, ok := p.store.Lookup(token); ok {
			tokens[i] = value
		}
	}
	return strings.Join(tokens, " ")
}
