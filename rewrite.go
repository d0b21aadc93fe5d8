package numo

import (
	"regexp"
	"strings"
)

// maxRewritePasses bounds nested function resolution so crafted input cannot
// keep the rewriter busy.
const maxRewritePasses = 16

var callPattern = regexp.MustCompile(`(?i)([a-z][a-z0-9]*)\s*\(([^()]*)\)`)

// FunctionRewriter resolves registered function calls to numeric text during
// preprocessing, innermost first, so lines like sqrt(pow(2, 4)) reach the
// dispatch pipeline as plain arithmetic. Unknown names and calls whose
// arguments do not evaluate are left untouched.
type FunctionRewriter struct {
	registry *FunctionRegistry
}

func NewFunctionRewriter() *FunctionRewriter {
	return &FunctionRewriter{registry: globalRegistry}
}

func (f *FunctionRewriter) Process(line string) string {
	source := line
	for pass := 0; pass < maxRewritePasses; pass++ {
		rewritten := callPattern.ReplaceAllStringFunc(source, f.resolveCall)
		if rewritten == source {
			break
		}
		source = rewritten
	}
	return source
}

func (f *FunctionRewriter) resolveCall(call string) string {
	m := callPattern.FindStringSubmatch(call)
	if m == nil {
		return call
	}
	fn, ok := f.registry.Lookup(m[1])
	if !ok {
		return call
	}
	var args []float64
	for _, raw := range strings.Split(m[2], ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return call
		}
		v, err := Evaluate(raw)
		if err != nil {
			return call
		}
		args = append(args, v)
	}
	result, err := fn(args...)
	if err != nil {
		return call
	}
	if validateResult(result) != nil {
		return call
	}
	return formatNumber(result)
}
