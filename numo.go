// Package numo is a text-line calculator: each input line is preprocessed
// (variable and alias substitution, function resolution) and handed to an
// ordered pipeline of runners; the first runner that can interpret the line
// produces its result. Arithmetic is evaluated by a sandboxed evaluator that
// accepts only a restricted grammar with hard length, depth and exponent
// bounds, so untrusted text can never execute anything or yield an invalid
// number.
package numo

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome for one input line. OK is false when no runner could
// interpret the line; that is not an error, later lines are unaffected.
type Result struct {
	Value string
	OK    bool
}

// Manager rewrites a line before dispatch.
type Manager interface {
	Process(line string) string
}

// Numo wires the preprocessing managers and the runner pipeline together.
// A single Numo is safe for concurrent Calculate calls; the variable store
// is the only shared mutable state and is lock-protected.
type Numo struct {
	store    *Store
	managers []Manager
	pipeline *Pipeline
}

type options struct {
	runners     []Runner
	logger      *zap.Logger
	httpTimeout time.Duration
}

type Option func(*options)

// WithRunners replaces the default runner list. Order is observable and
// preserved exactly as given.
func WithRunners(runners ...Runner) Option {
	return func(o *options) { o.runners = runners }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPTimeout sets the per-request timeout for the network-backed
// runners built by default.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *options) { o.httpTimeout = d }
}

// New builds an engine with the default runner order: translate, unit,
// currency, math, variable.
func New(opts ...Option) *Numo {
	o := &options{
		logger:      zap.NewNop(),
		httpTimeout: defaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.runners == nil {
		o.runners = []Runner{
			NewTranslateRunner(defaultTranslateAPI, o.httpTimeout),
			NewUnitRunner(),
			NewCurrencyRunner(defaultCurrencyAPI, defaultCurrencyTTL, o.httpTimeout),
			NewMathRunner(),
			NewVariableRunner(),
		}
	}
	store := NewStore()
	return &Numo{
		store:    store,
		managers: []Manager{NewPreprocessor(store), NewFunctionRewriter()},
		pipeline: NewPipeline(o.runners, o.logger),
	}
}

// Calculate processes lines in strict input order as a fold over the shared
// variable store: a definition on line N is visible to every later line of
// the same call. One Result per input line, positionally aligned.
func (n *Numo) Calculate(ctx context.Context, lines []string) []Result {
	results := make([]Result, len(lines))
	for i, line := range lines {
		if ctx.Err() != nil {
			break
		}
		processed := line
		for _, m := range n.managers {
			processed = m.Process(processed)
		}
		value, ok := n.pipeline.Run(ctx, processed)
		results[i] = Result{Value: value, OK: ok}
	}
	return results
}

// Reset clears user-defined variables while keeping the operator aliases.
func (n *Numo) Reset() {
	n.store.ResetUserVariables()
}
