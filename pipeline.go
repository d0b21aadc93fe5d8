package numo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Runner attempts to interpret one preprocessed line. An empty result or an
// error means the runner declined; the pipeline then tries the next one.
type Runner interface {
	Name() string
	Run(ctx context.Context, source string) (string, error)
}

// Pipeline dispatches a line to an ordered list of runners. Order is part of
// the contract: the first non-empty result wins and later runners are never
// invoked for that line.
type Pipeline struct {
	runners []Runner
	logger  *zap.Logger
}

func NewPipeline(runners []Runner, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{runners: runners, logger: logger}
}

// Run returns the first runner result for source, or ok=false when every
// runner declined. An empty line yields no result without invoking any
// runner. A panic inside a runner is contained and treated as a decline so
// one misbehaving runner cannot abort the batch.
func (p *Pipeline) Run(ctx context.Context, source string) (string, bool) {
	if source == "" {
		return "", false
	}
	for _, runner := range p.runners {
		result, err := p.attempt(ctx, runner, source)
		if err != nil {
			p.logger.Debug("runner declined",
				zap.String("runner", runner.Name()),
				zap.Error(err))
			continue
		}
		if result != "" {
			return result, true
		}
	}
	return "", false
}

func (p *Pipeline) attempt(ctx context.Context, runner Runner, source string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("runner panicked",
				zap.String("runner", runner.Name()),
				zap.Any("panic", r))
			result = ""
			err = fmt.Errorf("runner %s panicked: %v", runner.Name(), r)
		}
	}()
	return runner.Run(ctx, source)
}
