package numo

import (
	"context"
	"errors"
	"testing"
)

type stubRunner struct {
	name   string
	result string
	err    error
	panics bool
	calls  int
}

func (s *stubRunner) Name() string { return s.name }

func (s *stubRunner) Run(ctx context.Context, source string) (string, error) {
	s.calls++
	if s.panics {
		panic("stub blew up")
	}
	return s.result, s.err
}

func TestPipelineFirstResultWins(t *testing.T) {
	first := &stubRunner{name: "first", result: "42"}
	second := &stubRunner{name: "second", result: "never"}
	p := NewPipeline([]Runner{first, second}, nil)

	out, ok := p.Run(context.Background(), "anything")
	if !ok || out != "42" {
		t.Fatalf("Run = %q, %v", out, ok)
	}
	if second.calls != 0 {
		t.Errorf("second runner invoked %d times after first produced a result", second.calls)
	}
}

func TestPipelineDeclineFallsThrough(t *testing.T) {
	declining := &stubRunner{name: "declining", err: errors.New("not mine")}
	empty := &stubRunner{name: "empty"}
	last := &stubRunner{name: "last", result: "ok"}
	p := NewPipeline([]Runner{declining, empty, last}, nil)

	out, ok := p.Run(context.Background(), "anything")
	if !ok || out != "ok" {
		t.Fatalf("Run = %q, %v", out, ok)
	}
	if declining.calls != 1 || empty.calls != 1 {
		t.Errorf("earlier runners not attempted: %d, %d", declining.calls, empty.calls)
	}
}

func TestPipelineAllDecline(t *testing.T) {
	p := NewPipeline([]Runner{
		&stubRunner{name: "a", err: errors.New("no")},
		&stubRunner{name: "b"},
	}, nil)
	if out, ok := p.Run(context.Background(), "anything"); ok {
		t.Errorf("Run = %q, want no result", out)
	}
}

func TestPipelineContainsPanic(t *testing.T) {
	bad := &stubRunner{name: "bad", panics: true}
	good := &stubRunner{name: "good", result: "ok"}
	p := NewPipeline([]Runner{bad, good}, nil)

	out, ok := p.Run(context.Background(), "anything")
	if !ok || out != "ok" {
		t.Fatalf("Run = %q, %v after panic", out, ok)
	}
}

func TestPipelineEmptyLine(t *testing.T) {
	r := &stubRunner{name: "r", result: "x"}
	p := NewPipeline([]Runner{r}, nil)
	if _, ok := p.Run(context.Background(), ""); ok {
		t.Error("empty line produced a result")
	}
	if r.calls != 0 {
		t.Errorf("runner invoked %d times for empty line", r.calls)
	}
}
