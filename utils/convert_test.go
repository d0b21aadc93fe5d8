package utils

import (
	"testing"
	"time"
)

type sample struct {
	Name    string        `json:"name"`
	Retries int           `json:"retries"`
	Ratio   float64       `json:"ratio"`
	Debug   bool          `json:"debug"`
	Wait    time.Duration `json:"wait"`
	Tags    []string      `json:"tags"`
	Extra   map[string]string
}

func TestConvert(t *testing.T) {
	src := map[string]any{
		"name":    "demo",
		"retries": float64(3), // JSON numbers decode as float64
		"ratio":   0.5,
		"debug":   true,
		"wait":    "250ms",
		"tags":    []any{"a", "b"},
		"Extra":   map[string]any{"k": "v"},
	}

	var got sample
	if err := Convert(src, &got); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got.Name != "demo" || got.Retries != 3 || got.Ratio != 0.5 || !got.Debug {
		t.Errorf("scalar fields: %+v", got)
	}
	if got.Wait != 250*time.Millisecond {
		t.Errorf("Wait = %v", got.Wait)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a" || got.Tags[1] != "b" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if got.Extra["k"] != "v" {
		t.Errorf("Extra = %v", got.Extra)
	}
}

func TestConvertPartial(t *testing.T) {
	got := sample{Name: "keep", Retries: 9}
	if err := Convert(map[string]any{"debug": true}, &got); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got.Name != "keep" || got.Retries != 9 || !got.Debug {
		t.Errorf("absent keys must not clobber fields: %+v", got)
	}
}

func TestConvertErrors(t *testing.T) {
	var s sample
	if err := Convert(map[string]any{"wait": "soon"}, &s); err == nil {
		t.Error("bad duration accepted")
	}
	if err := Convert(map[string]any{"retries": "three"}, &s); err == nil {
		t.Error("string into int accepted")
	}
	if err := Convert(nil, sample{}); err == nil {
		t.Error("non-pointer destination accepted")
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("NUMO_TEST_KEY", "set")
	if v := Getenv("NUMO_TEST_KEY", "fallback"); v != "set" {
		t.Errorf("Getenv = %q", v)
	}
	if v := Getenv("NUMO_TEST_KEY_ABSENT", "fallback"); v != "fallback" {
		t.Errorf("Getenv default = %q", v)
	}
	if v := Getenv("NUMO_TEST_KEY_ABSENT"); v != "" {
		t.Errorf("Getenv without default = %q", v)
	}
}
