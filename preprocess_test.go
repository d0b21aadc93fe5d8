package numo

import "testing"

func TestPreprocessorDefinitions(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"equals", "x = 5", "x = 5"},
		{"colon", "x : 5", "x = 5"},
		{"walrus", "x := 5", "x = 5"},
		{"no spaces", "x=5", "x = 5"},
		{"expression value kept verbatim", "y = 2 + 3", "y = 2 + 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPreprocessor(NewStore())
			if got := p.Process(tt.line); got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestPreprocessorColonWinsOverEquals(t *testing.T) {
	store := NewStore()
	p := NewPreprocessor(store)
	p.Process("x : 1 = 2")
	if v, _ := store.Lookup("x"); v != "1 = 2" {
		t.Errorf("Lookup(x) = %q, want %q", v, "1 = 2")
	}
}

func TestPreprocessorSubstitution(t *testing.T) {
	store := NewStore()
	p := NewPreprocessor(store)
	p.Process("x = 5")
	p.Process("y = 3")

	tests := []struct {
		line string
		want string
	}{
		{"x + y", "5 + 3"},
		{"X + Y", "5 + 3"},
		{"5 plus 3", "5 + 3"},
		{"10 TIMES 2", "10 * 2"},
		{"x plus y", "5 + 3"},
		{"unknown + 1", "unknown + 1"},
		{"  x   +   y  ", "5 + 3"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := p.Process(tt.line); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestPreprocessorChainedDefinition(t *testing.T) {
	store := NewStore()
	p := NewPreprocessor(store)
	p.Process("x = 5")
	p.Process("y = 3")

	// The right-hand side is substituted before it is stored, so z holds the
	// resolved text, not the reference chain.
	if got := p.Process("z = x + y"); got != "z = 5 + 3" {
		t.Errorf("Process(z = x + y) = %q", got)
	}
	if v, _ := store.Lookup("z"); v != "5 + 3" {
		t.Errorf("Lookup(z) = %q, want %q", v, "5 + 3")
	}
}

func TestPreprocessorSingleSubstitutionPass(t *testing.T) {
	store := NewStore()
	p := NewPreprocessor(store)
	// Self-referential binding must not loop.
	store.Define("a", "a")
	if got := p.Process("a + 1"); got != "a + 1" {
		t.Errorf("Process(a + 1) = %q", got)
	}
}

func TestPreprocessorNonDefinitionFallsThrough(t *testing.T) {
	p := NewPreprocessor(NewStore())
	tests := []struct {
		line string
		want string
	}{
		// Left side is not an identifier, so this is not a definition.
		{"2 + 2 = 4", "2 + 2 = 4"},
		{"= 5", "= 5"},
		{"9x = 5", "9x = 5"},
	}
	for _, tt := range tests {
		if got := p.Process(tt.line); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
