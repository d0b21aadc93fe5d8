package numo

import (
	"fmt"
	"strings"
	"sync"
)

// Function is a pure numeric function usable inside input lines, e.g.
// sqrt(16) or pow(2, 3). Functions run during preprocessing; the safe
// evaluator itself never calls them.
type Function func(args ...float64) (float64, error)

// FunctionRegistry manages registered functions in a thread-safe manner
type FunctionRegistry struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		funcs: make(map[string]Function),
	}
}

// Register adds a function to the registry
func (r *FunctionRegistry) Register(name string, fn Function) error {
	if name == "" {
		return fmt.Errorf("function name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	normalizedName := strings.ToLower(name)
	if _, exists := r.funcs[normalizedName]; exists {
		return fmt.Errorf("function %s already registered", name)
	}

	r.funcs[normalizedName] = fn
	return nil
}

// Lookup retrieves a function from the registry, case-insensitively.
func (r *FunctionRegistry) Lookup(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[strings.ToLower(name)]
	return fn, ok
}

// List returns all registered function names
func (r *FunctionRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// Global registry instance
var globalRegistry = NewFunctionRegistry()

// RegisterFunction registers a function in the global registry
func RegisterFunction(name string, fn Function) error {
	return globalRegistry.Register(name, fn)
}

// LookupFunction looks up a function in the global registry
func LookupFunction(name string) (Function, bool) {
	return globalRegistry.Lookup(name)
}
