package numo

import (
	"regexp"
	"strings"
	"sync"
)

type origin int

const (
	originOperator origin = iota
	originUser
)

type binding struct {
	value  string
	origin origin
}

var identPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// Store holds variable bindings keyed by lowercase name. Operator symbols and
// their aliases are seeded at construction; each binding records its origin
// at insertion time, so a user variable whose value happens to equal a bare
// operator symbol is still cleared by ResetUserVariables.
type Store struct {
	mu   sync.RWMutex
	vars map[string]binding
}

func NewStore() *Store {
	s := &Store{vars: make(map[string]binding)}
	s.seedOperators()
	return s
}

func (s *Store) seedOperators() {
	for op, aliases := range operatorAliases {
		for _, token := range append([]string{op}, aliases...) {
			canonical, ok := canonicalOf(token)
			if !ok {
				continue
			}
			s.vars[strings.ToLower(token)] = binding{value: canonical, origin: originOperator}
		}
	}
}

// Define validates name and stores value keyed by the lowercase name.
// A later Define for the same name overwrites the earlier value. It reports
// whether the binding was stored; an invalid name changes nothing.
func (s *Store) Define(name, value string) bool {
	if !identPattern.MatchString(name) {
		return false
	}
	s.mu.Lock()
	s.vars[strings.ToLower(name)] = binding{value: value, origin: originUser}
	s.mu.Unlock()
	return true
}

// Lookup returns the value bound to name. Lookup is case-insensitive and
// exact; there is no partial matching.
func (s *Store) Lookup(name string) (string, bool) {
	s.mu.RLock()
	b, ok := s.vars[strings.ToLower(name)]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	return b.value, true
}

// ResetUserVariables removes every user-defined binding and restores the
// operator seeds, so alias entries stay resolvable even when a user binding
// shadowed one of them.
func (s *Store) ResetUserVariables() {
	s.mu.Lock()
	for name, b := range s.vars {
		if b.origin == originUser {
			delete(s.vars, name)
		}
	}
	s.seedOperators()
	s.mu.Unlock()
}

// Len returns the number of bindings, operator seeds included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}
