package parser

import "sort"

// State holds the custom type names introduced by typedef declarations.
// It is seeded empty for a fresh parse and grows as typedefs are consumed.
// Callers that want typedef names to carry across separate Parse calls
// (an interactive session, for example) reuse the same State; concurrent
// parses must each own their own State.
type State struct {
	customTypes map[string]struct{}
}

// NewState creates an empty parser state.
func NewState() *State {
	return &State{customTypes: make(map[string]struct{})}
}

// Define registers a name as a custom type.
func (s *State) Define(name string) {
	s.customTypes[name] = struct{}{}
}

// IsDefined reports whether the name has been registered as a custom type.
func (s *State) IsDefined(name string) bool {
	_, ok := s.customTypes[name]
	return ok
}

// Names returns the registered custom type names in sorted order.
func (s *State) Names() []string {
	names := make([]string, 0, len(s.customTypes))
	for name := range s.customTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
