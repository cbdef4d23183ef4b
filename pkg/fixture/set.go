package fixture

// Set is an insertion-ordered collection of fixture definitions keyed by
// name. Iteration follows insertion order, so seeding and export output
// stay deterministic. Re-adding a name overwrites the definition in
// place, keeping its original position.
//
// A Set is not safe for concurrent use; each generator owns its set
// exclusively.
type Set struct {
	names  []string
	byName map[string]Definition
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{byName: make(map[string]Definition)}
}

// Add inserts or overwrites a definition under def.Name.
func (s *Set) Add(def Definition) {
	if def.Name == "" {
		return
	}
	if _, exists := s.byName[def.Name]; !exists {
		s.names = append(s.names, def.Name)
	}
	s.byName[def.Name] = def
}

// AddRaw normalizes an untyped descriptor map and adds it.
func (s *Set) AddRaw(name string, raw map[string]any) {
	s.Add(FromRaw(name, raw))
}

// Get returns the definition for name.
func (s *Set) Get(name string) (Definition, bool) {
	def, ok := s.byName[name]
	return def, ok
}

// Len returns the number of definitions.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the fixture names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// All returns the definitions in insertion order.
func (s *Set) All() []Definition {
	out := make([]Definition, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name])
	}
	return out
}

// Merge adds every definition from other, in other's order. Existing
// names are overwritten in place.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, def := range other.All() {
		s.Add(def)
	}
}

// Clone returns an independent copy of the set. Definitions share payload
// maps with the original; Resolved copies protect callers that mutate.
func (s *Set) Clone() *Set {
	out := NewSet()
	for _, def := range s.All() {
		out.Add(def)
	}
	return out
}
