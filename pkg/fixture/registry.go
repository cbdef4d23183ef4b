package fixture

import (
	"sort"
	"sync"
)

// dataRegistry holds the statically registered fixture data sets, grouped
// by domain in registration order.
type dataRegistry struct {
	mu      sync.RWMutex
	domains []string
	sets    map[string][]registeredSet
}

type registeredSet struct {
	name string
	defs []Definition
}

var registry = &dataRegistry{sets: make(map[string][]registeredSet)}

// RegisterSet registers a named fixture data set for a domain. Data
// packages call this from init; a generator for the domain merges every
// registered set, in registration order, when it is built without
// explicit data. Set names end in "_fixtures" by convention but any name
// works.
//
// Go map literals carry no declaration order, so entries within one raw
// set are added in sorted-name order. Use RegisterDefinitions when the
// seeding order inside a set matters.
func RegisterSet(domain, name string, raw map[string]map[string]any) {
	if len(raw) == 0 {
		return
	}
	names := make([]string, 0, len(raw))
	for n := range raw {
		names = append(names, n)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(raw))
	for _, n := range names {
		defs = append(defs, FromRaw(n, raw[n]))
	}
	register(domain, name, defs)
}

// RegisterDefinitions registers typed definitions for a domain,
// preserving the given order.
func RegisterDefinitions(domain, name string, defs ...Definition) {
	register(domain, name, defs)
}

func register(domain, name string, defs []Definition) {
	if domain == "" || len(defs) == 0 {
		return
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.sets[domain]; !exists {
		registry.domains = append(registry.domains, domain)
	}
	registry.sets[domain] = append(registry.sets[domain], registeredSet{name: name, defs: defs})
}

// SetsFor merges every data set registered for domain into one Set, in
// registration order. An unknown domain yields an empty set, not an
// error.
func SetsFor(domain string) *Set {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	merged := NewSet()
	for _, reg := range registry.sets[domain] {
		for _, def := range reg.defs {
			merged.Add(def)
		}
	}
	return merged
}

// SetNamesFor returns the names of the data sets registered for domain,
// in registration order.
func SetNamesFor(domain string) []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, 0, len(registry.sets[domain]))
	for _, reg := range registry.sets[domain] {
		out = append(out, reg.name)
	}
	return out
}

// Domains returns every domain with registered data, in registration
// order.
func Domains() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, len(registry.domains))
	copy(out, registry.domains)
	return out
}
