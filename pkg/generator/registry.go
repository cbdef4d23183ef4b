package generator

import (
	"log/slog"
	"sync"
)

// Factory builds a domain's generator with caller-supplied options.
type Factory func(opts ...Option) (*Generator, error)

// Registered pairs a domain with its factory.
type Registered struct {
	Domain  string
	Factory Factory
}

// Named pairs a domain with an instantiated generator.
type Named struct {
	Domain    string
	Generator *Generator
}

var (
	registryMu sync.RWMutex
	factories  []Registered
)

// Register installs a domain's generator factory, typically from an init
// function in a fixture data package. Registering a domain twice replaces
// the earlier factory and keeps its position.
func Register(domain string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for i, reg := range factories {
		if reg.Domain == domain {
			slog.Warn("replacing registered generator", "domain", domain)
			factories[i].Factory = factory
			return
		}
	}
	factories = append(factories, Registered{Domain: domain, Factory: factory})
}

// Factories returns the registered factories in registration order.
func Factories() []Registered {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Registered, len(factories))
	copy(out, factories)
	return out
}

// Domains returns the registered domain names in registration order.
func Domains() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(factories))
	for _, reg := range factories {
		out = append(out, reg.Domain)
	}
	return out
}

// All instantiates every registered generator with the shared options.
// A factory that fails is logged and skipped, never fatal to the run.
func All(opts ...Option) []Named {
	regs := Factories()
	log := optionsLogger(opts)

	named := make([]Named, 0, len(regs))
	for _, reg := range regs {
		gen, err := reg.Factory(opts...)
		if err != nil {
			log.Warn("skipping generator", "domain", reg.Domain, "error", err)
			continue
		}
		named = append(named, Named{Domain: reg.Domain, Generator: gen})
	}
	return named
}

// optionsLogger recovers the logger an option list would configure, for
// registry-level messages that have no generator to log through.
func optionsLogger(opts []Option) *slog.Logger {
	probe := &Generator{logger: slog.Default()}
	for _, opt := range opts {
		opt(probe)
	}
	return probe.logger
}
