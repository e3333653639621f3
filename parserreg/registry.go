// Package parserreg is the process-wide registry of parser providers.
//
// In Go, "plugins" are linked at build time: a parser package registers
// itself via init(), and is enabled in a binary by importing the package
// (often as a blank import). Registration happens once, before first use;
// everything after that is a read.
package parserreg

import (
	"fmt"
	"sort"
	"sync"

	"bindec.io/bindec/parser"
)

// Provider is a build-time plugin that can construct a parser.Parser.
//
// Providers typically register themselves in init():
//
//	parserreg.MustRegister(parserreg.Provider{ ... })
//
// Build runs at most once per process; the result is cached and shared,
// which is safe because a built Parser is immutable.
type Provider struct {
	Name        string
	Description string
	Usage       Usage

	// Build constructs the parser. It must be deterministic: same decoder
	// set, same order, every process.
	Build func() (*parser.Parser, error)
}

// registration wraps a Provider with its build-once cache.
type registration struct {
	Provider

	once   sync.Once
	parser *parser.Parser
	err    error
}

var (
	mu        sync.RWMutex
	providers = map[string]*registration{}
)

// Register registers a provider.
func Register(p Provider) error {
	if p.Name == "" {
		return fmt.Errorf("parserreg: provider name is required")
	}
	if p.Build == nil {
		return fmt.Errorf("parserreg: provider %q missing Build", p.Name)
	}
	if p.Usage == 0 {
		return fmt.Errorf("parserreg: provider %q missing Usage", p.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := providers[p.Name]; exists {
		return fmt.Errorf("parserreg: provider %q already registered", p.Name)
	}
	providers[p.Name] = &registration{Provider: p}
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(p Provider) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Names returns provider names matching usage, sorted.
func Names(usage Usage) []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(providers))
	for name, p := range providers {
		if p.Usage.allows(usage) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Describe returns name/description pairs matching usage, sorted by name.
func Describe(usage Usage) [][2]string {
	names := Names(usage)
	out := make([][2]string, 0, len(names))
	mu.RLock()
	defer mu.RUnlock()
	for _, name := range names {
		out = append(out, [2]string{name, providers[name].Description})
	}
	return out
}

// Open builds (once) and returns the named parser if it exists and matches
// usage.
func Open(name string, usage Usage) (*parser.Parser, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown parser %q", name)
	}
	if !p.Usage.allows(usage) {
		return nil, fmt.Errorf("parser %q not supported in this binary", name)
	}
	p.once.Do(func() {
		p.parser, p.err = p.Build()
	})
	if p.err != nil {
		return nil, fmt.Errorf("parser %q: %w", name, p.err)
	}
	return p.parser, nil
}

// OpenAll builds and returns every parser matching usage, keyed by
// provider name.
func OpenAll(usage Usage) (map[string]*parser.Parser, error) {
	out := map[string]*parser.Parser{}
	for _, name := range Names(usage) {
		p, err := Open(name, usage)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}
