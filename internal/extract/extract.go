package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrArticleNotFound signals that the page does not contain the expected article markup.
var ErrArticleNotFound = errors.New("article not found")

// ErrUnknownExtractor reports a site configured with an unregistered strategy.
var ErrUnknownExtractor = errors.New("unknown extractor")

// Strategy captures a single site adapter (inosmi, readability, etc.).
type Strategy interface {
	Name() string
	Extract(pageURL string, html string, options map[string]string) (string, error)
}

// Registry keeps a mapping from strategy names to their implementations.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// Register adds or replaces a strategy implementation.
func (r *Registry) Register(strategy Strategy) {
	if r.strategies == nil {
		r.strategies = map[string]Strategy{}
	}
	r.strategies[strategy.Name()] = strategy
}

// Resolve looks a strategy up by name; misses wrap ErrUnknownExtractor
// and list what is registered.
func (r *Registry) Resolve(name string) (Strategy, error) {
	strategy, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", ErrUnknownExtractor, name, strings.Join(r.Names(), ", "))
	}
	return strategy, nil
}

// Names returns the registered strategy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
