package spanscore

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Similarity scores a pair of spans. Implementations must be pure, total
// and bounded in [0, 1], and should return 1 for identical spans.
type Similarity func(a, b Span) float64

// Exact returns 1 if the spans are identical, including their type, and 0
// otherwise.
func Exact(a, b Span) float64 {
	if a == b {
		return 1
	}
	return 0
}

// Dice returns the Dice coefficient of the two token ranges, or 0 if the
// types differ.
func Dice(a, b Span) float64 {
	if a.Type != b.Type {
		return 0
	}
	overlap := min(a.End, b.End) - max(a.Start, b.Start)
	if overlap <= 0 {
		return 0
	}
	return 2 * float64(overlap) / float64(a.Len()+b.Len())
}

// Names of the built-in similarity functions.
const (
	SimilarityStrict = "strict"
	SimilarityDice   = "dice"
)

// Registry maps names to similarity functions. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Similarity
}

// NewRegistry returns a registry holding the built-in functions.
func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]Similarity{
			SimilarityStrict: Exact,
			SimilarityDice:   Dice,
		},
	}
}

// DefaultRegistry is used when no registry is configured.
var DefaultRegistry = NewRegistry()

// Register adds fn under name. Names are unique.
func (r *Registry) Register(name string, fn Similarity) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: similarity needs a name and a function", ErrConfig)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("%w: similarity %q already registered", ErrConfig, name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Similarity, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown similarity %q (available: %s)",
			ErrConfig, name, strings.Join(r.Names(), ", "))
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.funcs)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Register adds fn to DefaultRegistry.
func Register(name string, fn Similarity) error {
	return DefaultRegistry.Register(name, fn)
}

// Lookup finds name in DefaultRegistry.
func Lookup(name string) (Similarity, error) {
	return DefaultRegistry.Lookup(name)
}

// Names lists DefaultRegistry.
func Names() []string {
	return DefaultRegistry.Names()
}
