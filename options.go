package spanscore

import (
	"log/slog"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	scheme     Scheme
	pattern    string
	similarity string
	simFunc    Similarity
	registry   *Registry
	goldColumn int
	sysColumn  int
	workers    int
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		scheme:     BILOU,
		pattern:    DefaultLabelPattern,
		similarity: SimilarityStrict,
		registry:   DefaultRegistry,
		goldColumn: -1,
		sysColumn:  -2,
		workers:    1,
		logger:     slog.Default(),
	}
}

// WithScheme sets the tagging scheme (default: BILOU).
func WithScheme(s Scheme) Option {
	return func(c *config) {
		c.scheme = s
	}
}

// WithLabelPattern sets the label pattern (default: DefaultLabelPattern).
func WithLabelPattern(pattern string) Option {
	return func(c *config) {
		c.pattern = pattern
	}
}

// WithSimilarity selects a registered similarity function by name
// (default: "strict").
func WithSimilarity(name string) Option {
	return func(c *config) {
		c.similarity = name
		c.simFunc = nil
	}
}

// WithSimilarityFunc uses fn directly, bypassing the registry.
func WithSimilarityFunc(name string, fn Similarity) Option {
	return func(c *config) {
		c.similarity = name
		c.simFunc = fn
	}
}

// WithRegistry sets the registry similarity names are looked up in
// (default: DefaultRegistry).
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithColumns sets the gold and system column indices. Negative indices
// count from the last column (default: -1 and -2).
func WithColumns(gold, sys int) Option {
	return func(c *config) {
		c.goldColumn = gold
		c.sysColumn = sys
	}
}

// WithWorkers sets how many blocks are scored concurrently (default: 1).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
