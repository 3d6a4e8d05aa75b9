package spanscore

import (
	"context"
	"fmt"
	"slices"
	"sort"
)

// Comparison holds the totals of one similarity function.
type Comparison struct {
	Similarity string
	Totals     Totals
}

// Compare scores lines once per named similarity function and returns the
// results sorted by F1, best first. With no names, every function in the
// configured registry is used. opts apply to every run.
func Compare(ctx context.Context, lines []string, names []string, opts ...Option) ([]Comparison, error) {
	if len(names) == 0 {
		cfg := defaultConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		names = cfg.registry.Names()
	}

	results := make([]Comparison, 0, len(names))
	for _, name := range names {
		ev, err := New(append(slices.Clone(opts), WithSimilarity(name))...)
		if err != nil {
			return nil, err
		}
		t, err := ev.ScoreLines(ctx, lines)
		if err != nil {
			return nil, fmt.Errorf("similarity %s: %w", name, err)
		}
		results = append(results, Comparison{Similarity: name, Totals: t})
	}

	sort.SliceStable(results, func(i, j int) bool {
		fi, fj := results[i].Totals.F1(), results[j].Totals.F1()
		if fi != fj {
			return fi > fj
		}
		return results[i].Similarity < results[j].Similarity
	})
	return results, nil
}
