//go:build ignore

// Generate synthetic labelled files for load testing the scorer.
// Gold spans are random; system spans are the gold spans with boundary
// shifts, type swaps, drops and spurious insertions.
// Usage: go run ./scripts/gen-conll.go
package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	spanscore "github.com/jamesainslie/go-spanscore"
)

const (
	outDir    = "testdata/synthetic"
	sentences = 20000
	maxTokens = 40
)

var types = []string{"PER", "LOC", "ORG", "MISC"}

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	for _, scheme := range []spanscore.Scheme{spanscore.BILOU, spanscore.BIO} {
		outFile := filepath.Join(outDir, fmt.Sprintf("%s.conll", scheme))
		fmt.Printf("Generating %s...\n", outFile)

		tokens, err := generate(outFile, scheme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}
		fmt.Printf("  -> %s (%d sentences, %d tokens)\n", outFile, sentences, tokens)
	}
}

func generate(path string, scheme spanscore.Scheme) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	// Fixed seed so regenerated files diff cleanly.
	rng := rand.New(rand.NewPCG(2024, uint64(scheme)))
	w := bufio.NewWriter(file)
	total := 0

	for s := 0; s < sentences; s++ {
		n := 1 + rng.IntN(maxTokens)
		gold := randomSpans(rng, n)
		sys := perturb(rng, gold, n)

		goldLabels, err := spanscore.Encode(gold, n, scheme)
		if err != nil {
			return 0, fmt.Errorf("encoding gold: %w", err)
		}
		sysLabels, err := spanscore.Encode(sys, n, scheme)
		if err != nil {
			return 0, fmt.Errorf("encoding system: %w", err)
		}

		if s > 0 {
			fmt.Fprintln(w)
		}
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, "w%d %s %s\n", i, sysLabels[i], goldLabels[i])
		}
		total += n
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing: %w", err)
	}
	return total, nil
}

func randomSpans(rng *rand.Rand, n int) []spanscore.Span {
	var spans []spanscore.Span
	for i := 0; i < n; {
		if rng.IntN(2) == 0 {
			i++
			continue
		}
		end := min(n, i+1+rng.IntN(3))
		spans = append(spans, spanscore.Span{Start: i, End: end, Type: types[rng.IntN(len(types))]})
		i = end
	}
	return spans
}

// perturb keeps the output non-overlapping so it can be encoded.
func perturb(rng *rand.Rand, gold []spanscore.Span, n int) []spanscore.Span {
	var out []spanscore.Span
	next := 0
	for _, g := range gold {
		switch rng.IntN(10) {
		case 0:
			continue
		case 1:
			g.Type = types[rng.IntN(len(types))]
		case 2:
			if g.End < n {
				g.End++
			}
		case 3:
			if g.Start > 0 {
				g.Start--
			}
		}
		if g.Start < next {
			g.Start = next
		}
		if g.Start >= g.End {
			continue
		}
		out = append(out, g)
		next = g.End
	}
	// Spurious unit span in the gap after the last span.
	if next < n && rng.IntN(5) == 0 {
		out = append(out, spanscore.Span{Start: next, End: next + 1, Type: types[rng.IntN(len(types))]})
	}
	return out
}
