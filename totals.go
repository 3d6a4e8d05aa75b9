package spanscore

import (
	"math"
	"slices"

	"github.com/samber/lo"
)

// Totals accumulates block scores over an input.
type Totals struct {
	Counts
	// Types holds per-type counts.
	Types  map[string]Counts
	Blocks int
	Tokens int
}

// TypeNames returns the span types seen, sorted.
func (t Totals) TypeNames() []string {
	names := lo.Keys(t.Types)
	slices.Sort(names)
	return names
}

// sum is a Neumaier compensated sum.
type sum struct {
	s, c float64
}

func (k *sum) add(x float64) {
	t := k.s + x
	if math.Abs(k.s) >= math.Abs(x) {
		k.c += (k.s - t) + x
	} else {
		k.c += (x - t) + k.s
	}
	k.s = t
}

func (k sum) value() float64 {
	return k.s + k.c
}

type countsSum struct {
	matched, gold, system sum
}

func (c *countsSum) add(o Counts) {
	c.matched.add(o.Matched)
	c.gold.add(o.Gold)
	c.system.add(o.System)
}

func (c countsSum) value() Counts {
	return Counts{
		Matched: c.matched.value(),
		Gold:    c.gold.value(),
		System:  c.system.value(),
	}
}

// accumulator folds block scores into Totals. Scores must be added in
// block order for results to be reproducible.
type accumulator struct {
	all    countsSum
	types  map[string]*countsSum
	blocks int
	tokens int
}

func newAccumulator() *accumulator {
	return &accumulator{types: make(map[string]*countsSum)}
}

func (a *accumulator) add(b BlockScore) {
	a.all.add(b.Counts)
	for typ, c := range b.Types {
		acc, ok := a.types[typ]
		if !ok {
			acc = &countsSum{}
			a.types[typ] = acc
		}
		acc.add(c)
	}
	a.blocks++
	a.tokens += b.Tokens
}

func (a *accumulator) totals() Totals {
	t := Totals{
		Counts: a.all.value(),
		Types:  make(map[string]Counts, len(a.types)),
		Blocks: a.blocks,
		Tokens: a.tokens,
	}
	for typ, c := range a.types {
		t.Types[typ] = c.value()
	}
	return t
}
