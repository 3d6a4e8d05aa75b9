package spanscore

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/jamesainslie/go-spanscore/internal/assignment"
)

// Counts is the scoring triple. With Exact similarity the fields are the
// true-positive, gold and system span counts.
type Counts struct {
	Matched float64 `json:"matched" yaml:"matched"`
	Gold    float64 `json:"gold" yaml:"gold"`
	System  float64 `json:"system" yaml:"system"`
}

// Add returns the field-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Matched: c.Matched + o.Matched,
		Gold:    c.Gold + o.Gold,
		System:  c.System + o.System,
	}
}

// Precision is Matched/System, or 0 when there are no system spans.
func (c Counts) Precision() float64 {
	if c.System == 0 {
		return 0
	}
	return c.Matched / c.System
}

// Recall is Matched/Gold, or 0 when there are no gold spans.
func (c Counts) Recall() float64 {
	if c.Gold == 0 {
		return 0
	}
	return c.Matched / c.Gold
}

// F1 is 2·Matched/(Gold+System), or 0 when both sides are empty.
func (c Counts) F1() float64 {
	if c.Gold+c.System == 0 {
		return 0
	}
	return 2 * c.Matched / (c.Gold + c.System)
}

// Pair is a gold and a system span assigned to each other.
type Pair struct {
	Gold   Span
	System Span
	Score  float64
}

// Alignment is the optimal one-to-one assignment between a gold and a
// system span set.
type Alignment struct {
	Counts
	// Pairs lists assigned pairs with a non-zero score, in system order.
	Pairs []Pair
	// Types breaks Counts down by span type. Self-similarity goes to the
	// span's own type and a pair's score to the gold span's type.
	Types map[string]Counts
}

// Align computes the maximum-weight assignment between gold and system
// under sim. Each span takes part in at most one pair. Duplicate spans
// within a side count once. A similarity value outside [0, 1], NaN
// included, fails with ErrConfig.
func Align(gold, system []Span, sim Similarity) (Alignment, error) {
	gold = spanSet(slices.Clone(gold))
	system = spanSet(slices.Clone(system))

	a := Alignment{Types: make(map[string]Counts)}
	for _, g := range gold {
		self, err := boundedSimilarity(sim, g, g)
		if err != nil {
			return Alignment{}, err
		}
		a.Gold += self
		a.addType(g.Type, Counts{Gold: self})
	}
	for _, s := range system {
		self, err := boundedSimilarity(sim, s, s)
		if err != nil {
			return Alignment{}, err
		}
		a.System += self
		a.addType(s.Type, Counts{System: self})
	}
	if len(gold) == 0 || len(system) == 0 {
		return a, nil
	}

	benefit := mat.NewDense(len(system), len(gold), nil)
	for i, s := range system {
		for j, g := range gold {
			v, err := boundedSimilarity(sim, g, s)
			if err != nil {
				return Alignment{}, err
			}
			benefit.Set(i, j, v)
		}
	}

	res := assignment.MaxWeight(benefit)
	res.Pairs(func(i, j int) {
		score := benefit.At(i, j)
		if score == 0 {
			return
		}
		a.Pairs = append(a.Pairs, Pair{Gold: gold[j], System: system[i], Score: score})
		a.addType(gold[j].Type, Counts{Matched: score})
	})
	a.Matched = res.Total
	return a, nil
}

// boundedSimilarity calls sim and checks the result is in [0, 1]. The
// assignment solver does not terminate on NaN or infinite weights.
func boundedSimilarity(sim Similarity, g, s Span) (float64, error) {
	v := sim(g, s)
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: similarity of %s and %s is %v, outside [0, 1]", ErrConfig, g, s, v)
	}
	return v, nil
}

func (a *Alignment) addType(typ string, c Counts) {
	a.Types[typ] = a.Types[typ].Add(c)
}

// Score returns the matched score and the self-similarity sums of the two
// span sets under sim.
func Score(gold, system []Span, sim Similarity) (Counts, error) {
	a, err := Align(gold, system, sim)
	if err != nil {
		return Counts{}, err
	}
	return a.Counts, nil
}
