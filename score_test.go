package spanscore

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		gold   []Span
		system []Span
		sim    Similarity
		want   Counts
	}{
		{
			name:   "one gold span missed",
			gold:   []Span{{0, 2, "PER"}, {3, 4, "LOC"}},
			system: []Span{{0, 2, "PER"}},
			sim:    Exact,
			want:   Counts{Matched: 1, Gold: 2, System: 1},
		},
		{
			name:   "dice partial overlap",
			gold:   []Span{{0, 4, "LOC"}},
			system: []Span{{2, 6, "LOC"}},
			sim:    Dice,
			want:   Counts{Matched: 0.5, Gold: 1, System: 1},
		},
		{
			name:   "strict partial overlap",
			gold:   []Span{{0, 4, "LOC"}},
			system: []Span{{2, 6, "LOC"}},
			sim:    Exact,
			want:   Counts{Matched: 0, Gold: 1, System: 1},
		},
		{
			name:   "system span covers two gold spans once",
			gold:   []Span{{0, 2, "PER"}, {2, 4, "PER"}},
			system: []Span{{0, 4, "PER"}},
			sim:    Dice,
			// Each pairing is worth 2*2/(2+4); only one may be used.
			want: Counts{Matched: 2.0 / 3.0, Gold: 2, System: 1},
		},
		{
			name:   "optimal rather than greedy",
			gold:   []Span{{0, 3, "X"}, {0, 1, "X"}},
			system: []Span{{0, 2, "X"}, {2, 6, "X"}},
			sim:    Dice,
			// Taking the best pair (0,3)-(0,2)=0.8 first leaves 0; the
			// optimum is (0,1)-(0,2)=2/3 plus (0,3)-(2,6)=2/7.
			want: Counts{Matched: 2.0/3.0 + 2.0/7.0, Gold: 2, System: 2},
		},
		{
			name:   "duplicates count once",
			gold:   []Span{{0, 2, "PER"}, {0, 2, "PER"}},
			system: []Span{{0, 2, "PER"}},
			sim:    Exact,
			want:   Counts{Matched: 1, Gold: 1, System: 1},
		},
		{
			name:   "empty gold",
			system: []Span{{0, 2, "PER"}},
			sim:    Dice,
			want:   Counts{System: 1},
		},
		{
			name: "both empty",
			sim:  Exact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.gold, tt.system, tt.sim)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Matched, got.Matched, 1e-12)
			assert.InDelta(t, tt.want.Gold, got.Gold, 1e-12)
			assert.InDelta(t, tt.want.System, got.System, 1e-12)
		})
	}
}

func TestScore_Metrics(t *testing.T) {
	c, err := Score([]Span{{0, 2, "PER"}, {3, 4, "LOC"}}, []Span{{0, 2, "PER"}}, Exact)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Precision())
	assert.Equal(t, 0.5, c.Recall())
	assert.InDelta(t, 2.0/3.0, c.F1(), 1e-12)

	var empty Counts
	assert.Zero(t, empty.Precision())
	assert.Zero(t, empty.Recall())
	assert.Zero(t, empty.F1())
}

func TestAlign_PairsAndTypes(t *testing.T) {
	gold := []Span{{0, 2, "PER"}, {3, 4, "LOC"}}
	system := []Span{{0, 2, "PER"}, {5, 6, "ORG"}}

	a, err := Align(gold, system, Exact)
	require.NoError(t, err)
	require.Len(t, a.Pairs, 1)
	assert.Equal(t, Pair{Gold: Span{0, 2, "PER"}, System: Span{0, 2, "PER"}, Score: 1}, a.Pairs[0])

	assert.Equal(t, Counts{Matched: 1, Gold: 1, System: 1}, a.Types["PER"])
	assert.Equal(t, Counts{Gold: 1}, a.Types["LOC"])
	assert.Equal(t, Counts{System: 1}, a.Types["ORG"])
}

func spanSetOf(rng *rand.Rand, n int) []Span {
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = randomSpan(rng)
	}
	return spans
}

func TestScore_ExactEqualsIntersection(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))

	for iter := 0; iter < 300; iter++ {
		gold := spanSetOf(rng, rng.IntN(8))
		system := spanSetOf(rng, rng.IntN(8))

		goldSet := make(map[Span]bool)
		for _, g := range gold {
			goldSet[g] = true
		}
		common := make(map[Span]bool)
		for _, s := range system {
			if goldSet[s] {
				common[s] = true
			}
		}

		got, err := Score(gold, system, Exact)
		require.NoError(t, err)
		require.Equal(t, float64(len(common)), got.Matched, "gold %v system %v", gold, system)
	}
}

func TestScore_MatchedBoundedBySelf(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 23))

	for _, sim := range []Similarity{Exact, Dice} {
		for iter := 0; iter < 300; iter++ {
			gold := spanSetOf(rng, rng.IntN(8))
			system := spanSetOf(rng, rng.IntN(8))

			got, err := Score(gold, system, sim)
			require.NoError(t, err)
			require.LessOrEqual(t, got.Matched, min(got.Gold, got.System)+1e-9)
		}
	}
}

func TestAlign_SimilarityOutOfRange(t *testing.T) {
	gold := []Span{{0, 1, "A"}, {1, 2, "A"}}
	system := []Span{{0, 1, "A"}}

	tests := []struct {
		name string
		sim  Similarity
	}{
		{name: "nan", sim: func(a, b Span) float64 { return math.NaN() }},
		{name: "positive infinity", sim: func(a, b Span) float64 { return math.Inf(1) }},
		{name: "negative", sim: func(a, b Span) float64 { return -0.5 }},
		{name: "above one", sim: func(a, b Span) float64 { return 2 }},
		{
			name: "nan off the diagonal",
			sim: func(a, b Span) float64 {
				if a == b {
					return 1
				}
				return math.NaN()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Align(gold, system, tt.sim)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)
			assert.Contains(t, err.Error(), "outside [0, 1]")
		})
	}
}
