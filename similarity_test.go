package spanscore

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExact(t *testing.T) {
	a := Span{0, 2, "PER"}
	assert.Equal(t, 1.0, Exact(a, a))
	assert.Equal(t, 0.0, Exact(a, Span{0, 2, "LOC"}))
	assert.Equal(t, 0.0, Exact(a, Span{0, 3, "PER"}))
}

func TestDice(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want float64
	}{
		{name: "identical", a: Span{0, 4, "LOC"}, b: Span{0, 4, "LOC"}, want: 1},
		{name: "half overlap", a: Span{0, 4, "LOC"}, b: Span{2, 6, "LOC"}, want: 0.5},
		{name: "nested", a: Span{0, 4, "LOC"}, b: Span{1, 2, "LOC"}, want: 0.4},
		{name: "touching", a: Span{0, 2, "LOC"}, b: Span{2, 4, "LOC"}, want: 0},
		{name: "disjoint", a: Span{0, 2, "LOC"}, b: Span{5, 7, "LOC"}, want: 0},
		{name: "type mismatch", a: Span{0, 4, "LOC"}, b: Span{0, 4, "ORG"}, want: 0},
		{name: "untyped", a: Span{0, 2, ""}, b: Span{1, 2, ""}, want: 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Dice(tt.a, tt.b), 1e-12)
		})
	}
}

func randomSpan(rng *rand.Rand) Span {
	types := []string{"PER", "LOC"}
	start := rng.IntN(10)
	return Span{Start: start, End: start + 1 + rng.IntN(5), Type: types[rng.IntN(len(types))]}
}

func TestSimilarity_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for iter := 0; iter < 1000; iter++ {
		a, b := randomSpan(rng), randomSpan(rng)

		require.Equal(t, 1.0, Exact(a, a))
		require.Equal(t, 1.0, Dice(a, a))
		require.Equal(t, Dice(a, b), Dice(b, a), "dice(%s, %s)", a, b)

		d := Dice(a, b)
		require.GreaterOrEqual(t, d, 0.0)
		require.LessOrEqual(t, d, 1.0)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"dice", "strict"}, r.Names())

	fn, err := r.Lookup("dice")
	require.NoError(t, err)
	assert.Equal(t, 0.5, fn(Span{0, 4, "LOC"}, Span{2, 6, "LOC"}))

	overlap := func(a, b Span) float64 {
		if min(a.End, b.End) > max(a.Start, b.Start) {
			return 1
		}
		return 0
	}
	require.NoError(t, r.Register("overlap", overlap))
	assert.Equal(t, []string{"dice", "overlap", "strict"}, r.Names())

	assert.ErrorIs(t, r.Register("overlap", overlap), ErrConfig)
	assert.ErrorIs(t, r.Register("", overlap), ErrConfig)
	assert.ErrorIs(t, r.Register("nil", nil), ErrConfig)
}

func TestRegistry_UnknownName(t *testing.T) {
	_, err := NewRegistry().Lookup("jaccard")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "dice, strict")
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("strict")
			_ = r.Names()
		}()
	}
	wg.Wait()
}

func TestDefaultRegistry(t *testing.T) {
	assert.Contains(t, Names(), "strict")
	assert.Contains(t, Names(), "dice")

	_, err := Lookup("strict")
	assert.NoError(t, err)
}
