// Package assignment solves the linear assignment problem exactly.
package assignment

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result is an optimal pairing of matrix rows and columns.
type Result struct {
	// RowToCol maps each row to its paired column, or -1 if unpaired.
	RowToCol []int
	// Total is the sum of the paired entries.
	Total float64
}

// Pairs calls fn for every paired (row, col).
func (r Result) Pairs(fn func(row, col int)) {
	for i, j := range r.RowToCol {
		if j >= 0 {
			fn(i, j)
		}
	}
}

// MaxWeight returns a one-to-one pairing between the rows and columns of
// benefit that maximizes the sum of paired entries. Entries must be finite
// and non-negative, so every row or every column (whichever side is smaller) is
// paired; extra pairs of weight zero do not change the optimum.
func MaxWeight(benefit mat.Matrix) Result {
	rows, cols := benefit.Dims()
	res := Result{RowToCol: make([]int, rows)}
	for i := range res.RowToCol {
		res.RowToCol[i] = -1
	}
	if rows == 0 || cols == 0 {
		return res
	}

	// The solver needs no more rows than columns.
	transposed := rows > cols
	m := benefit
	if transposed {
		m = benefit.T()
	}

	colOf := minCost(m)
	for i, j := range colOf {
		if transposed {
			res.RowToCol[j] = i
		} else {
			res.RowToCol[i] = j
		}
	}

	res.Pairs(func(i, j int) {
		res.Total += benefit.At(i, j)
	})
	return res
}

// minCost runs the Hungarian method with potentials on the negated
// benefits of an n×m matrix, n <= m, in O(n²m). It returns the column
// assigned to each row.
func minCost(benefit mat.Matrix) []int {
	n, m := benefit.Dims()
	cost := func(i, j int) float64 { return -benefit.At(i-1, j-1) }

	// Index 0 is a virtual row/column; real ones are 1-based.
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)   // p[j]: row matched to column j
	way := make([]int, m+1) // way[j]: previous column on the augmenting path
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0, j) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colOf := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			colOf[p[j]-1] = j - 1
		}
	}
	return colOf
}
