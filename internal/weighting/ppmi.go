// Package weighting derives re-weighted variants of the raw count
// matrices: PPMI from term-context counts and TF-IDF from term-document
// counts. Both are pure functions; the inputs are never mutated.
package weighting

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PPMI computes positive pointwise mutual information from a term-context
// count matrix: log2 of observed over expected co-occurrence. Cells where
// the ratio is zero or undefined come out as 0, and negative values are
// clamped to 0. An all-zero input yields an all-zero result.
func PPMI(tc *mat.Dense) *mat.Dense {
	rows, cols := tc.Dims()
	out := mat.NewDense(rows, cols, nil)
	total := mat.Sum(tc)
	if total == 0 {
		return out
	}

	rowSums := make([]float64, rows)
	buf := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(buf, i, tc)
		rowSums[i] = floats.Sum(buf)
	}
	colSums := make([]float64, cols)
	buf = make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(buf, j, tc)
		colSums[j] = floats.Sum(buf)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			observed := tc.At(i, j) * total
			if observed == 0 {
				continue
			}
			expected := rowSums[i] * colSums[j] / total
			if expected == 0 {
				continue
			}
			if pmi := math.Log2(observed / expected); pmi > 0 {
				out.Set(i, j, pmi)
			}
		}
	}
	return out
}
