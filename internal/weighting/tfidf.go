package weighting

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon guards the idf denominator when a token occurs in every
// document.
const DefaultEpsilon = 1e-10

// TFIDF scales a term-document count matrix by inverse document frequency:
// idf[w] = ln(|D| / (df[w] + epsilon)), where df[w] is the number of
// documents containing token w. Epsilon values <= 0 fall back to
// DefaultEpsilon.
func TFIDF(td *mat.Dense, epsilon float64) *mat.Dense {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	rows, cols := td.Dims()
	out := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for w := 0; w < rows; w++ {
		mat.Row(row, w, td)
		df := 0
		for _, count := range row {
			if count > 0 {
				df++
			}
		}
		idf := math.Log(float64(cols) / (float64(df) + epsilon))
		for d, count := range row {
			out.Set(w, d, count*idf)
		}
	}
	return out
}
