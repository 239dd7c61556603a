// Package ranking orders matrix rows or columns by descending similarity
// to a pivot vector under an interchangeable metric.
package ranking

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"lexsim/internal/domain"
)

// Entry pairs a row or column index with its similarity to the pivot.
type Entry struct {
	Index int
	Score float64
}

// Rows ranks every row of m other than pivot by descending similarity to
// the pivot row. The full ordering (length rows-1) is returned; ties keep
// ascending index order, so repeated calls yield identical sequences.
func Rows(m mat.Matrix, pivot int, metric domain.Metric) []Entry {
	rows, _ := m.Dims()
	target := mat.Row(nil, pivot, m)
	entries := make([]Entry, 0, rows-1)
	for i := 0; i < rows; i++ {
		if i == pivot {
			continue
		}
		entries = append(entries, Entry{Index: i, Score: metric.Score(target, mat.Row(nil, i, m))})
	}
	sortByScore(entries)
	return entries
}

// Columns ranks every column of m other than pivot by descending
// similarity to the pivot column, with the same ordering guarantees as
// Rows.
func Columns(m mat.Matrix, pivot int, metric domain.Metric) []Entry {
	_, cols := m.Dims()
	target := mat.Col(nil, pivot, m)
	entries := make([]Entry, 0, cols-1)
	for j := 0; j < cols; j++ {
		if j == pivot {
			continue
		}
		entries = append(entries, Entry{Index: j, Score: metric.Score(target, mat.Col(nil, j, m))})
	}
	sortByScore(entries)
	return entries
}

func sortByScore(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
