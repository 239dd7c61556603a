// Package domain holds the data types and strategy interfaces shared by
// the corpus, matrix, ranking, and presentation layers.
package domain

// Line is a single tokenized line of the source text together with the
// name of the document it belongs to.
type Line struct {
	Document string
	Tokens   []string
}

// Corpus is the tokenized input to the matrix builders: the ordered lines
// plus the ordered document and vocabulary lists that fix the matrix
// dimensions and index semantics.
type Corpus struct {
	Lines      []Line
	Documents  []string
	Vocabulary []string
}

// Neighbor is one entry of a similarity ranking with its name resolved.
type Neighbor struct {
	Name  string
	Score float64
}

// Metric scores the similarity of two equal-length vectors. Implementations
// must be total: degenerate inputs (zero vectors, empty unions) score 0
// rather than failing.
type Metric interface {
	Name() string
	Score(u, v []float64) float64
}
