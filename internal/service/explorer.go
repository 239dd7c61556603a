// Package service assembles the full pipeline: indices, count matrices,
// weighted matrices, and similarity queries over them.
package service

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"lexsim/internal/domain"
	"lexsim/internal/index"
	"lexsim/internal/matrix"
	"lexsim/internal/ranking"
	"lexsim/internal/weighting"
)

// Space selects which matrix a similarity query runs against.
type Space string

const (
	// Counts queries the raw term-document or term-context counts.
	Counts Space = "counts"
	// TFIDF queries the idf-weighted term-document matrix. Documents only.
	TFIDF Space = "tfidf"
	// PPMI queries the PPMI-weighted term-context matrix. Words only.
	PPMI Space = "ppmi"
)

// Options carry the weighting parameters for matrix construction.
type Options struct {
	Window  int     // context radius in tokens
	Epsilon float64 // idf zero-guard
}

// Stats reports the corpus and matrix dimensions plus the hapax-legomenon
// count (vocabulary tokens occurring exactly once across the corpus).
type Stats struct {
	Words     int
	Documents int
	Lines     int
	Hapaxes   int
}

// Explorer owns the indices and all four matrices. Everything is built
// once by New and never mutated, so concurrent queries need no locking.
type Explorer struct {
	log   *slog.Logger
	words *index.Index
	docs  *index.Index

	termDoc *mat.Dense
	termCtx *mat.Dense
	tfidf   *mat.Dense
	ppmi    *mat.Dense

	numLines int
}

// New eagerly builds every matrix from the corpus. An empty vocabulary or
// document list is rejected up front: the dense matrices need at least one
// entry along each axis.
func New(c *domain.Corpus, opts Options, log *slog.Logger) (*Explorer, error) {
	if log == nil {
		log = slog.Default()
	}
	words := index.New(c.Vocabulary)
	docs := index.New(c.Documents)
	if words.Len() == 0 {
		return nil, fmt.Errorf("corpus has no vocabulary tokens")
	}
	if docs.Len() == 0 {
		return nil, fmt.Errorf("corpus has no documents")
	}

	termDoc := matrix.TermDocument(c.Lines, words, docs)
	termCtx := matrix.TermContext(c.Lines, words, opts.Window)
	e := &Explorer{
		log:      log,
		words:    words,
		docs:     docs,
		termDoc:  termDoc,
		termCtx:  termCtx,
		tfidf:    weighting.TFIDF(termDoc, opts.Epsilon),
		ppmi:     weighting.PPMI(termCtx),
		numLines: len(c.Lines),
	}

	st := e.Stats()
	log.Info("matrices built",
		"vocabulary", st.Words,
		"documents", st.Documents,
		"lines", st.Lines,
		"window", opts.Window,
		"hapaxes", st.Hapaxes)
	return e, nil
}

// SimilarDocuments ranks all other documents by descending similarity to
// the named document in the chosen space (Counts or TFIDF). k <= 0 returns
// the full ranking. Unknown names yield an error wrapping index.ErrNotFound.
func (e *Explorer) SimilarDocuments(name string, space Space, metric domain.Metric, k int) ([]domain.Neighbor, error) {
	pivot, err := e.docs.Position(name)
	if err != nil {
		return nil, fmt.Errorf("rank documents: %w", err)
	}
	var m *mat.Dense
	switch space {
	case Counts, "":
		m = e.termDoc
	case TFIDF:
		m = e.tfidf
	default:
		return nil, fmt.Errorf("space %q does not apply to documents", space)
	}
	return e.resolve(e.docs, ranking.Columns(m, pivot, metric), k), nil
}

// SimilarWords ranks all other vocabulary tokens by descending similarity
// to the given word in the chosen space (Counts or PPMI), with the same
// conventions as SimilarDocuments.
func (e *Explorer) SimilarWords(word string, space Space, metric domain.Metric, k int) ([]domain.Neighbor, error) {
	pivot, err := e.words.Position(word)
	if err != nil {
		return nil, fmt.Errorf("rank words: %w", err)
	}
	var m *mat.Dense
	switch space {
	case Counts, "":
		m = e.termCtx
	case PPMI:
		m = e.ppmi
	default:
		return nil, fmt.Errorf("space %q does not apply to words", space)
	}
	return e.resolve(e.words, ranking.Rows(m, pivot, metric), k), nil
}

// Documents returns the indexed document names in matrix column order.
func (e *Explorer) Documents() []string { return e.docs.Names() }

// Stats recomputes the corpus diagnostics from the term-document matrix.
func (e *Explorer) Stats() Stats {
	rows, cols := e.termDoc.Dims()
	row := make([]float64, cols)
	hapaxes := 0
	for i := 0; i < rows; i++ {
		mat.Row(row, i, e.termDoc)
		if floats.Sum(row) == 1 {
			hapaxes++
		}
	}
	return Stats{Words: rows, Documents: cols, Lines: e.numLines, Hapaxes: hapaxes}
}

func (e *Explorer) resolve(ix *index.Index, entries []ranking.Entry, k int) []domain.Neighbor {
	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	out := make([]domain.Neighbor, len(entries))
	for i, en := range entries {
		// ranker indices come from matrices sized by this same index
		name, _ := ix.Name(en.Index)
		out[i] = domain.Neighbor{Name: name, Score: en.Score}
	}
	return out
}
