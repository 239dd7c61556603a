// Package matrix builds the term-document and term-context count matrices
// from a tokenized corpus. Row i always denotes the same vocabulary token
// across every matrix derived from the same indices.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"lexsim/internal/domain"
	"lexsim/internal/index"
)

// TermDocument counts, for every vocabulary token, its occurrences in each
// document: a |V| x |D| matrix. Lines whose document is not indexed are
// skipped entirely, as are tokens missing from the vocabulary.
func TermDocument(lines []domain.Line, words, docs *index.Index) *mat.Dense {
	td := mat.NewDense(words.Len(), docs.Len(), nil)
	for _, line := range lines {
		d, err := docs.Position(line.Document)
		if err != nil {
			continue
		}
		for _, tok := range line.Tokens {
			w, err := words.Position(tok)
			if err != nil {
				continue
			}
			td.Set(w, d, td.At(w, d)+1)
		}
	}
	return td
}

// TermContext counts how often each vocabulary token occurs within a
// symmetric window of the given radius around each other vocabulary token
// on the same line: a |V| x |V| matrix. Every position is scanned as a
// target, so a pair within range is counted once from each side and the
// result is exactly symmetric, window truncation at line boundaries
// included.
func TermContext(lines []domain.Line, words *index.Index, window int) *mat.Dense {
	if window < 1 {
		window = 1
	}
	tc := mat.NewDense(words.Len(), words.Len(), nil)
	for _, line := range lines {
		for i, tok := range line.Tokens {
			target, err := words.Position(tok)
			if err != nil {
				continue
			}
			lo := max(0, i-window)
			hi := min(len(line.Tokens), i+window+1)
			for j := lo; j < hi; j++ {
				if j == i {
					continue
				}
				ctx, err := words.Position(line.Tokens[j])
				if err != nil {
					continue
				}
				tc.Set(target, ctx, tc.At(target, ctx)+1)
			}
		}
	}
	return tc
}
