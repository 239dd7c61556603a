package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexsim/internal/domain"
	"lexsim/internal/index"
	"lexsim/internal/similarity"
)

func toyCorpus() *domain.Corpus {
	return &domain.Corpus{
		Lines: []domain.Line{
			{Document: "A", Tokens: []string{"a", "b"}},
			{Document: "B", Tokens: []string{"b", "c"}},
		},
		Documents:  []string{"A", "B"},
		Vocabulary: []string{"a", "b", "c"},
	}
}

func newToyExplorer(t *testing.T) *Explorer {
	t.Helper()
	e, err := New(toyCorpus(), Options{Window: 1}, nil)
	require.NoError(t, err)
	return e
}

func TestNewRejectsEmptyVocabulary(t *testing.T) {
	c := &domain.Corpus{
		Lines:     []domain.Line{{Document: "A", Tokens: []string{"a"}}},
		Documents: []string{"A"},
	}
	_, err := New(c, Options{Window: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vocabulary")
}

func TestNewRejectsEmptyDocumentList(t *testing.T) {
	c := &domain.Corpus{
		Vocabulary: []string{"a", "b"},
	}
	_, err := New(c, Options{Window: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documents")
}

func TestSimilarDocuments(t *testing.T) {
	e := newToyExplorer(t)

	got, err := e.SimilarDocuments("A", Counts, similarity.Cosine{}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
	assert.InDelta(t, 0.5, got[0].Score, 1e-12)
}

func TestSimilarDocumentsTFIDFSpace(t *testing.T) {
	e := newToyExplorer(t)

	got, err := e.SimilarDocuments("A", TFIDF, similarity.Jaccard{}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestSimilarWords(t *testing.T) {
	e := newToyExplorer(t)

	for _, space := range []Space{Counts, PPMI} {
		got, err := e.SimilarWords("b", space, similarity.Cosine{}, 0)
		require.NoError(t, err)
		require.Len(t, got, 2, "full ranking excludes only the pivot")
		for _, n := range got {
			assert.NotEqual(t, "b", n.Name)
		}
	}
}

func TestTopKTruncation(t *testing.T) {
	e := newToyExplorer(t)

	got, err := e.SimilarWords("a", Counts, similarity.Dice{}, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUnknownNamesSurfaceNotFound(t *testing.T) {
	e := newToyExplorer(t)

	_, err := e.SimilarDocuments("Macbeth", Counts, similarity.Cosine{}, 0)
	require.ErrorIs(t, err, index.ErrNotFound)

	_, err = e.SimilarWords("zounds", Counts, similarity.Cosine{}, 0)
	require.ErrorIs(t, err, index.ErrNotFound)
}

func TestInvalidSpaces(t *testing.T) {
	e := newToyExplorer(t)

	_, err := e.SimilarDocuments("A", PPMI, similarity.Cosine{}, 0)
	require.Error(t, err)

	_, err = e.SimilarWords("a", TFIDF, similarity.Cosine{}, 0)
	require.Error(t, err)
}

func TestDeterministicAcrossCalls(t *testing.T) {
	e := newToyExplorer(t)

	first, err := e.SimilarWords("b", PPMI, similarity.Jaccard{}, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.SimilarWords("b", PPMI, similarity.Jaccard{}, 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStats(t *testing.T) {
	e := newToyExplorer(t)

	st := e.Stats()
	assert.Equal(t, 3, st.Words)
	assert.Equal(t, 2, st.Documents)
	assert.Equal(t, 2, st.Lines)
	// "a" and "c" occur exactly once across the corpus.
	assert.Equal(t, 2, st.Hapaxes)
}

func TestDocuments(t *testing.T) {
	e := newToyExplorer(t)
	assert.Equal(t, []string{"A", "B"}, e.Documents())
}
