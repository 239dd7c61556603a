package weighting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPPMIKnownValues(t *testing.T) {
	tc := mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	})
	// total = 2, row and column sums are all 1, so expected = 0.5 and the
	// observed ratio is (1*2)/0.5 = 4 for both non-zero cells.
	got := PPMI(tc)

	assert.InDelta(t, 2.0, got.At(0, 1), 1e-12)
	assert.InDelta(t, 2.0, got.At(1, 0), 1e-12)
	assert.Equal(t, 0.0, got.At(0, 0))
	assert.Equal(t, 0.0, got.At(1, 1))
}

func TestPPMIEmptyMatrix(t *testing.T) {
	tc := mat.NewDense(3, 3, nil)
	got := PPMI(tc)

	rows, cols := got.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, 0.0, got.At(i, j))
		}
	}
}

func TestPPMIZeroWhereSourceZero(t *testing.T) {
	tc := mat.NewDense(3, 3, []float64{
		0, 2, 0,
		2, 0, 1,
		0, 1, 0,
	})
	got := PPMI(tc)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if tc.At(i, j) == 0 {
				assert.Equal(t, 0.0, got.At(i, j), "cell (%d,%d)", i, j)
			}
			assert.GreaterOrEqual(t, got.At(i, j), 0.0)
			assert.False(t, math.IsNaN(got.At(i, j)))
			assert.False(t, math.IsInf(got.At(i, j), 0))
		}
	}
}

func TestPPMINegativeClampedToZero(t *testing.T) {
	// Observed/expected ratio of 0.5 gives pmi = -1 before clamping.
	tc := mat.NewDense(2, 2, []float64{
		0.5, 0,
		0, 0,
	})
	got := PPMI(tc)
	assert.Equal(t, 0.0, got.At(0, 0))
}

func TestTFIDFKnownValues(t *testing.T) {
	td := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
	})
	got := TFIDF(td, DefaultEpsilon)

	// df=1 rows scale by ln(2/1) = ln 2.
	assert.InDelta(t, math.Ln2, got.At(0, 0), 1e-9)
	assert.Equal(t, 0.0, got.At(0, 1))
	assert.InDelta(t, math.Ln2, got.At(2, 1), 1e-9)
	assert.Equal(t, 0.0, got.At(2, 0))

	// df = |D| rows get an idf of (nearly) zero.
	assert.InDelta(t, 0.0, got.At(1, 0), 1e-9)
	assert.InDelta(t, 0.0, got.At(1, 1), 1e-9)
}

func TestTFIDFEpsilonFallback(t *testing.T) {
	td := mat.NewDense(1, 2, []float64{3, 0})

	withDefault := TFIDF(td, DefaultEpsilon)
	withZero := TFIDF(td, 0)

	assert.True(t, mat.Equal(withDefault, withZero))
}

func TestTFIDFDoesNotMutateInput(t *testing.T) {
	td := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	snapshot := mat.DenseCopyOf(td)

	_ = TFIDF(td, DefaultEpsilon)
	_ = PPMI(td)

	assert.True(t, mat.Equal(snapshot, td))
}
