// Package similarity implements the pluggable vector similarity metrics
// used by the ranker. All metrics accept equal-length vectors and score
// degenerate inputs (zero vectors, empty unions) as 0.
package similarity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"lexsim/internal/domain"
)

// Cosine scores by the angle between the vectors: dot(u,v) / (|u||v|).
type Cosine struct{}

// Name returns "cosine".
func (Cosine) Name() string { return "cosine" }

// Score returns the cosine similarity, or 0 if either norm is zero.
func (Cosine) Score(u, v []float64) float64 {
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		return 0
	}
	return floats.Dot(u, v) / (nu * nv)
}

// Jaccard scores binarized vectors by |intersection| / |union|. A
// dimension is present iff its value is > 0.
type Jaccard struct{}

// Name returns "jaccard".
func (Jaccard) Name() string { return "jaccard" }

// Score returns the Jaccard coefficient, or 0 if the union is empty.
func (Jaccard) Score(u, v []float64) float64 {
	var inter, union int
	for i := range u {
		a, b := u[i] > 0, v[i] > 0
		if a && b {
			inter++
		}
		if a || b {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Dice scores binarized vectors by 2|intersection| / (|u| + |v|), with the
// same presence test as Jaccard.
type Dice struct{}

// Name returns "dice".
func (Dice) Name() string { return "dice" }

// Score returns the Dice coefficient, or 0 if neither vector has a
// present dimension.
func (Dice) Score(u, v []float64) float64 {
	var inter, present int
	for i := range u {
		a, b := u[i] > 0, v[i] > 0
		if a && b {
			inter++
		}
		if a {
			present++
		}
		if b {
			present++
		}
	}
	if present == 0 {
		return 0
	}
	return 2 * float64(inter) / float64(present)
}

// All returns the available metrics in presentation order.
func All() []domain.Metric {
	return []domain.Metric{Cosine{}, Jaccard{}, Dice{}}
}

// Parse resolves a metric by its configured name.
func Parse(name string) (domain.Metric, error) {
	for _, m := range All() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown metric %q", name)
}
