package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/viant/cbir/feature"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyVector indicates an empty operand.
	ErrEmptyVector = errors.New("empty vector")
)

// zeroNormEpsilon is the norm below which a vector is treated as zero for
// cosine distance.
const zeroNormEpsilon = 1e-10

func validatePair(a, b feature.Vector) error {
	if len(a) != len(b) {
		return fmt.Errorf("distance: %w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return fmt.Errorf("distance: %w", ErrEmptyVector)
	}
	return nil
}

// SSD returns the sum of squared differences between two vectors. Identical
// vectors score 0; there is no upper bound.
func SSD(a, b feature.Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum, nil
}

// HistogramIntersection returns 1 minus the sum of per-bin minimums. For two
// normalized histograms the result lies in [0,1], with 0 for identical
// distributions.
func HistogramIntersection(a, b feature.Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	var overlap float64
	for i := range a {
		if a[i] < b[i] {
			overlap += float64(a[i])
		} else {
			overlap += float64(b[i])
		}
	}
	return 1 - overlap, nil
}

// Cosine returns 1 minus the cosine similarity of the two vectors, with the
// similarity clamped to [-1,1] before subtraction. When either operand's norm
// is below 1e-10 the result short-circuits to the maximum useful distance 1.0
// instead of dividing by zero.
func Cosine(a, b feature.Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	na := math.Sqrt(na2)
	nb := math.Sqrt(nb2)
	if na < zeroNormEpsilon || nb < zeroNormEpsilon {
		return 1.0, nil
	}
	sim := dot / (na * nb)
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}
	return 1 - sim, nil
}
