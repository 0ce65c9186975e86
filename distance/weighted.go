package distance

import (
	"fmt"
	"math"

	"github.com/viant/cbir/feature"
)

// Warnf receives non-fatal advisory diagnostics, such as segment weights that
// do not sum to 1. A nil Warnf suppresses them.
type Warnf func(format string, args ...any)

// weightSumTolerance bounds how far a weight sum may drift from 1 before the
// advisory fires. Drifting weights are still applied as given.
const weightSumTolerance = 0.01

func checkWeightSum(warn Warnf, weights ...float64) {
	if warn == nil {
		return
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		warn("distance: weights sum to %.4f, expected ~1; proceeding with supplied weights", sum)
	}
}

// MultiHistogram splits both vectors into segments equal contiguous slices,
// computes histogram intersection per segment, and returns the weighted sum.
// The vector length must divide evenly by segments and one weight is required
// per segment; weights that do not sum to ~1 only trigger the advisory hook.
func MultiHistogram(a, b feature.Vector, segments int, weights []float64, warn Warnf) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	if segments < 1 {
		return 0, fmt.Errorf("distance: segment count must be positive, got %d", segments)
	}
	if len(a)%segments != 0 {
		return 0, fmt.Errorf("distance: vector length %d not divisible by %d segments", len(a), segments)
	}
	if len(weights) != segments {
		return 0, fmt.Errorf("distance: %d weights for %d segments", len(weights), segments)
	}
	checkWeightSum(warn, weights...)

	size := len(a) / segments
	var total float64
	for k := 0; k < segments; k++ {
		lo, hi := k*size, (k+1)*size
		d, err := HistogramIntersection(a[lo:hi], b[lo:hi])
		if err != nil {
			return 0, err
		}
		total += weights[k] * d
	}
	return total, nil
}

// ColorTexture blends the histogram intersections of the leading colorSize
// values and the trailing textureSize values. The slice boundaries are
// explicit parameters and must exactly cover the vector.
func ColorTexture(a, b feature.Vector, colorSize, textureSize int, colorWeight, textureWeight float64, warn Warnf) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	if colorSize < 1 || textureSize < 1 {
		return 0, fmt.Errorf("distance: slice sizes must be positive, got color %d texture %d", colorSize, textureSize)
	}
	if colorSize+textureSize != len(a) {
		return 0, fmt.Errorf("distance: slice sizes %d+%d do not cover vector length %d", colorSize, textureSize, len(a))
	}
	checkWeightSum(warn, colorWeight, textureWeight)

	color, err := HistogramIntersection(a[:colorSize], b[:colorSize])
	if err != nil {
		return 0, err
	}
	texture, err := HistogramIntersection(a[colorSize:], b[colorSize:])
	if err != nil {
		return 0, err
	}
	return colorWeight*color + textureWeight*texture, nil
}

// Blue-scene blend weights.
const (
	weightBlue      = 0.4
	weightTexture   = 0.2
	weightSpatial   = 0.2
	weightEmbedding = 0.2
)

// spatialWeights weight the three horizontal-band histograms of the blue-scene
// spatial slice.
var spatialWeights = []float64{0.33, 0.34, 0.33}

// BlueScene compares two blue-scene composite vectors together with their DNN
// embeddings:
//
//	0.4*|blue dominance difference|
//	+ 0.2*histogram intersection of the texture slices
//	+ 0.2*weighted multi-histogram over the three spatial bands
//	+ 0.2*cosine distance of the embeddings
//
// Both feature vectors must be exactly 209 long; the embeddings must be a
// matching non-empty pair.
func BlueScene(fa, fb feature.Vector, ea, eb []float32, warn Warnf) (float64, error) {
	blueA, textureA, spatialA, err := feature.BlueSceneSlices(fa)
	if err != nil {
		return 0, err
	}
	blueB, textureB, spatialB, err := feature.BlueSceneSlices(fb)
	if err != nil {
		return 0, err
	}

	texture, err := HistogramIntersection(textureA, textureB)
	if err != nil {
		return 0, err
	}
	spatial, err := MultiHistogram(spatialA, spatialB, feature.BlueSceneSpatialSegments, spatialWeights, warn)
	if err != nil {
		return 0, err
	}
	semantic, err := Cosine(ea, eb)
	if err != nil {
		return 0, err
	}

	return weightBlue*math.Abs(blueA-blueB) +
		weightTexture*texture +
		weightSpatial*spatial +
		weightEmbedding*semantic, nil
}
