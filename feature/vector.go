package feature

import (
	"errors"
	"fmt"
)

// Vector is a fixed-length feature encoding. The layout is extractor-specific
// and positional: vectors produced by different extractors are never
// comparable to each other.
type Vector []float32

var (
	// ErrEmptyImage indicates a nil image or one with no pixels.
	ErrEmptyImage = errors.New("empty image")

	// ErrImageTooSmall indicates an image below an extractor's minimum size.
	ErrImageTooSmall = errors.New("image too small")
)

// Blue-scene composite layout. Offsets are fixed by the feature contract:
// [0] blue dominance, [1..16] texture histogram, [17..208] three 8x8 spatial
// chromaticity histograms.
const (
	BlueSceneLen = 209

	blueSceneTextureLo = 1
	blueSceneSpatialLo = 17
	blueSceneSpatialN  = 3
)

// BlueSceneSlices decomposes a blue-scene composite vector into its blue
// dominance scalar, texture histogram slice, and concatenated spatial
// histogram slice. It is the single place the composite offsets are applied.
func BlueSceneSlices(v Vector) (blue float64, texture, spatial Vector, err error) {
	if len(v) != BlueSceneLen {
		return 0, nil, nil, fmt.Errorf("feature: blue-scene vector length %d, want %d", len(v), BlueSceneLen)
	}
	return float64(v[0]), v[blueSceneTextureLo:blueSceneSpatialLo], v[blueSceneSpatialLo:], nil
}

// BlueSceneSpatialSegments is the number of equal segments in the spatial
// slice of a blue-scene vector, one per horizontal image band.
const BlueSceneSpatialSegments = blueSceneSpatialN
