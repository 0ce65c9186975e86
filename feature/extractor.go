package feature

import "fmt"

// Kind enumerates the feature extractors. The set is closed: Extract
// dispatches over it exhaustively, so an unsupported variant is an explicit
// error rather than a silently unrecognized tag.
type Kind int

const (
	// KindCenterPatch is the center 7x7 pixel patch (147 values).
	KindCenterPatch Kind = iota
	// KindHistogram is the whole-image rg-chromaticity histogram.
	KindHistogram
	// KindSplitHistogram is the top/bottom pair of chromaticity histograms.
	KindSplitHistogram
	// KindColorTexture concatenates color and gradient-texture histograms.
	KindColorTexture
	// KindEmbedding is a learned embedding supplied by an external service.
	KindEmbedding
	// KindBlueScene is the hand-designed blue-scene composite (209 values).
	KindBlueScene
)

// String returns the tag used for the kind in persisted tables and logs.
func (k Kind) String() string {
	switch k {
	case KindCenterPatch:
		return "center-patch"
	case KindHistogram:
		return "histogram"
	case KindSplitHistogram:
		return "split-histogram"
	case KindColorTexture:
		return "color-texture"
	case KindEmbedding:
		return "embedding"
	case KindBlueScene:
		return "blue-scene"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Params carries the extractor bin counts. Zero values fall back to the
// defaults at the Extract boundary, so callers only set what they override.
type Params struct {
	// HistogramBins is the per-channel bin count for KindHistogram.
	HistogramBins int
	// SplitBins is the per-channel bin count for each half in KindSplitHistogram.
	SplitBins int
	// ColorBins and TextureBins size the two parts of KindColorTexture.
	ColorBins   int
	TextureBins int
}

// DefaultParams returns the reference bin counts.
func DefaultParams() Params {
	return Params{
		HistogramBins: 16,
		SplitBins:     8,
		ColorBins:     16,
		TextureBins:   16,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.HistogramBins <= 0 {
		p.HistogramBins = d.HistogramBins
	}
	if p.SplitBins <= 0 {
		p.SplitBins = d.SplitBins
	}
	if p.ColorBins <= 0 {
		p.ColorBins = d.ColorBins
	}
	if p.TextureBins <= 0 {
		p.TextureBins = d.TextureBins
	}
	return p
}

// Extract computes the feature vector of the given kind. A failed extraction
// means no feature is available for that image; callers exclude the image from
// the database rather than aborting the batch.
func Extract(img *Image, kind Kind, params Params) (Vector, error) {
	params = params.withDefaults()
	switch kind {
	case KindCenterPatch:
		return CenterPatch(img)
	case KindHistogram:
		return ChromaticityHistogram(img, params.HistogramBins)
	case KindSplitHistogram:
		return SplitHistogram(img, params.SplitBins)
	case KindColorTexture:
		return ColorTexture(img, params.ColorBins, params.TextureBins)
	case KindBlueScene:
		return BlueScene(img)
	case KindEmbedding:
		return nil, fmt.Errorf("feature: embedding vectors come from the external embedding service, not local extraction")
	default:
		return nil, fmt.Errorf("feature: unknown extractor kind %d", int(kind))
	}
}
