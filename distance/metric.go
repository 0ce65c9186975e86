package distance

import (
	"fmt"

	"github.com/viant/cbir/feature"
)

// Metric enumerates the distance metrics. Like feature.Kind, the set is
// closed and dispatched exhaustively.
type Metric int

const (
	// MetricSSD pairs with center-patch vectors.
	MetricSSD Metric = iota
	// MetricHistogramIntersection pairs with chromaticity histograms.
	MetricHistogramIntersection
	// MetricMultiHistogram pairs with split-region histograms.
	MetricMultiHistogram
	// MetricColorTexture pairs with color+texture vectors.
	MetricColorTexture
	// MetricCosine pairs with DNN embeddings.
	MetricCosine
	// MetricBlueScene pairs with blue-scene composites plus embeddings.
	MetricBlueScene
)

// String returns the tag used for the metric in logs and tables.
func (m Metric) String() string {
	switch m {
	case MetricSSD:
		return "ssd"
	case MetricHistogramIntersection:
		return "histogram-intersection"
	case MetricMultiHistogram:
		return "multi-histogram"
	case MetricColorTexture:
		return "color-texture"
	case MetricCosine:
		return "cosine"
	case MetricBlueScene:
		return "blue-scene"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Params carries per-metric configuration. Zero values fall back to the
// defaults at the Compute boundary. The embedding fields apply only to
// MetricBlueScene, whose score blends a second vector pair.
type Params struct {
	// Segments and Weights configure MetricMultiHistogram.
	Segments int
	Weights  []float64

	// ColorSize/TextureSize give the explicit slice boundaries for
	// MetricColorTexture, with one weight each.
	ColorSize     int
	TextureSize   int
	ColorWeight   float64
	TextureWeight float64

	// QueryEmbedding and EntryEmbedding supply the DNN vector pair consumed by
	// MetricBlueScene alongside the composite features.
	QueryEmbedding []float32
	EntryEmbedding []float32

	// Warn receives non-fatal advisories. Nil suppresses them.
	Warn Warnf
}

// DefaultParams returns the reference metric configuration: two equally
// weighted segments for the split histogram and a 16x16-color/16-texture
// layout blended 0.5/0.5.
func DefaultParams() Params {
	return Params{
		Segments:      2,
		Weights:       []float64{0.5, 0.5},
		ColorSize:     256,
		TextureSize:   16,
		ColorWeight:   0.5,
		TextureWeight: 0.5,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Segments <= 0 {
		p.Segments = d.Segments
	}
	if len(p.Weights) == 0 {
		p.Weights = d.Weights
	}
	if p.ColorSize <= 0 {
		p.ColorSize = d.ColorSize
	}
	if p.TextureSize <= 0 {
		p.TextureSize = d.TextureSize
	}
	if p.ColorWeight == 0 && p.TextureWeight == 0 {
		p.ColorWeight = d.ColorWeight
		p.TextureWeight = d.TextureWeight
	}
	return p
}

// Compute evaluates the metric on the vector pair. Shape and configuration
// problems surface as errors for that single call; they never abort a batch.
func Compute(a, b feature.Vector, metric Metric, params Params) (float64, error) {
	params = params.withDefaults()
	switch metric {
	case MetricSSD:
		return SSD(a, b)
	case MetricHistogramIntersection:
		return HistogramIntersection(a, b)
	case MetricMultiHistogram:
		return MultiHistogram(a, b, params.Segments, params.Weights, params.Warn)
	case MetricColorTexture:
		return ColorTexture(a, b, params.ColorSize, params.TextureSize, params.ColorWeight, params.TextureWeight, params.Warn)
	case MetricCosine:
		return Cosine(a, b)
	case MetricBlueScene:
		return BlueScene(a, b, params.QueryEmbedding, params.EntryEmbedding, params.Warn)
	default:
		return 0, fmt.Errorf("distance: unknown metric %d", int(metric))
	}
}
