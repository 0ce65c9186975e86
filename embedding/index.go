package embedding

import (
	"fmt"
	"sort"

	"github.com/viant/vec/search"
)

// zeroMagnitude is the sentinel cosine distance reported against a
// zero-magnitude vector, matching distance.Cosine.
const zeroMagnitude = 1.0

// Index is a brute-force cosine-distance index over embeddings with
// precomputed magnitudes. It serves pure-embedding queries, where scanning
// every entry is exact and cheap relative to the embedding call itself.
type Index struct {
	ids  []string
	vecs [][]float32
	mags []float32
	dim  int
}

// Build loads ids and vectors and precomputes magnitudes. It replaces any
// previous contents.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("embedding: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("embedding: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	mags := make([]float32, len(vectors))
	for j := range vectors {
		mags[j] = search.Float32s(vectors[j]).Magnitude()
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.mags = mags
	i.dim = dim
	return nil
}

// Query returns up to k entries ordered by ascending cosine distance to the
// query, as parallel id and distance slices. Ties keep insertion order.
// k <= 0 returns all entries.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("embedding: query dim %d != index dim %d", len(query), i.dim)
	}
	qv := search.Float32s(query)
	qm := qv.Magnitude()

	type scored struct {
		idx  int
		dist float64
	}
	scoreds := make([]scored, len(i.vecs))
	for j := range i.vecs {
		d := zeroMagnitude
		if qm > 0 && i.mags[j] > 0 {
			d = float64(qv.CosineDistanceWithMagnitude(i.vecs[j], qm, i.mags[j]))
		}
		scoreds[j] = scored{idx: j, dist: d}
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].dist < scoreds[b].dist })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	ids := make([]string, k)
	dists := make([]float64, k)
	for n := 0; n < k; n++ {
		ids[n] = i.ids[scoreds[n].idx]
		dists[n] = scoreds[n].dist
	}
	return ids, dists, nil
}

// Len returns the number of indexed entries.
func (i *Index) Len() int { return len(i.ids) }
