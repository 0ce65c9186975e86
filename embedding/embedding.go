package embedding

import (
	"context"
	"fmt"
	"image"

	"github.com/viant/cbir/store"
)

// Dim is the embedding length produced by the reference service.
const Dim = 512

// EmbedFunc maps an image to its embedding vector.
//
// Implementations call whatever network serves the deployment (a local ONNX
// runtime, a remote endpoint); this package only depends on the resulting
// float32 vector. Preprocessing is the implementation's responsibility; see
// Preprocess for the reference recipe.
type EmbedFunc func(ctx context.Context, img image.Image) ([]float32, error)

// Table holds embeddings keyed by image identifier. All vectors in one table
// share a single dimensionality, fixed by the first insert.
type Table struct {
	vectors map[string][]float32
	dim     int
}

// NewTable returns an empty embedding table. Its dimensionality is fixed by
// the first insert.
func NewTable() *Table {
	return &Table{vectors: map[string][]float32{}}
}

// NewServiceTable returns an empty table pinned to Dim, rejecting vectors of
// any other length. Use it when the entries come from the reference service.
func NewServiceTable() *Table {
	return &Table{vectors: map[string][]float32{}, dim: Dim}
}

// TableFrom builds a table from persisted records, typically loaded via
// store.ReadCSV or Store.List.
func TableFrom(records []store.Record) (*Table, error) {
	t := NewTable()
	for _, r := range records {
		if err := t.Put(r.ID, r.Vector); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Put stores the embedding for id, enforcing the table's dimensionality.
func (t *Table) Put(id string, vec []float32) error {
	if id == "" {
		return fmt.Errorf("embedding: Put called with empty id")
	}
	if len(vec) == 0 {
		return fmt.Errorf("embedding: Put called with empty vector for %q", id)
	}
	if t.dim == 0 {
		t.dim = len(vec)
	} else if len(vec) != t.dim {
		return fmt.Errorf("embedding: vector for %q has dimension %d, table has %d", id, len(vec), t.dim)
	}
	t.vectors[id] = vec
	return nil
}

// Lookup returns the embedding stored for id.
func (t *Table) Lookup(id string) ([]float32, bool) {
	vec, ok := t.vectors[id]
	return vec, ok
}

// Embed returns the cached embedding for id, computing and caching it through
// fn on a miss.
func (t *Table) Embed(ctx context.Context, id string, img image.Image, fn EmbedFunc) ([]float32, error) {
	if vec, ok := t.vectors[id]; ok {
		return vec, nil
	}
	if fn == nil {
		return nil, fmt.Errorf("embedding: no cached vector for %q and no EmbedFunc", id)
	}
	vec, err := fn(ctx, img)
	if err != nil {
		return nil, err
	}
	if err := t.Put(id, vec); err != nil {
		return nil, err
	}
	return vec, nil
}

// Len returns the number of stored embeddings.
func (t *Table) Len() int { return len(t.vectors) }

// Dim returns the table's vector dimensionality, 0 while empty.
func (t *Table) Dim() int { return t.dim }
