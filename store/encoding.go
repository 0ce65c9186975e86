package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/viant/cbir/feature"
)

// EncodeVector encodes a feature vector into a BLOB suitable for SQLite
// storage: a little-endian sequence of IEEE 754 float32 values without a
// length prefix; the length is derived from the BLOB size on decode.
func EncodeVector(vec feature.Vector) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeVector decodes a BLOB produced by EncodeVector back into a feature
// vector.
func DecodeVector(b []byte) (feature.Vector, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("store: invalid vector blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	vec := make(feature.Vector, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}
