package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeEmbedding encodes v as a float32 embedding BLOB: a little-endian
// sequence of IEEE 754 float32 values without a length prefix. Elements
// outside the float32 range fail rather than saturate to infinity.
func EncodeEmbedding(v Vector) ([]byte, error) {
	b := make([]byte, len(v.values)*4)
	for i, f := range v.values {
		f32 := float32(f)
		if math.IsInf(float64(f32), 0) {
			return nil, fmt.Errorf("vector: element %d (%v) overflows float32", i, f)
		}
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f32))
	}
	return b, nil
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding (or any other
// little-endian float32 embedding) into a vector.
func DecodeEmbedding(b []byte) (Vector, error) {
	if len(b)%4 != 0 {
		return Vector{}, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	values := make([]float64, len(b)/4)
	for i := range values {
		values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return New(values)
}

// Float32s returns the elements narrowed to float32.
func (v Vector) Float32s() []float32 {
	out := make([]float32, len(v.values))
	for i, f := range v.values {
		out[i] = float32(f)
	}
	return out
}
