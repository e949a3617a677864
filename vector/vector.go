package vector

import (
	"fmt"
	"math"
	"slices"
)

// MaxDimension is the largest dimension a vector or a type modifier may declare.
const MaxDimension = 65535

// Unconstrained is the type modifier for a column or cast without a declared dimension.
const Unconstrained int32 = -1

// Vector is an immutable sequence of float64 values. The zero value is not a
// valid vector; construct one with New or Parse.
type Vector struct {
	values []float64
}

// New returns a vector holding a copy of values. It fails if the dimension is
// outside [1, MaxDimension] or any element is NaN or infinite.
func New(values []float64) (Vector, error) {
	if len(values) > MaxDimension {
		return Vector{}, &DimensionTooLargeError{Dimension: len(values)}
	}
	if len(values) == 0 {
		return Vector{}, &ParseError{Reason: "vector must have at least 1 dimension"}
	}
	for i, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Vector{}, &ParseError{Reason: fmt.Sprintf("element %d is not finite: %v", i, f)}
		}
	}
	return Vector{values: slices.Clone(values)}, nil
}

// Dimension returns the number of elements.
func (v Vector) Dimension() int { return len(v.values) }

// At returns the i-th element.
func (v Vector) At(i int) float64 { return v.values[i] }

// Values returns a copy of the elements.
func (v Vector) Values() []float64 { return slices.Clone(v.values) }

// Equal reports whether both vectors hold the same elements bit-for-bit.
func (v Vector) Equal(o Vector) bool {
	if len(v.values) != len(o.values) {
		return false
	}
	for i := range v.values {
		if math.Float64bits(v.values[i]) != math.Float64bits(o.values[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether v has at least one element and every element is
// zero. Such a vector has no direction, so CosineDistance rejects it.
func (v Vector) IsZero() bool {
	if len(v.values) == 0 {
		return false
	}
	for _, f := range v.values {
		if f != 0 {
			return false
		}
	}
	return true
}
