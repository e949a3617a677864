package vector

import (
	"math"
)

const minNormal = 0x1p-1022

// CosineDistance returns 1 - cos(a, b), in [0, 2]. It fails with a
// DimensionMismatchError when the lengths differ and with ErrZeroMagnitude
// when either operand is all zeros.
//
// The result depends only on the input bits: it is symmetric, exactly 0 for
// CosineDistance(v, v), and never NaN or infinite. It does not allocate.
func CosineDistance(a, b Vector) (float64, error) {
	x, y := a.values, b.values
	if len(x) != len(y) {
		return 0, &DimensionMismatchError{Expected: len(x), Found: len(y)}
	}
	var dot, nx2, ny2, mx, my float64
	for i := range x {
		dot += x[i] * y[i]
		nx2 += x[i] * x[i]
		ny2 += y[i] * y[i]
		mx = math.Max(mx, math.Abs(x[i]))
		my = math.Max(my, math.Abs(y[i]))
	}
	if mx == 0 || my == 0 {
		return 0, ErrZeroMagnitude
	}
	den := nx2 * ny2
	if !(den >= minNormal && den <= math.MaxFloat64) || nx2 < minNormal || ny2 < minNormal ||
		math.IsInf(dot, 0) || math.IsNaN(dot) {
		// magnitudes over- or underflowed; redo the sums on operands scaled to [-1, 1]
		dot, nx2, ny2 = 0, 0, 0
		for i := range x {
			sx, sy := x[i]/mx, y[i]/my
			dot += sx * sy
			nx2 += sx * sx
			ny2 += sy * sy
		}
		den = nx2 * ny2
	}
	sim := dot / math.Sqrt(den)
	switch {
	case math.IsNaN(sim), sim > 1:
		sim = 1
	case sim < -1:
		sim = -1
	}
	return 1 - sim, nil
}

// L2Distance returns the Euclidean distance between a and b. It fails with a
// DimensionMismatchError when the lengths differ.
func L2Distance(a, b Vector) (float64, error) {
	x, y := a.values, b.values
	if len(x) != len(y) {
		return 0, &DimensionMismatchError{Expected: len(x), Found: len(y)}
	}
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
