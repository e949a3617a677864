package vector

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Parse parses a JSON numeric array literal such as "[1, 2, 3]". The literal
// must hold between 1 and MaxDimension finite numbers and nothing else.
// Literals with more elements fail with a DimensionTooLargeError as soon as
// the limit is passed, so its Dimension is MaxDimension+1.
func Parse(text string) (Vector, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return Vector{}, &ParseError{Input: text, cause: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return Vector{}, &ParseError{Input: text, Reason: "expected a JSON array"}
	}
	var values []float64
	for dec.More() {
		if len(values) == MaxDimension {
			// stop at the first element past the limit
			return Vector{}, &DimensionTooLargeError{Dimension: MaxDimension + 1}
		}
		tok, err := dec.Token()
		if err != nil {
			return Vector{}, &ParseError{Input: text, cause: err}
		}
		num, ok := tok.(json.Number)
		if !ok {
			return Vector{}, &ParseError{Input: text, Reason: fmt.Sprintf("element %d is not a number", len(values))}
		}
		f, err := strconv.ParseFloat(string(num), 64)
		if err != nil {
			return Vector{}, &ParseError{Input: text, Reason: fmt.Sprintf("element %d is out of range", len(values)), cause: err}
		}
		values = append(values, f)
	}
	if _, err := dec.Token(); err != nil {
		return Vector{}, &ParseError{Input: text, cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Vector{}, &ParseError{Input: text, Reason: "unexpected data after array"}
	}
	if len(values) == 0 {
		return Vector{}, &ParseError{Input: text, Reason: "vector must have at least 1 dimension"}
	}
	return Vector{values: values}, nil
}

// Format renders v in its canonical literal form, e.g. "[1.0,2.5,-3e-7]".
func Format(v Vector) string {
	buf := make([]byte, 0, 2+len(v.values)*8)
	buf = append(buf, '[')
	for i, f := range v.values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendElement(buf, f)
	}
	buf = append(buf, ']')
	return string(buf)
}

// String returns the canonical literal.
func (v Vector) String() string { return Format(v) }

// appendElement writes the shortest decimal that round-trips to f. Values
// below 10^16 and not smaller than 10^-5 are written in plain notation, with
// a ".0" suffix when integral; everything else uses "d.ddde<exp>".
func appendElement(dst []byte, f float64) []byte {
	if f == 0 {
		if math.Signbit(f) {
			return append(dst, "-0.0"...)
		}
		return append(dst, "0.0"...)
	}
	var scratch [32]byte
	b := strconv.AppendFloat(scratch[:0], f, 'e', -1, 64)
	if b[0] == '-' {
		dst = append(dst, '-')
		b = b[1:]
	}
	e := bytes.IndexByte(b, 'e')
	exp, _ := strconv.Atoi(string(b[e+1:]))
	var digits [24]byte
	n := 0
	for _, c := range b[:e] {
		if c != '.' {
			digits[n] = c
			n++
		}
	}
	d := digits[:n]
	// the decimal point sits kk digits after the first significant digit
	kk := exp + 1
	switch {
	case n <= kk && kk <= 16:
		dst = append(dst, d...)
		for i := n; i < kk; i++ {
			dst = append(dst, '0')
		}
		return append(dst, ".0"...)
	case 0 < kk && kk <= 16:
		dst = append(dst, d[:kk]...)
		dst = append(dst, '.')
		return append(dst, d[kk:]...)
	case -5 < kk && kk <= 0:
		dst = append(dst, "0."...)
		for i := kk; i < 0; i++ {
			dst = append(dst, '0')
		}
		return append(dst, d...)
	case n == 1:
		dst = append(dst, d[0], 'e')
		return strconv.AppendInt(dst, int64(kk-1), 10)
	default:
		dst = append(dst, d[0], '.')
		dst = append(dst, d[1:]...)
		dst = append(dst, 'e')
		return strconv.AppendInt(dst, int64(kk-1), 10)
	}
}

// MarshalJSON encodes v as a JSON array.
func (v Vector) MarshalJSON() ([]byte, error) {
	if len(v.values) == 0 {
		return nil, &ParseError{Reason: "vector must have at least 1 dimension"}
	}
	return []byte(Format(v)), nil
}

// UnmarshalJSON decodes a JSON array into v.
func (v *Vector) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Value implements driver.Valuer; vectors are stored as their canonical literal.
func (v Vector) Value() (driver.Value, error) {
	if len(v.values) == 0 {
		return nil, nil
	}
	return Format(v), nil
}

// Scan implements sql.Scanner for TEXT or BLOB columns holding a literal.
func (v *Vector) Scan(src any) error {
	var text string
	switch val := src.(type) {
	case string:
		text = val
	case []byte:
		text = string(val)
	case nil:
		*v = Vector{}
		return nil
	default:
		return fmt.Errorf("vector: cannot scan %T into Vector", src)
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
