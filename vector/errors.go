package vector

import (
	"errors"
	"fmt"
)

// ErrZeroMagnitude is returned by CosineDistance when either operand has
// zero magnitude and the angle between the vectors is undefined.
var ErrZeroMagnitude = errors.New("vector: cosine distance with zero-magnitude vector")

// ParseError reports a malformed vector literal.
//
// The underlying JSON or number error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Input  string
	Reason string
	cause  error
}

const maxQuotedInput = 64

func (e *ParseError) Error() string {
	msg := "vector: invalid literal"
	if e.Input != "" {
		in := e.Input
		if len(in) > maxQuotedInput {
			in = in[:maxQuotedInput] + "..."
		}
		msg += fmt.Sprintf(" %q", in)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.cause }

// ModifierArityError reports a type modifier list that does not hold exactly one token.
type ModifierArityError struct {
	Count int
}

func (e *ModifierArityError) Error() string {
	return fmt.Sprintf("vector: expected 1 type modifier, got %d", e.Count)
}

// ModifierRangeError reports a type modifier that is not an integer in [1, MaxDimension].
type ModifierRangeError struct {
	Token string
}

func (e *ModifierRangeError) Error() string {
	return fmt.Sprintf("vector: invalid dimension %q, expected an integer in [1, %d]", e.Token, MaxDimension)
}

// DimensionTooLargeError reports a literal with more than MaxDimension elements.
type DimensionTooLargeError struct {
	Dimension int
}

func (e *DimensionTooLargeError) Error() string {
	return fmt.Sprintf("vector: too many dimensions, found %d, expected at most %d", e.Dimension, MaxDimension)
}

// DimensionMismatchError reports a vector whose length differs from the
// declared dimension or from the other distance operand.
type DimensionMismatchError struct {
	Expected int
	Found    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: mismatched dimension, expected %d, found %d", e.Expected, e.Found)
}
