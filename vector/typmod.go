package vector

import (
	"strconv"
)

// DecodeModifier converts the parameter list of a `vector(N)` declaration
// into the encoded type modifier. Exactly one unsigned decimal token in
// [1, MaxDimension] is accepted.
func DecodeModifier(tokens []string) (int32, error) {
	if len(tokens) != 1 {
		return 0, &ModifierArityError{Count: len(tokens)}
	}
	n, err := strconv.ParseUint(tokens[0], 10, 16)
	if err != nil || n == 0 {
		return 0, &ModifierRangeError{Token: tokens[0]}
	}
	return int32(n), nil
}

// EncodeModifier renders a type modifier the way it is displayed in type
// descriptions, e.g. "(3)".
func EncodeModifier(typmod int32) string {
	return "(" + strconv.FormatInt(int64(typmod), 10) + ")"
}

// checkModifier validates a known (non-sentinel) type modifier and returns it
// as a dimension.
func checkModifier(typmod int32) (int, error) {
	if typmod < 1 || typmod > MaxDimension {
		return 0, &ModifierRangeError{Token: strconv.FormatInt(int64(typmod), 10)}
	}
	return int(typmod), nil
}
