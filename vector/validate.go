package vector

// Validate checks that v has exactly the dimension declared by typmod. The
// modifier must be a concrete dimension; use Input for the sentinel-aware form.
func Validate(v Vector, typmod int32) (Vector, error) {
	expected, err := checkModifier(typmod)
	if err != nil {
		return Vector{}, err
	}
	if found := len(v.values); found != expected {
		return Vector{}, &DimensionMismatchError{Expected: expected, Found: found}
	}
	return v, nil
}

// Input parses a literal for a value slot declared with typmod. When the
// declared dimension is unknown (Unconstrained) the vector is accepted with
// whatever dimension it parsed to and is checked later by Cast.
func Input(text string, typmod int32) (Vector, error) {
	v, err := Parse(text)
	if err != nil {
		return Vector{}, err
	}
	if typmod == Unconstrained {
		return v, nil
	}
	return Validate(v, typmod)
}

// Cast coerces v to the dimension declared by typmod. A cast always carries a
// concrete dimension, so the check is unconditional. The third argument tells
// an explicit cast from an implicit one; both check the same way, so it is
// ignored. Casting to the vector's own dimension returns v unchanged.
func Cast(v Vector, typmod int32, _ bool) (Vector, error) {
	return Validate(v, typmod)
}
