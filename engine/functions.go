package engine

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/sqlite-vector/vector"
	"github.com/viant/vec/search"
)

func vectorInput(args []driver.Value) (driver.Value, error) {
	text, err := asText(args[0])
	if err != nil {
		return nil, err
	}
	typmod, err := asTypmod(args[1])
	if err != nil {
		return nil, err
	}
	v, err := vector.Input(text, typmod)
	if err != nil {
		return nil, err
	}
	return vector.Format(v), nil
}

func vectorOutput(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	return vector.Format(v), nil
}

func vectorModifierInput(args []driver.Value) (driver.Value, error) {
	text, err := asText(args[0])
	if err != nil {
		return nil, err
	}
	typmod, err := vector.DecodeModifier(modifierTokens(text))
	if err != nil {
		return nil, err
	}
	return int64(typmod), nil
}

func vectorModifierOutput(args []driver.Value) (driver.Value, error) {
	typmod, err := asTypmod(args[0])
	if err != nil {
		return nil, err
	}
	return vector.EncodeModifier(typmod), nil
}

func castVectorToVector(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	typmod, err := asTypmod(args[1])
	if err != nil {
		return nil, err
	}
	explicit, err := asBool(args[2])
	if err != nil {
		return nil, err
	}
	out, err := vector.Cast(v, typmod, explicit)
	if err != nil {
		return nil, err
	}
	return vector.Format(out), nil
}

func vectorCosineDistance(args []driver.Value) (driver.Value, error) {
	a, b, err := vectorPair(args)
	if err != nil {
		return nil, err
	}
	return vector.CosineDistance(a, b)
}

func vectorL2Distance(args []driver.Value) (driver.Value, error) {
	a, b, err := vectorPair(args)
	if err != nil {
		return nil, err
	}
	return vector.L2Distance(a, b)
}

func vectorDims(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	return int64(v.Dimension()), nil
}

func vectorToBlob(args []driver.Value) (driver.Value, error) {
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	return vector.EncodeEmbedding(v)
}

func vectorFromBlob(args []driver.Value) (driver.Value, error) {
	b, ok := args[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("unsupported argument type %T for embedding; want BLOB", args[0])
	}
	v, err := vector.DecodeEmbedding(b)
	if err != nil {
		return nil, err
	}
	return vector.Format(v), nil
}

// vecCosine returns the cosine similarity of two float32 embedding BLOBs.
func vecCosine(args []driver.Value) (driver.Value, error) {
	a, b, err := embeddingPair(args)
	if err != nil {
		return nil, err
	}
	if search.Float32s(a).Magnitude() == 0 || search.Float32s(b).Magnitude() == 0 {
		return nil, vector.ErrZeroMagnitude
	}
	return 1 - float64(search.Float32s(a).CosineDistance(b)), nil
}

// vecL2 returns the Euclidean distance of two float32 embedding BLOBs.
func vecL2(args []driver.Value) (driver.Value, error) {
	a, b, err := embeddingPair(args)
	if err != nil {
		return nil, err
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

func vectorPair(args []driver.Value) (vector.Vector, vector.Vector, error) {
	a, err := asVector(args[0])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	return a, b, nil
}

func embeddingPair(args []driver.Value) ([]float32, []float32, error) {
	var out [2][]float32
	for i, arg := range args[:2] {
		blob, ok := arg.([]byte)
		if !ok {
			return nil, nil, fmt.Errorf("unsupported argument type %T for embedding; want BLOB", arg)
		}
		v, err := vector.DecodeEmbedding(blob)
		if err != nil {
			return nil, nil, err
		}
		out[i] = v.Float32s()
	}
	if len(out[0]) != len(out[1]) {
		return nil, nil, &vector.DimensionMismatchError{Expected: len(out[0]), Found: len(out[1])}
	}
	return out[0], out[1], nil
}

// modifierTokens splits a type modifier list such as "3" or "(3)" into tokens.
func modifierTokens(text string) []string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func asText(arg driver.Value) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported argument type %T; want TEXT", arg)
	}
}

func asVector(arg driver.Value) (vector.Vector, error) {
	text, err := asText(arg)
	if err != nil {
		return vector.Vector{}, err
	}
	return vector.Parse(text)
}

func asTypmod(arg driver.Value) (int32, error) {
	var n int64
	switch v := arg.(type) {
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) {
			return 0, &vector.ModifierRangeError{Token: strconv.FormatFloat(v, 'g', -1, 64)}
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("unsupported type modifier type %T; want INTEGER", arg)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &vector.ModifierRangeError{Token: strconv.FormatInt(n, 10)}
	}
	return int32(n), nil
}

func asBool(arg driver.Value) (bool, error) {
	switch v := arg.(type) {
	case int64:
		return v != 0, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q", v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("unsupported boolean type %T", arg)
	}
}
