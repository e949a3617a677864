package engine

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	sqlite "modernc.org/sqlite"
)

// SQLType names an argument or result type in a function signature.
type SQLType string

const (
	TypeVector  SQLType = "vector"
	TypeText    SQLType = "text"
	TypeInteger SQLType = "integer"
	TypeBoolean SQLType = "boolean"
	TypeReal    SQLType = "real"
	TypeBlob    SQLType = "blob"
)

// Function binds a SQL-visible name and signature to its implementation.
// Impl receives exactly len(Args) non-NULL arguments.
type Function struct {
	Name    string
	Args    []SQLType
	Returns SQLType
	Doc     string
	Impl    func(args []driver.Value) (driver.Value, error)
}

// Signature renders the function the way it is declared, e.g.
// "vector_input(text, integer) -> vector".
func (f Function) Signature() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = string(a)
	}
	return fmt.Sprintf("%s(%s) -> %s", f.Name, strings.Join(args, ", "), f.Returns)
}

// scalar adapts Impl to the driver callback: NULL in, NULL out, and errors
// carry the function name.
func (f Function) scalar() func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != len(f.Args) {
			return nil, fmt.Errorf("%s: expected %d arguments, got %d", f.Name, len(f.Args), len(args))
		}
		for _, a := range args {
			if a == nil {
				return nil, nil
			}
		}
		out, err := f.Impl(args)
		if err != nil {
			logger().Debug("vector function failed", "function", f.Name, "error", err)
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		return out, nil
	}
}

var functions = []Function{
	{Name: "vector_input", Args: []SQLType{TypeText, TypeInteger}, Returns: TypeVector, Impl: vectorInput,
		Doc: "parse a literal; check its dimension unless the modifier is -1"},
	{Name: "vector_output", Args: []SQLType{TypeVector}, Returns: TypeText, Impl: vectorOutput,
		Doc: "render the canonical literal"},
	{Name: "vector_modifier_input", Args: []SQLType{TypeText}, Returns: TypeInteger, Impl: vectorModifierInput,
		Doc: "decode a comma-separated modifier list into a dimension"},
	{Name: "vector_modifier_output", Args: []SQLType{TypeInteger}, Returns: TypeText, Impl: vectorModifierOutput,
		Doc: "render a modifier as (N)"},
	{Name: "cast_vector_to_vector", Args: []SQLType{TypeVector, TypeInteger, TypeBoolean}, Returns: TypeVector, Impl: castVectorToVector,
		Doc: "coerce to a declared dimension"},
	{Name: "vector_cosine_distance", Args: []SQLType{TypeVector, TypeVector}, Returns: TypeReal, Impl: vectorCosineDistance,
		Doc: "cosine distance, the <=> ordering operator"},
	{Name: "vector_l2_distance", Args: []SQLType{TypeVector, TypeVector}, Returns: TypeReal, Impl: vectorL2Distance,
		Doc: "Euclidean distance"},
	{Name: "vector_dims", Args: []SQLType{TypeVector}, Returns: TypeInteger, Impl: vectorDims,
		Doc: "number of dimensions"},
	{Name: "vector_to_blob", Args: []SQLType{TypeVector}, Returns: TypeBlob, Impl: vectorToBlob,
		Doc: "encode as a little-endian float32 embedding"},
	{Name: "vector_from_blob", Args: []SQLType{TypeBlob}, Returns: TypeVector, Impl: vectorFromBlob,
		Doc: "decode a little-endian float32 embedding"},
	{Name: "vec_cosine", Args: []SQLType{TypeBlob, TypeBlob}, Returns: TypeReal, Impl: vecCosine,
		Doc: "cosine similarity of two embedding BLOBs"},
	{Name: "vec_l2", Args: []SQLType{TypeBlob, TypeBlob}, Returns: TypeReal, Impl: vecL2,
		Doc: "Euclidean distance of two embedding BLOBs"},
}

// Functions returns a copy of the registration table.
func Functions() []Function {
	out := make([]Function, len(functions))
	copy(out, functions)
	return out
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, bool) {
	for _, f := range functions {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers every function of the table with the
// driver so they are available on connections opened after this call.
// Registration happens once per process; later calls return the first result.
// Existing open connections will not see the functions.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() {
		for _, f := range functions {
			if err := sqlite.RegisterDeterministicScalarFunction(f.Name, int32(len(f.Args)), f.scalar()); err != nil {
				registerErr = fmt.Errorf("engine: register %s: %w", f.Name, err)
				return
			}
		}
		logger().Info("registered vector functions", "count", len(functions))
	})
	return registerErr
}
