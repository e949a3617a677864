// vecsql is a CLI for the vector type of the embedded SQLite engine.
//
// Usage:
//
//	vecsql parse '[1, 2, 3]' --dim 3          # validate and print a literal
//	vecsql typmod 1536                         # decode a type modifier
//	vecsql distance '[1, 2]' '[2, 1]'          # cosine distance
//	vecsql functions                           # list the SQL functions
//	vecsql exec "SELECT vector_dims('[1, 2]')" # run SQL with the functions registered
//	vecsql store add|search|remove             # document store operations
//
// Settings are read from the YAML file given with --config.
package main

import (
	"fmt"
	"os"

	"github.com/viant/sqlite-vector/cmd/vecsql/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
