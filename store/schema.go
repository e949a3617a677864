package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

// DefaultTable is the table used when Options.Table is empty.
const DefaultTable = "docs"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EnsureSchema creates the documents table if it does not already exist.
// Embeddings are kept as canonical vector literals.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if !identifier.MatchString(table) {
		return fmt.Errorf("store: invalid table name %q", table)
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id TEXT PRIMARY KEY,
    content TEXT,
    meta TEXT,
    embedding TEXT NOT NULL
);`, table))
	return err
}
