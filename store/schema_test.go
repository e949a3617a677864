package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viant/sqlite-vector/engine"
)

func TestEnsureSchema(t *testing.T) {
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, EnsureSchema(context.Background(), db, "items"))
	require.NoError(t, EnsureSchema(context.Background(), db, "items"))

	_, err = db.Exec(`INSERT INTO items(id, content, meta, embedding) VALUES('1', 'hello', '{}', vector_input('[1, 2]', 2))`)
	require.NoError(t, err)
}
