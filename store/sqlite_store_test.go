package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/sqlite-vector/engine"
	"github.com/viant/sqlite-vector/vector"
)

func newTestStore(t *testing.T, dim int32) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	// a single connection keeps the in-memory database shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	s, err := New(context.Background(), db, Options{Dimension: dim})
	require.NoError(t, err)
	return s, db
}

func vec(t *testing.T, literal string) vector.Vector {
	t.Helper()
	v, err := vector.Parse(literal)
	require.NoError(t, err)
	return v
}

func TestSQLiteStore_AddSearchRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, 3)

	docs := []Document{
		{ID: "d1", Content: "first", Metadata: "{}", Embedding: vec(t, "[1, 2, 3]")},
		{ID: "d2", Content: "second", Metadata: "{}", Embedding: vec(t, "[4, 5, 6]")},
		{ID: "d3", Content: "third", Metadata: "{}", Embedding: vec(t, "[-1, -2, -3]")},
	}
	ids, err := s.AddDocuments(ctx, docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2", "d3"}, ids)

	out, err := s.SimilaritySearch(ctx, vec(t, "[3, 1, 2]"), 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "d2", out[0].ID)
	assert.Equal(t, "d1", out[1].ID)
	assert.LessOrEqual(t, out[0].Distance, out[1].Distance)
	assert.True(t, out[0].Embedding.Equal(docs[1].Embedding))
	assert.Equal(t, "second", out[0].Content)

	exact, err := s.SimilaritySearch(ctx, vec(t, "[1, 2, 3]"), 1)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "d1", exact[0].ID)
	assert.Equal(t, 0.0, exact[0].Distance)

	require.NoError(t, s.Remove(ctx, "d2"))
	out, err = s.SimilaritySearch(ctx, vec(t, "[3, 1, 2]"), 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, d := range out {
		assert.NotEqual(t, "d2", d.ID)
	}
	assert.Equal(t, "d3", out[1].ID)
	assert.InDelta(t, 2-out[0].Distance, out[1].Distance, 1e-12)
}

func TestSQLiteStore_GeneratesIDs(t *testing.T) {
	s, db := newTestStore(t, 2)

	ids, err := s.AddDocuments(context.Background(), []Document{
		{Content: "a", Embedding: vec(t, "[1, 0]")},
		{Content: "b", Embedding: vec(t, "[0, 1]")},
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM docs`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSQLiteStore_DimensionChecks(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t, 2)

	_, err := s.AddDocuments(ctx, []Document{
		{ID: "ok", Embedding: vec(t, "[1, 2]")},
		{ID: "bad", Embedding: vec(t, "[1, 2, 3]")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched dimension, expected 2, found 3")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM docs`).Scan(&count))
	assert.Equal(t, 0, count, "failed batch must roll back")

	_, err = s.AddDocuments(ctx, []Document{{ID: "empty"}})
	assert.ErrorContains(t, err, "vector: invalid literal")

	_, err = s.AddDocuments(ctx, []Document{{ID: "ok", Embedding: vec(t, "[1, 2]")}})
	require.NoError(t, err)
	_, err = s.SimilaritySearch(ctx, vec(t, "[1, 2, 3]"), 1)
	assert.ErrorContains(t, err, "mismatched dimension, expected 2, found 3")
}

func TestSQLiteStore_RejectsZeroEmbedding(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t, 2)

	_, err := s.AddDocuments(ctx, []Document{
		{ID: "a", Embedding: vec(t, "[1, 0]")},
		{ID: "z", Embedding: vec(t, "[0, -0]")},
	})
	var zeroErr *ZeroEmbeddingError
	require.ErrorAs(t, err, &zeroErr)
	assert.Equal(t, "z", zeroErr.ID)
	assert.ErrorIs(t, err, vector.ErrZeroMagnitude)

	err = s.Upsert(ctx, Document{ID: "z", Embedding: vec(t, "[0, 0]")})
	require.ErrorAs(t, err, &zeroErr)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM docs`).Scan(&count))
	assert.Equal(t, 0, count)

	_, err = s.AddDocuments(ctx, []Document{{ID: "a", Embedding: vec(t, "[1, 0]")}})
	require.NoError(t, err)
	out, err := s.SimilaritySearch(ctx, vec(t, "[1, 0]"), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestNew_Errors(t *testing.T) {
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	_, err = New(ctx, nil, Options{Dimension: 3})
	assert.EqualError(t, err, "store: db is nil")

	for _, dim := range []int32{0, -1, 65536} {
		_, err = New(ctx, db, Options{Dimension: dim})
		assert.ErrorContains(t, err, "invalid dimension")
	}

	_, err = New(ctx, db, Options{Table: "docs; DROP TABLE x", Dimension: 3})
	assert.ErrorContains(t, err, "invalid table name")

	s, err := New(ctx, db, Options{Dimension: 3})
	require.NoError(t, err)
	assert.EqualError(t, s.Remove(ctx, ""), "store: Remove called with empty id")

	out, err := s.SimilaritySearch(ctx, vector.Vector{}, 0)
	assert.NoError(t, err)
	assert.Nil(t, out)
}
