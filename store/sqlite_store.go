package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/viant/sqlite-vector/vector"
)

// Options configures a SQLiteStore.
type Options struct {
	// Table names the documents table; DefaultTable when empty.
	Table string
	// Dimension is the declared embedding dimension, in [1, 65535].
	Dimension int32
	// Logger receives debug records; slog.Default() when nil.
	Logger *slog.Logger
}

// SQLiteStore implements Store on a database opened with engine.Open. The
// vector functions do the dimension checks and the distance ranking inside
// SQLite.
type SQLiteStore struct {
	db        *sql.DB
	table     string
	dimension int32
	logger    *slog.Logger
}

// New creates a SQLite-backed Store and ensures its table exists.
func New(ctx context.Context, db *sql.DB, opts Options) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	if opts.Table == "" {
		opts.Table = DefaultTable
	}
	if opts.Dimension < 1 || opts.Dimension > vector.MaxDimension {
		return nil, fmt.Errorf("store: %w", &vector.ModifierRangeError{Token: strconv.Itoa(int(opts.Dimension))})
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if err := EnsureSchema(ctx, db, opts.Table); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, table: opts.Table, dimension: opts.Dimension, logger: opts.Logger}, nil
}

// AddDocuments inserts docs in a single transaction. Documents without an ID
// get a random UUID. An embedding of the wrong dimension or of zero magnitude
// aborts the batch.
func (s *SQLiteStore) AddDocuments(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s(id, content, meta, embedding) VALUES(?, ?, ?, vector_input(?, ?))`, s.table))
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		if d.Embedding.IsZero() {
			return nil, &ZeroEmbeddingError{ID: d.ID}
		}
		if _, err := stmt.ExecContext(ctx, d.ID, d.Content, d.Metadata, vector.Format(d.Embedding), s.dimension); err != nil {
			return nil, fmt.Errorf("store: add %s: %w", d.ID, err)
		}
		ids = append(ids, d.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	s.logger.Debug("added documents", "table", s.table, "count", len(ids))
	return ids, nil
}

// SimilaritySearch returns up to k documents ordered by ascending cosine
// distance to query. The query must have the store's dimension.
func (s *SQLiteStore) SimilaritySearch(ctx context.Context, query vector.Vector, k int) ([]Document, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
SELECT id, content, meta, embedding, distance FROM (
    SELECT id, content, meta, embedding,
           vector_cosine_distance(embedding, cast_vector_to_vector(?, ?, 1)) AS distance
    FROM %s
) ORDER BY distance, id LIMIT ?`, s.table), vector.Format(query), s.dimension, k)
	if err != nil {
		return nil, fmt.Errorf("store: search: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Content, &d.Metadata, &d.Embedding, &d.Distance); err != nil {
			return nil, fmt.Errorf("store: search: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: search: %w", err)
	}
	s.logger.Debug("similarity search", "table", s.table, "k", k, "found", len(out))
	return out, nil
}

// Remove deletes a document by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("store: Remove called with empty id")
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.table), id)
	return err
}

var _ Store = (*SQLiteStore)(nil)
