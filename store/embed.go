package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/sqlite-vector/vector"
)

// EmbedFunc converts free-form text into an embedding. Implementations can
// call any embedding provider as long as the result has the store's dimension.
type EmbedFunc func(ctx context.Context, text string) (vector.Vector, error)

// Upsert inserts d or replaces the content, metadata and embedding of the
// document with the same ID.
func (s *SQLiteStore) Upsert(ctx context.Context, d Document) error {
	if d.ID == "" {
		return errors.New("store: Upsert called with empty id")
	}
	if d.Embedding.IsZero() {
		return &ZeroEmbeddingError{ID: d.ID}
	}
	stmt := fmt.Sprintf(`
INSERT INTO %s(id, content, meta, embedding)
VALUES (?, ?, ?, vector_input(?, ?))
ON CONFLICT(id) DO UPDATE SET
  content = excluded.content,
  meta = excluded.meta,
  embedding = excluded.embedding`, s.table)
	if _, err := s.db.ExecContext(ctx, stmt, d.ID, d.Content, d.Metadata, vector.Format(d.Embedding), s.dimension); err != nil {
		return fmt.Errorf("store: upsert %s: %w", d.ID, err)
	}
	return nil
}

// UpsertText embeds content with embed and upserts the resulting document.
func (s *SQLiteStore) UpsertText(ctx context.Context, embed EmbedFunc, id, content, meta string) error {
	if embed == nil {
		return errors.New("store: EmbedFunc is nil")
	}
	v, err := embed(ctx, content)
	if err != nil {
		return err
	}
	return s.Upsert(ctx, Document{ID: id, Content: content, Metadata: meta, Embedding: v})
}

// SearchText embeds query with embed and runs SimilaritySearch.
func (s *SQLiteStore) SearchText(ctx context.Context, embed EmbedFunc, query string, k int) ([]Document, error) {
	if embed == nil {
		return nil, errors.New("store: EmbedFunc is nil")
	}
	v, err := embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.SimilaritySearch(ctx, v, k)
}
