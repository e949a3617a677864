package store

import (
	"context"
	"fmt"

	"github.com/viant/sqlite-vector/vector"
)

// Document is a unit of content stored with its embedding.
type Document struct {
	// ID is the logical identifier of the document. When empty on insert, the
	// store generates one.
	ID string

	// Content holds the main text/body of the document.
	Content string

	// Metadata is an opaque payload, usually JSON.
	Metadata string

	// Embedding is the vector representation of the document content. Its
	// dimension must match the store's declared dimension.
	Embedding vector.Vector

	// Distance is the cosine distance to the query; set by SimilaritySearch only.
	Distance float64
}

// Store defines the application-level vector store API.
type Store interface {
	// AddDocuments inserts documents into the store and returns their IDs.
	AddDocuments(ctx context.Context, docs []Document) ([]string, error)

	// SimilaritySearch returns up to k documents nearest to query, closest first.
	SimilaritySearch(ctx context.Context, query vector.Vector, k int) ([]Document, error)

	// Remove deletes the document with the given ID.
	Remove(ctx context.Context, id string) error
}

// ZeroEmbeddingError rejects a document whose embedding has zero magnitude;
// such a row would make every cosine ranking over the table fail.
type ZeroEmbeddingError struct {
	ID string
}

func (e *ZeroEmbeddingError) Error() string {
	return fmt.Sprintf("store: document %s has a zero-magnitude embedding", e.ID)
}

func (e *ZeroEmbeddingError) Unwrap() error { return vector.ErrZeroMagnitude }
