// Package vector implements the `vector` datatype: an immutable,
// variable-dimension sequence of float64 values used to store embeddings and
// rank rows by similarity. It includes:
//   - Vector and its canonical JSON-array text form (Parse, Format)
//   - type modifier codec for declared dimensions (DecodeModifier, EncodeModifier)
//   - dimension validation at input and cast time (Input, Cast, Validate)
//   - cosine distance for ordering (CosineDistance)
//   - float32 embedding BLOB interop (EncodeEmbedding, DecodeEmbedding)
package vector
