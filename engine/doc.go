// Package engine binds the vector type to the modernc.org/sqlite driver.
// SQLite has no extensible type system, so the type's input, output, type
// modifier and cast hooks, and the cosine distance operator, are exposed as
// deterministic scalar functions. A vector travels through SQL as TEXT
// holding its canonical literal.
//
//	vector_input(text, typmod)                     parse, check dimension unless typmod = -1
//	vector_output(vector)                          canonical literal
//	vector_modifier_input(tokens)                  '3' → 3
//	vector_modifier_output(typmod)                 3 → '(3)'
//	cast_vector_to_vector(vector, typmod, bool)    unconditional dimension check
//	vector_cosine_distance(a, b)                   the <=> ordering operator
//	vector_l2_distance(a, b)                       Euclidean distance
//	vector_dims(vector)                            number of dimensions
//	vector_to_blob(vector) / vector_from_blob(b)   float32 embedding BLOB interop
//	vec_cosine(blob, blob) / vec_l2(blob, blob)    similarity on embedding BLOBs
//
// All functions are strict: a NULL argument yields NULL.
package engine
