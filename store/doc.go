// Package store persists feature databases. It includes:
//   - Vector BLOB encoding (little-endian float32 sequence)
//   - Store: a SQLite-backed table of (id, kind, vector) rows
//   - RegisterFunctions: cbir_ssd and cbir_cosine SQL scalar functions
//   - CSV table reading/writing compatible with the reference fixture format,
//     tolerant of malformed numeric tokens
package store
