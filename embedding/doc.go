// Package embedding consumes DNN embedding vectors produced by an external
// service. The network itself is out of scope; this package carries the
// service contract (EmbedFunc), a cache of embeddings keyed by image id that
// can be loaded from a persisted table, the input preprocessing the reference
// service expects, and a brute-force cosine-distance index for pure-embedding
// queries.
package embedding
