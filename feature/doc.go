// Package feature implements the image feature extractors used for
// content-based retrieval. It includes:
//   - Image: a decoded 3-channel BGR pixel plane
//   - Vector: the fixed-length float32 feature encoding
//   - Extractors: center patch, rg-chromaticity histogram, top/bottom split
//     histogram, color+texture histogram, and the blue-scene composite
//   - Extract: exhaustive dispatch over the closed Kind enum
//
// Embedding vectors (KindEmbedding) are produced by an external service and
// only consumed here; see the embedding package.
package feature
