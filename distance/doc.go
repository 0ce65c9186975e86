// Package distance implements the dissimilarity metrics paired with the
// feature extractors: sum of squared differences, histogram intersection,
// weighted multi-histogram and color+texture combinations, cosine distance,
// and the blue-scene composite blend. All metrics are pure, symmetric, and
// validate operand shapes before computing; degenerate numeric cases resolve
// to documented sentinel values instead of arithmetic faults.
package distance
