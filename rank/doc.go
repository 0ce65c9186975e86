// Package rank scores a query against a feature database and orders the
// matches by ascending distance. Entries whose distance computation fails are
// skipped with an optional advisory; one broken entry never aborts the scan.
// The per-entry computations are independent, so a parallel variant is
// provided for large databases.
package rank
