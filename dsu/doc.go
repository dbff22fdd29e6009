// Package dsu implements a disjoint-set (union-find) store over dense integer
// identifiers 0..n-1, tracking per-cluster size and the live cluster count.
//
// Representation
//
//	An arena of two int slices: parent[i] and size[i]. size is only meaningful
//	at roots. Find uses iterative path halving, Union attaches the smaller root
//	under the larger one (union by size). Together they give amortized
//	O(α(n)) per operation.
//
// Determinism
//
//	When both clusters have the same size, Find(a)'s root survives. Callers
//	that replay the same Union sequence therefore always get the same roots.
//
// Invariants
//
//   - Count() starts at n and only decreases, by exactly one per successful Union.
//   - The sizes of all roots sum to n.
//   - A Union on already-connected ids is a no-op that returns false.
//
// Identifiers outside [0, n) are a programming error and panic, as slice
// indexing does. A Store is not safe for concurrent mutation; it is meant to
// have a single owner.
package dsu
