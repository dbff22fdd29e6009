// Package point defines the immutable input of the clustering engine: a set of
// identified points in 3-D integer space, plus a small text loader for it.
//
// What & Why
//
//   - Point: an identifier (its index in the input) and (X, Y, Z) coordinates as int64.
//   - Set:   an immutable, index-addressed collection of points. Once built it is only read,
//     so it can be shared freely between goroutines.
//   - DistanceSq: squared Euclidean distance. Squares are enough to order pairs and keep the
//     arithmetic exact. The result fits int64 while every per-axis spread stays
//     below ~1.75·10^9, which covers non-negative coordinates up to 10^9.
//
// Loader
//
//	Parse reads one "x,y,z" triple per line. Blank lines are skipped and whitespace around
//	fields is ignored. Any other shape is rejected before it reaches the engine:
//
//	- ErrMalformedLine  : a line does not have exactly three comma-separated fields.
//	- ErrBadCoordinate  : a field is not a base-10 int64.
//
//	Both are wrapped with the 1-based line number; test them with errors.Is.
//
// Complexity: NewSet and Parse are O(n) time and memory.
package point
