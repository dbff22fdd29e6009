// Package edgeindex materializes every pairwise edge of a point.Set and orders
// them for greedy, shortest-first consumption.
//
// Ordering contract
//
//   - Edges are generated in lexicographic (i, j) order with i < j over the
//     input indexing.
//   - They are then stable-sorted ascending by DistanceSq, so equal-distance
//     edges keep their enumeration order. Callers that pick "the first edge
//     that does X" rely on this tie-break.
//
// Parallelism
//
//	Only the distance stage may run in parallel (WithWorkers). Every row i owns a
//	fixed slot range of the output, so the parallel build produces exactly the
//	same slice as the sequential one. Sorting is always sequential.
//
// Complexity: O(n² log n) time, O(n²) memory. A set with fewer than two points
// yields an empty Index.
package edgeindex
