// Package proxima is an incremental proximity-clustering engine for points in
// 3-D integer space.
//
// Given a set of points it can
//
//   - connect the N closest pairs and summarize the resulting clusters
//     (product of the largest cluster sizes), and
//   - find the pair whose connection first joins every point into a single
//     cluster: the last edge of a Kruskal minimum spanning tree.
//
// Everything is deterministic: pairs are ordered by squared distance with a
// stable (i, j) enumeration tie-break, and the union-find keeps the first
// argument's root on equal sizes.
//
// Packages:
//
//	point/        — Point, immutable Set, DistanceSq and the "x,y,z" loader
//	edgeindex/    — all pairwise edges, stable-sorted by distance (optionally parallel)
//	dsu/          — union-find with union by size, path halving and roaring member sets
//	connectivity/ — Budget, Complete and SpanningTree over the ordered edges
//	cmd/proxima/  — cobra CLI with YAML config and zap logging
//
// Quick start:
//
//	set, _ := point.ParseString("162,817,812\n57,618,57\n906,360,560\n")
//	fmt.Println(connectivity.ClusterWithBudget(set, 10))
//	fmt.Println(connectivity.FindCompletionEdge(set))
package proxima
