// Package connectivity drives a dsu.Store over the ordered edges of a
// point.Set under two termination policies, Kruskal style.
//
// Modes
//
//   - Budget (ClusterWithBudget, Engine.Budget)
//     Consider the first min(maxEdges, n·(n-1)/2) edges in order and Union each
//     pair unconditionally. A redundant edge still consumes one unit of budget.
//     The result is the product of the TopK (default 3) largest cluster sizes;
//     when fewer clusters exist, only those are multiplied, and the empty
//     product is 1.
//
//   - Completion (FindCompletionEdge, Engine.Complete)
//     Union edges in order until the first Union that both merges and leaves a
//     single cluster. That edge is the completing edge, i.e. the last edge of
//     the greedy minimum spanning tree. Its endpoints are projected to an int64
//     (default ProductX: x_a·x_b). With fewer than two points no edge can
//     complete, and the value is the sentinel 0.
//
//   - SpanningTree (Engine.SpanningTree)
//     The same greedy pass, collecting every accepted edge and the total squared
//     weight, like a classic Kruskal MST.
//
// State machine
//
//	The cluster count moves from n down to 1, one step per successful Union.
//	Budget stops when the budget is spent; Completion stops at 1.
//
// Determinism
//
//	Edges come from edgeindex, stable-sorted with (i, j) enumeration tie-break,
//	and dsu keeps Find(a)'s root on equal sizes, so every run on the same input
//	yields identical results.
//
// Errors
//
//	Algorithms do not fail on valid input. The only errors are ctx.Err() when the
//	caller cancels the edge build, and ErrEmptySet from SpanningTree on an empty set.
//
// Complexity: O(n² log n) time, dominated by the edge sort; O(n²) memory.
package connectivity
