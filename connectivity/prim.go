package connectivity

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/proxima/edgeindex"
	"github.com/katalvlaran/proxima/point"
)

// prim grows a spanning tree from point 0 over the implicit complete graph.
//
// Steps:
//  1. best[v] holds the cheapest known connection of v to the tree, from[v] its tree endpoint.
//  2. Repeatedly pick the outside vertex with the smallest best[v] (lowest id on ties).
//  3. Add edge (from[v], v), then relax best[] of the remaining outside vertices through v.
//
// Complexity: O(n²) time, O(n) memory. No heap and no edge index: on a
// complete graph the linear scan is already optimal.
func (en *Engine) prim(ctx context.Context, set *point.Set) ([]edgeindex.Edge, int64, error) {
	n := set.Len()
	pts := set.Points()

	var (
		inTree      = make([]bool, n)
		best        = make([]int64, n)
		from        = make([]int, n)
		tree        = make([]edgeindex.Edge, 0, n-1)
		totalWeight int64
	)
	for v := range best {
		best[v] = math.MaxInt64
	}

	u := 0
	inTree[u] = true
	for len(tree) < n-1 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		// Relax through the newest tree vertex u.
		next := -1
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if d := point.DistanceSq(pts[u], pts[v]); d < best[v] {
				best[v], from[v] = d, u
			}
			if next == -1 || best[v] < best[next] {
				next = v
			}
		}

		a, b := from[next], next
		if a > b {
			a, b = b, a
		}
		tree = append(tree, edgeindex.Edge{A: a, B: b, DistanceSq: best[next]})
		totalWeight += best[next]
		inTree[next] = true
		u = next
	}
	en.cfg.logger.Debug("prim spanning tree built",
		zap.Int("points", n),
		zap.Int64("weight", totalWeight),
	)

	return tree, totalWeight, nil
}
