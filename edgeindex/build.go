package edgeindex

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/proxima/point"
)

// Build computes every pairwise edge of set and returns them ordered by
// ascending DistanceSq, ties in (i, j) enumeration order.
//
// The only error is ctx.Err() when the context is cancelled during the
// distance stage.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Build(ctx context.Context, set *point.Set, opts ...Option) (*Index, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := set.Len()
	edges := make([]Edge, PairCount(n))
	if len(edges) == 0 {
		return &Index{edges: edges}, nil
	}

	pts := set.Points()
	if cfg.workers == 1 {
		for i := 0; i < n-1; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fillRow(edges[rowOffset(n, i):], pts, i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers)
		for i := 0; i < n-1; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fillRow(edges[rowOffset(n, i):], pts, i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// Stable: equal distances keep (i, j) enumeration order.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].DistanceSq < edges[b].DistanceSq
	})

	return &Index{edges: edges}, nil
}

// rowOffset is the position of edge (i, i+1) in enumeration order.
func rowOffset(n, i int) int {
	// rows 0..i-1 contribute (n-1) + (n-2) + ... + (n-i) edges.
	return i*(n-1) - i*(i-1)/2
}

// fillRow writes edges (i, i+1) .. (i, n-1) into dst.
func fillRow(dst []Edge, pts []point.Point, i int) {
	p := pts[i]
	for k, q := range pts[i+1:] {
		dst[k] = Edge{A: i, B: q.ID, DistanceSq: point.DistanceSq(p, q)}
	}
}
