package connectivity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/proxima/dsu"
	"github.com/katalvlaran/proxima/edgeindex"
	"github.com/katalvlaran/proxima/point"
)

// ClusterWithBudget connects the maxEdges closest pairs of set and returns the
// product of the three largest cluster sizes. Negative budgets count as 0.
func ClusterWithBudget(set *point.Set, maxEdges int) uint64 {
	res, _ := New().Budget(context.Background(), set, maxEdges)

	return res.Product
}

// FindCompletionEdge returns x_a·x_b for the edge that first joins set into a
// single cluster, or 0 when set has fewer than two points.
func FindCompletionEdge(set *point.Set) int64 {
	res, _ := New().Complete(context.Background(), set)

	return res.Value
}

// Budget runs bounded-budget clustering.
//
// Steps:
//  1. Build the ordered edge index.
//  2. Union each of the first min(maxEdges, |edges|) edges, redundant or not.
//  3. Sort the cluster sizes descending and multiply the TopK largest.
func (en *Engine) Budget(ctx context.Context, set *point.Set, maxEdges int) (BudgetResult, error) {
	ix, err := en.index(ctx, set)
	if err != nil {
		return BudgetResult{}, err
	}

	limit := min(max(maxEdges, 0), ix.Len())
	store := dsu.New(set.Len())
	res := BudgetResult{Considered: limit}
	for step := 0; step < limit; step++ {
		if en.union(store, step, ix.At(step)) {
			res.Merged++
		}
	}

	res.Clusters = store.Count()
	res.Sizes = store.SortedSizes()
	res.Product = TopKProduct(res.Sizes, en.cfg.topK)
	en.cfg.logger.Debug("budget clustering done",
		zap.Int("considered", res.Considered),
		zap.Int("merged", res.Merged),
		zap.Int("clusters", res.Clusters),
		zap.Uint64("product", res.Product),
	)

	return res, nil
}

// Complete runs full-connectivity completion.
//
// Only the Union call that itself moves the count from 2 to 1 qualifies;
// redundant edges never do.
func (en *Engine) Complete(ctx context.Context, set *point.Set) (CompletionResult, error) {
	ix, err := en.index(ctx, set)
	if err != nil {
		return CompletionResult{}, err
	}

	store := dsu.New(set.Len())
	for step, e := range ix.All() {
		if en.union(store, step, e) && store.Count() == 1 {
			res := CompletionResult{
				Found: true,
				Edge:  e,
				Steps: step + 1,
				Value: en.cfg.projection(set.At(e.A), set.At(e.B)),
			}
			en.cfg.logger.Debug("completing edge found",
				zap.Stringer("edge", e),
				zap.Int("steps", res.Steps),
				zap.Int64("value", res.Value),
			)
			return res, nil
		}
	}
	en.cfg.logger.Debug("no completing edge", zap.Int("points", set.Len()))

	return CompletionResult{Steps: ix.Len()}, nil
}

// SpanningTree returns a minimum spanning tree of set's complete graph and its
// total DistanceSq. With MethodKruskal the edges come in acceptance order and
// the last one is Complete's edge; with MethodPrim they come in growth order
// from point 0. Both give the same total weight. The hook only fires for
// Kruskal, which is the only method that drives a union-find.
//
// A single point yields an empty tree with weight 0; an empty set yields
// ErrEmptySet.
func (en *Engine) SpanningTree(ctx context.Context, set *point.Set) ([]edgeindex.Edge, int64, error) {
	n := set.Len()
	if n == 0 {
		return nil, 0, ErrEmptySet
	}
	if n == 1 {
		return []edgeindex.Edge{}, 0, nil
	}
	if en.cfg.method == MethodPrim {
		return en.prim(ctx, set)
	}

	ix, err := en.index(ctx, set)
	if err != nil {
		return nil, 0, err
	}

	var (
		tree        = make([]edgeindex.Edge, 0, n-1)
		totalWeight int64
		store       = dsu.New(n)
	)
	for step, e := range ix.All() {
		if !en.union(store, step, e) {
			continue
		}
		tree = append(tree, e)
		totalWeight += e.DistanceSq
		// A complete graph always reaches n-1 edges.
		if len(tree) == n-1 {
			break
		}
	}

	return tree, totalWeight, nil
}

// index builds the ordered edge sequence and logs how long it took.
func (en *Engine) index(ctx context.Context, set *point.Set) (*edgeindex.Index, error) {
	start := time.Now()
	ix, err := edgeindex.Build(ctx, set, edgeindex.WithWorkers(en.cfg.workers))
	if err != nil {
		en.cfg.logger.Debug("edge index aborted", zap.Error(err))
		return nil, err
	}
	en.cfg.logger.Debug("edge index built",
		zap.Int("points", set.Len()),
		zap.Int("edges", ix.Len()),
		zap.Int("workers", en.cfg.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return ix, nil
}

// union merges e's endpoints and notifies the hook.
func (en *Engine) union(store *dsu.Store, step int, e edgeindex.Edge) bool {
	merged := store.Union(e.A, e.B)
	if en.cfg.onMerge != nil {
		en.cfg.onMerge(step, e, merged, store.Count())
	}

	return merged
}
