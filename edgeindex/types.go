package edgeindex

import (
	"fmt"
	"iter"
)

// Edge is a candidate connection between two points, A < B.
type Edge struct {
	A, B       int
	DistanceSq int64
}

// String renders the edge as "A-B(d²)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.A, e.B, e.DistanceSq)
}

// Index is the read-only, ordered edge sequence of a point set.
type Index struct {
	edges []Edge
}

// Len returns the number of edges, n·(n-1)/2.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}

	return len(ix.edges)
}

// At returns the i-th edge in order. Panics if i is out of range.
func (ix *Index) At(i int) Edge {
	return ix.edges[i]
}

// Edges returns a copy of the ordered edges.
func (ix *Index) Edges() []Edge {
	out := make([]Edge, ix.Len())
	if ix != nil {
		copy(out, ix.edges)
	}

	return out
}

// All yields (position, edge) pairs in order.
func (ix *Index) All() iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		for i := 0; i < ix.Len(); i++ {
			if !yield(i, ix.edges[i]) {
				return
			}
		}
	}
}

// PairCount returns n·(n-1)/2, or 0 for n < 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// buildConfig holds the effective Build settings.
type buildConfig struct {
	workers int
}

// Option customizes Build.
type Option func(*buildConfig)

// WithWorkers bounds the number of goroutines used by the distance stage.
// 1 means fully sequential. Panics on k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("edgeindex: WithWorkers(k < 1)")
	}
	return func(c *buildConfig) {
		c.workers = k
	}
}

func defaultConfig() buildConfig {
	return buildConfig{workers: 1}
}
