package edgeindex_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/proxima/edgeindex"
)

// BenchmarkBuild measures the full build (distances + stable sort) on 1000 points.
func BenchmarkBuild(b *testing.B) {
	s := randomSet(1000, 1_000_000, 42)
	for _, k := range []int{1, 8} {
		b.Run(fmt.Sprintf("workers=%d", k), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = edgeindex.Build(context.Background(), s, edgeindex.WithWorkers(k))
			}
		})
	}
}
