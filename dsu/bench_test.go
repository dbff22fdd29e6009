package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/proxima/dsu"
)

// BenchmarkUnionFind measures random unions followed by finds on 100k elements.
func BenchmarkUnionFind(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := dsu.New(n)
		for _, p := range pairs {
			s.Union(p[0], p[1])
		}
		for j := 0; j < n; j++ {
			_ = s.Find(j)
		}
	}
}
