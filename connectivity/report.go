package connectivity

import (
	"slices"
	"sort"

	"github.com/katalvlaran/proxima/point"
)

// TopKProduct multiplies the k largest values of sizes. If fewer than k values
// exist, all of them are used; no values (or k < 1) give the empty product 1.
// sizes is not modified.
func TopKProduct(sizes []int, k int) uint64 {
	sorted := slices.Clone(sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	product := uint64(1)
	for i := 0; i < k && i < len(sorted); i++ {
		product *= uint64(sorted[i])
	}

	return product
}

// ProductX is the default completion projection: a.X · b.X.
func ProductX(a, b point.Point) int64 {
	return a.X * b.X
}
