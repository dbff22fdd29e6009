package edgeindex_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/proxima/edgeindex"
	"github.com/katalvlaran/proxima/point"
)

// ExampleBuild shows the ascending order and the enumeration tie-break:
// 0-1 and 1-2 both have DistanceSq 1 and keep their (i, j) order.
func ExampleBuild() {
	s := point.NewSet([][3]int64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	ix, err := edgeindex.Build(context.Background(), s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ix.Edges())
	// Output: [0-1(1) 1-2(1) 0-2(4)]
}
