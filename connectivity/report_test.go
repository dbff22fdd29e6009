package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/proxima/connectivity"
	"github.com/katalvlaran/proxima/point"
)

func TestTopKProduct(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
		k     int
		want  uint64
	}{
		{"Nil", nil, 3, 1},
		{"One", []int{5}, 3, 5},
		{"Two", []int{2, 3}, 3, 6},
		{"Unsorted", []int{1, 5, 2, 4, 2}, 3, 40},
		{"KZero", []int{4, 4}, 0, 1},
		{"KOne", []int{3, 9, 1}, 1, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, connectivity.TopKProduct(tc.sizes, tc.k))
		})
	}
}

func TestTopKProduct_DoesNotModifyInput(t *testing.T) {
	sizes := []int{1, 3, 2}
	_ = connectivity.TopKProduct(sizes, 2)
	assert.Equal(t, []int{1, 3, 2}, sizes)
}

func TestProductX(t *testing.T) {
	a := point.Point{X: 1_000_000_000, Y: 1}
	b := point.Point{X: -3, Z: 9}
	assert.Equal(t, int64(-3_000_000_000), connectivity.ProductX(a, b))
}
