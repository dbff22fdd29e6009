package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/proxima/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(xs []int) int {
	var total int
	for _, x := range xs {
		total += x
	}
	return total
}

func TestNew_Singletons(t *testing.T) {
	s := dsu.New(4)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, []int{0, 1, 2, 3}, s.Roots())
	assert.Equal(t, []int{1, 1, 1, 1}, s.Sizes())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, s.Find(i))
		assert.Equal(t, 1, s.SizeOf(i))
	}
}

func TestNew_Empty(t *testing.T) {
	s := dsu.New(0)
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Sizes())
	assert.Empty(t, s.Clusters())
}

func TestNew_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dsu.New(-1) })
}

func TestUnion_MergeAndNoop(t *testing.T) {
	s := dsu.New(5)

	require.True(t, s.Union(0, 1))
	assert.Equal(t, 4, s.Count())
	assert.True(t, s.Connected(0, 1))
	assert.Equal(t, 2, s.SizeOf(1))

	// Repeating the same union, in either order, is a reported no-op.
	assert.False(t, s.Union(0, 1))
	assert.False(t, s.Union(1, 0))
	assert.Equal(t, 4, s.Count())

	require.True(t, s.Union(2, 3))
	require.True(t, s.Union(1, 3))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 4, s.SizeOf(0))
	assert.False(t, s.Connected(0, 4))
	assert.Equal(t, []int{4, 1}, s.SortedSizes())
}

// TestUnion_TieKeepsFirstRoot checks the equal-size tie-break and union by size.
func TestUnion_TieKeepsFirstRoot(t *testing.T) {
	s := dsu.New(4)
	s.Union(3, 1) // equal sizes: 3 survives
	assert.Equal(t, 3, s.Find(1))

	s.Union(0, 1) // {0} is smaller than {1,3}: 3 survives
	assert.Equal(t, 3, s.Find(0))

	s.Union(2, 0) // {2} smaller again
	assert.Equal(t, 3, s.Find(2))
	assert.Equal(t, []int{3}, s.Roots())
}

// TestUnion_Invariants replays random unions and checks monotonicity and conservation.
func TestUnion_Invariants(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	s := dsu.New(n)

	for i := 0; i < 2000; i++ {
		before := s.Count()
		merged := s.Union(r.Intn(n), r.Intn(n))
		if merged {
			assert.Equal(t, before-1, s.Count())
		} else {
			assert.Equal(t, before, s.Count())
		}
		if i%50 == 0 {
			sizes := s.Sizes()
			assert.Equal(t, n, sum(sizes))
			assert.Len(t, sizes, s.Count())
		}
	}
	assert.Equal(t, n, sum(s.Sizes()))
}

func TestMembersAndClusters(t *testing.T) {
	s := dsu.New(6)
	s.Union(0, 2)
	s.Union(2, 4)
	s.Union(1, 5)

	assert.Equal(t, []uint32{0, 2, 4}, s.Members(4).ToArray())
	assert.Equal(t, []uint32{1, 5}, s.Members(1).ToArray())
	assert.Equal(t, []uint32{3}, s.Members(3).ToArray())

	clusters := s.Clusters()
	require.Len(t, clusters, 3)
	var total uint64
	for root, bm := range clusters {
		assert.True(t, bm.Contains(uint32(root)))
		assert.Equal(t, uint64(s.SizeOf(root)), bm.GetCardinality())
		total += bm.GetCardinality()
	}
	assert.Equal(t, uint64(6), total)
}

func TestOutOfRange_Panics(t *testing.T) {
	s := dsu.New(3)
	assert.Panics(t, func() { s.Find(3) })
	assert.Panics(t, func() { s.Find(-1) })
	assert.Panics(t, func() { s.Union(0, 7) })
}
