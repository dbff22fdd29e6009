package dsu

import (
	"fmt"
	"sort"
)

// Store is a disjoint-set forest with union by size and path halving.
type Store struct {
	parent []int
	size   []int
	count  int
}

// New returns a Store with n singleton clusters. Panics on n < 0.
func New(n int) *Store {
	if n < 0 {
		panic(fmt.Sprintf("dsu: New(%d): negative size", n))
	}
	s := &Store{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}

	return s
}

// Len returns the number of elements n.
func (s *Store) Len() int {
	return len(s.parent)
}

// Find returns the root of the cluster containing id.
// Complexity: amortized O(α(n)).
func (s *Store) Find(id int) int {
	s.check(id)
	for s.parent[id] != id {
		// Path halving: point id at its grandparent, then hop there.
		s.parent[id] = s.parent[s.parent[id]]
		id = s.parent[id]
	}

	return id
}

// Union merges the clusters of a and b and reports whether a merge happened.
// The smaller cluster's root is attached under the larger's; on equal sizes
// Find(a)'s root survives.
func (s *Store) Union(a, b int) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	s.count--

	return true
}

// Connected reports whether a and b are in the same cluster.
func (s *Store) Connected(a, b int) bool {
	return s.Find(a) == s.Find(b)
}

// Count returns the current number of clusters.
func (s *Store) Count() int {
	return s.count
}

// SizeOf returns the member count of the cluster containing id.
// Passing a root is the common case; any member works.
func (s *Store) SizeOf(id int) int {
	return s.size[s.Find(id)]
}

// Roots returns the root of every cluster in ascending order.
func (s *Store) Roots() []int {
	roots := make([]int, 0, s.count)
	for i, p := range s.parent {
		if p == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// Sizes returns one size per cluster, in ascending root order.
// Callers that need another order must sort the result.
func (s *Store) Sizes() []int {
	roots := s.Roots()
	sizes := make([]int, len(roots))
	for i, r := range roots {
		sizes[i] = s.size[r]
	}

	return sizes
}

// SortedSizes returns the cluster sizes, largest first.
func (s *Store) SortedSizes() []int {
	sizes := s.Sizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

func (s *Store) check(id int) {
	if id < 0 || id >= len(s.parent) {
		panic(fmt.Sprintf("dsu: id %d out of range [0, %d)", id, len(s.parent)))
	}
}
