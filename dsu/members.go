package dsu

import "github.com/RoaringBitmap/roaring/v2"

// Members returns the ids of the cluster containing id as a bitmap.
// Complexity: O(n·α(n)); the store keeps no per-cluster member lists.
func (s *Store) Members(id int) *roaring.Bitmap {
	root := s.Find(id)
	bm := roaring.New()
	for i := range s.parent {
		if s.Find(i) == root {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Clusters returns every cluster keyed by its root.
// The bitmaps are disjoint and their cardinalities sum to Len().
func (s *Store) Clusters() map[int]*roaring.Bitmap {
	out := make(map[int]*roaring.Bitmap, s.count)
	for i := range s.parent {
		r := s.Find(i)
		bm, ok := out[r]
		if !ok {
			bm = roaring.New()
			out[r] = bm
		}
		bm.Add(uint32(i))
	}

	return out
}
