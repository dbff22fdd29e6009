package point

import "errors"

// Sentinel errors returned by the loader.
var (
	// ErrMalformedLine indicates a line that is not a comma-separated triple.
	ErrMalformedLine = errors.New("point: line must contain exactly three comma-separated fields")

	// ErrBadCoordinate indicates a field that is not a valid int64.
	ErrBadCoordinate = errors.New("point: coordinate is not a valid integer")
)

// Point is a single identified location in 3-D integer space.
//
// ID is the stable index of the point in its Set (0-based input order).
type Point struct {
	ID      int
	X, Y, Z int64
}

// DistanceSq returns the squared Euclidean distance between a and b.
// Complexity: O(1).
func DistanceSq(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// Set is an immutable, index-addressed collection of points.
// The zero value is an empty set.
type Set struct {
	points []Point
}

// NewSet builds a Set from raw coordinate triples. The i-th triple gets ID i.
// The input slice is copied; later changes to it do not affect the Set.
// Complexity: O(n).
func NewSet(coords [][3]int64) *Set {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{ID: i, X: c[0], Y: c[1], Z: c[2]}
	}

	return &Set{points: pts}
}

// Len returns the number of points. A nil *Set has length 0.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.points)
}

// At returns the point with identifier id. It panics if id is out of range,
// exactly like slice indexing.
func (s *Set) At(id int) Point {
	return s.points[id]
}

// Points returns a copy of all points in ID order.
func (s *Set) Points() []Point {
	if s == nil {
		return nil
	}
	out := make([]Point, len(s.points))
	copy(out, s.points)

	return out
}
