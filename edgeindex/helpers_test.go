package edgeindex_test

import (
	"math/rand"

	"github.com/katalvlaran/proxima/point"
)

// sampleInput is the 20-point junction-box fixture.
const sampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func mustSample() *point.Set {
	s, err := point.ParseString(sampleInput)
	if err != nil {
		panic(err)
	}
	return s
}

// randomSet builds n points with coordinates in [0, span) from a fixed seed.
// A small span forces many equal distances.
func randomSet(n int, span int64, seed int64) *point.Set {
	r := rand.New(rand.NewSource(seed))
	coords := make([][3]int64, n)
	for i := range coords {
		coords[i] = [3]int64{r.Int63n(span), r.Int63n(span), r.Int63n(span)}
	}
	return point.NewSet(coords)
}
