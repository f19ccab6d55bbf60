package geometry

import (
	"math"

	"github.com/paraforge-go/emg/vector"
)

// AddSquare appends a square in the XY plane (z=0) spanning
// [lower,1] on both axes, where lower is 0 if unit is true and -1
// otherwise, and selects its 4 new vertices.
func (g *Geometry) AddSquare(unit bool) {
	offset := uint32(len(g.vtcs))
	lower := -1.0
	if unit {
		lower = 0.0
	}

	for _, x := range [2]float64{lower, 1} {
		for _, y := range [2]float64{lower, 1} {
			g.vtcs = append(g.vtcs, vector.New(x, y, 0))
		}
	}

	g.tris = append(g.tris,
		Tri{2 + offset, 1 + offset, 0 + offset},
		Tri{1 + offset, 2 + offset, 3 + offset},
	)

	g.replaceSelection(rangeU32(offset, offset+4))
}

//       3 ----- 7
//      /       /|
//    1 ----- 5  |
//    |  |    |  |
//    |  2 ---|- 6    Z  Y
//    | /     | /     | /
//    0 ----- 4       O--X

// AddCube appends a cube spanning [lower,1] on all three axes, where
// lower is 0 if unit is true and -1 otherwise, and selects its 8 new
// vertices. Any two vertices differ in index by 1 if their edge runs
// parallel to Z, 2 if parallel to Y, 4 if parallel to X, or the sum of
// the relevant axes otherwise.
func (g *Geometry) AddCube(unit bool) {
	offset := uint32(len(g.vtcs))
	lower := -1.0
	if unit {
		lower = 0.0
	}

	for _, x := range [2]float64{lower, 1} {
		for _, y := range [2]float64{lower, 1} {
			for _, z := range [2]float64{lower, 1} {
				g.vtcs = append(g.vtcs, vector.New(x, y, z))
			}
		}
	}

	axisTriples := [3][3]uint32{{1, 2, 4}, {2, 4, 1}, {4, 1, 2}}
	for _, axes := range axisTriples {
		a0, a1, a2 := axes[0], axes[1], axes[2]
		square := [4]uint32{0 + offset, a0 + offset, a1 + offset, a0 + a1 + offset}

		g.tris = append(g.tris,
			Tri{square[0], square[1], square[2]},
			Tri{square[3], square[2], square[1]},
		)

		for i := range square {
			square[i] += a2
		}

		g.tris = append(g.tris,
			Tri{square[2], square[1], square[0]},
			Tri{square[1], square[2], square[3]},
		)
	}

	g.replaceSelection(rangeU32(offset, offset+8))
}

//       /- 3 -\
//      4       2
//     /         \
//    5     0     1
//     \         /     Y
//      6       8      |
//       \- 7 -/       O--X

// AddCircle appends a fan of segments triangles in the XY plane around a
// new center vertex, and selects the segments+1 new vertices.
func (g *Geometry) AddCircle(segments uint32) {
	offset := uint32(len(g.vtcs))

	g.vtcs = append(g.vtcs, vector.New(0, 0, 0))
	for i := uint32(0); i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		g.vtcs = append(g.vtcs, vector.New(math.Cos(theta), math.Sin(theta), 0))

		g.tris = append(g.tris, Tri{
			offset,
			offset + i + 1,
			offset + (i+1)%segments + 1,
		})
	}

	g.replaceSelection(rangeU32(offset, offset+segments+1))
}

// AddCylinder appends a capped cylinder of segments sides running from
// z=lower (0 if unit, else -1) to z=1, built as two interleaved circles
// (even indices on the lower cap, odd on the upper), and selects all
// 2*segments+2 new vertices.
func (g *Geometry) AddCylinder(segments uint32, unit bool) {
	offset := uint32(len(g.vtcs))
	lower := -1.0
	if unit {
		lower = 0.0
	}

	g.vtcs = append(g.vtcs, vector.New(0, 0, lower))
	g.vtcs = append(g.vtcs, vector.New(0, 0, 1))

	for i := uint32(0); i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)

		g.vtcs = append(g.vtcs, vector.New(math.Cos(theta), math.Sin(theta), lower))
		g.vtcs = append(g.vtcs, vector.New(math.Cos(theta), math.Sin(theta), 1))

		v1 := offset + 2*(i+1)
		v2 := offset + 2*((i+1)%segments) + 2

		g.tris = append(g.tris,
			Tri{offset, v2, v1},
			Tri{offset + 1, v1 + 1, v2 + 1},
			Tri{v1, v2, v1 + 1},
			Tri{v1 + 1, v2, v2 + 1},
		)
	}

	g.replaceSelection(rangeU32(offset, offset+2*segments+2))
}

// rangeU32 returns [lo, hi) as a slice, for seeding a fresh selection
// after a primitive is appended.
func rangeU32(lo, hi uint32) []uint32 {
	out := make([]uint32, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
