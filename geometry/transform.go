package geometry

import "github.com/paraforge-go/emg/vector"

// Translate adds (dx, dy, dz) to every selected vertex.
func (g *Geometry) Translate(dx, dy, dz float64) {
	d := vector.New(dx, dy, dz)
	for _, i := range g.selection {
		g.vtcs[i] = g.vtcs[i].Add(d)
	}
}

// RotateEuler left-multiplies every selected vertex by the XYZ-Euler
// rotation built from rx, ry, rz radians (applied X then Y then Z).
func (g *Geometry) RotateEuler(rx, ry, rz float64) {
	m := vector.EulerXYZ(rx, ry, rz)
	for _, i := range g.selection {
		g.vtcs[i] = g.vtcs[i].Rotate(m)
	}
}

// RotateAxis normalizes (ax, ay, az) and applies the resulting axis-angle
// rotation of omega radians to every selected vertex.
func (g *Geometry) RotateAxis(ax, ay, az, omega float64) {
	m := vector.AxisAngle(vector.New(ax, ay, az), omega)
	for _, i := range g.selection {
		g.vtcs[i] = g.vtcs[i].Rotate(m)
	}
}

// Scale componentwise-multiplies every selected vertex by (sx, sy, sz). If
// an odd number of the three factors are negative, FlipNormals is also
// called (over the same selection) so winding stays consistent with the
// mirrored geometry.
func (g *Geometry) Scale(sx, sy, sz float64) {
	s := vector.New(sx, sy, sz)
	for _, i := range g.selection {
		g.vtcs[i] = g.vtcs[i].Mul(s)
	}

	negatives := 0
	for _, f := range []float64{sx, sy, sz} {
		if f < 0 {
			negatives++
		}
	}
	if negatives%2 == 1 {
		g.FlipNormals()
	}
}
