// Package vector provides the double-precision linear algebra primitives
// used throughout the mesh editor: a 3-component vector and the 3x3
// rotation matrices built from it.
package vector

import "fmt"

// V3 is an ordered triple of double-precision components. It is used for
// vertex positions, displacements, and axis/rotation parameters.
type V3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of v and o.
func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// AddScalar returns v with s added to every component.
func (v V3) AddScalar(s float64) V3 {
	return V3{v.X + s, v.Y + s, v.Z + s}
}

// Mul returns the componentwise product of v and o.
func (v V3) Mul(o V3) V3 {
	return V3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Inf returns the componentwise minimum of v and o.
func (v V3) Inf(o V3) V3 {
	return V3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Sup returns the componentwise maximum of v and o.
func (v V3) Sup(o V3) V3 {
	return V3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Rotate returns v transformed by m, i.e. m*v treating v as a column vector.
func (v V3) Rotate(m Mat3) V3 {
	return V3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// String implements fmt.Stringer for debugging and test failure output.
func (v V3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
