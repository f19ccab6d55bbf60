package vector

import (
	"fmt"
	"math"
)

// Mat3 is a row-major 3x3 rotation matrix. V3.Rotate pre-multiplies a
// column vector by it: v' = M * v.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// AxisAngle builds the rotation matrix for a right-handed rotation of ω
// radians around the given axis. The axis is normalized internally; the
// zero vector produces the identity matrix.
func AxisAngle(axis V3, omega float64) Mat3 {
	length := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if length == 0 {
		return Identity3()
	}
	x, y, z := axis.X/length, axis.Y/length, axis.Z/length

	s, c := math.Sin(omega), math.Cos(omega)
	t := 1 - c

	return Mat3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// EulerXYZ builds the rotation matrix for extrinsic (fixed-axis) rotations
// of rx, ry, rz radians applied in order X, then Y, then Z (i.e.
// M = Rz * Ry * Rx).
func EulerXYZ(rx, ry, rz float64) Mat3 {
	sx, cx := math.Sin(rx), math.Cos(rx)
	sy, cy := math.Sin(ry), math.Cos(ry)
	sz, cz := math.Sin(rz), math.Cos(rz)

	rotX := Mat3{
		{1, 0, 0},
		{0, cx, -sx},
		{0, sx, cx},
	}
	rotY := Mat3{
		{cy, 0, sy},
		{0, 1, 0},
		{-sy, 0, cy},
	}
	rotZ := Mat3{
		{cz, -sz, 0},
		{sz, cz, 0},
		{0, 0, 1},
	}

	return rotZ.Mul(rotY.Mul(rotX))
}

// String implements fmt.Stringer, one row per line.
func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g]\n[%g %g %g]\n[%g %g %g]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Mul returns m*o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}
