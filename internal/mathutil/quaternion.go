package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w) with w as the scalar part.
// Nothing in the render path consumes it; Euler angles drive rotation there.
type Quat struct {
	X, Y, Z, W float64
}

func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the unit quaternion rotating by angle (radians)
// counter-clockwise about axis. axis must be non-zero.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	u := axis.Unit()
	s, c := math.Sin(angle*0.5), math.Cos(angle*0.5)
	return Quat{u.X * s, u.Y * s, u.Z * s, c}
}

// Len is the Euclidean norm over all four components.
func (q Quat) Len() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize divides every component by Len. The zero quaternion yields NaN.
func (q Quat) Normalize() Quat {
	l := q.Len()
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns the Hamilton product q·r.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Mat3 converts a unit quaternion to a rotation matrix.
func (q Quat) Mat3() Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return NewMat3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}
