package mathutil

import "math"

// RotX returns the per-axis rotation matrix about X. Angle in radians.
//
//	1  0  0
//	0  c  s
//	0 -s  c
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return NewMat3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// RotY returns the per-axis rotation matrix about Y.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return NewMat3(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// RotZ returns the per-axis rotation matrix about Z.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return NewMat3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Rotate turns point about origin by the Euler angles in rotation.
// Z is applied first, then Y, then X: X(Y(Z(point - origin))) + origin.
func Rotate(point, origin, rotation Vec3) Vec3 {
	xr := RotX(rotation.X)
	yr := RotY(rotation.Y)
	zr := RotZ(rotation.Z)
	return xr.MulVec3(yr.MulVec3(zr.MulVec3(point.Sub(origin)))).Add(origin)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
