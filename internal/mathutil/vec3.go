package mathutil

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// Equality is exact component-wise comparison with ==.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// AddAssign accumulates b into v.
func (v *Vec3) AddAssign(b Vec3) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
}

func (v *Vec3) SubAssign(b Vec3) {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v *Vec3) ScaleAssign(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div divides every component by s. A zero divisor yields ±Inf or NaN.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v *Vec3) DivAssign(s float64) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean magnitude.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v divided by its magnitude.
// The zero vector has no direction: the result is NaN in every component.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Len())
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

func (v Vec3) String() string {
	return fmt.Sprintf("[ %g, %g, %g ]", v.X, v.Y, v.Z)
}

func (v Vec3) GoString() string {
	return fmt.Sprintf("Vec3: [ x: %g, y: %g, z: %g ]", v.X, v.Y, v.Z)
}
