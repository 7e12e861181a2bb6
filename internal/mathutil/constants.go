package mathutil

import "math"

const Tau = 2 * math.Pi

// ReferenceFOV is the vertical field of view of the reference scene: 100°.
var ReferenceFOV = (50.0 / 180.0) * Tau

// WrapAngle maps an angle in radians into [-π, π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, Tau)
	if a < 0 {
		a += Tau
	}
	return a - math.Pi
}
