package scene

import (
	"math"

	"wireframe-renderer/internal/mathutil"
)

// Camera is a pinhole camera. Its rotation and projection matrices are
// derived from the Euler rotation and field of view and cached; every setter
// that changes them rebuilds the cache before returning, so Transform never
// sees a stale orientation.
type Camera struct {
	Position mathutil.Vec3

	fov           float64
	rotation      mathutil.Vec3
	surfaceOffset mathutil.Vec3 // image plane, relative to Position

	rotX, rotY, rotZ mathutil.Mat3
	projection       mathutil.Mat3
}

// NewCamera builds a camera looking down +Z before rotation.
// fov is the vertical field of view in radians and must lie in (0, π);
// outside that range the image plane distance is infinite or negative.
func NewCamera(position mathutil.Vec3, fov float64, rotation mathutil.Vec3) *Camera {
	c := &Camera{Position: position}
	c.SetFOV(fov)
	c.SetRotation(rotation)
	return c
}

func (c *Camera) FOV() float64 { return c.fov }

func (c *Camera) Rotation() mathutil.Vec3 { return c.rotation }

// SurfaceOffset is the image plane offset; Z = 1/tan(fov/2).
func (c *Camera) SurfaceOffset() mathutil.Vec3 { return c.surfaceOffset }

// SetFOV updates the field of view and rebuilds the projection matrix.
func (c *Camera) SetFOV(fov float64) {
	c.fov = fov
	c.surfaceOffset = mathutil.Vec3{Z: 1 / math.Tan(fov/2)}
	o := c.surfaceOffset
	c.projection = mathutil.NewMat3(
		1, 0, o.X/o.Z,
		0, 1, o.Y/o.Z,
		0, 0, 1/o.Z,
	)
}

// SetRotation re-aims the camera and rebuilds the rotation matrices.
func (c *Camera) SetRotation(rotation mathutil.Vec3) {
	c.rotation = rotation
	c.Recalculate()
}

// Recalculate rebuilds the cached rotation matrices from the current rotation.
func (c *Camera) Recalculate() {
	c.rotX = mathutil.RotX(c.rotation.X)
	c.rotY = mathutil.RotY(c.rotation.Y)
	c.rotZ = mathutil.RotZ(c.rotation.Z)
}

// Transform maps a world point to screen space. X and Y of the result are
// normalized device coordinates, Z is the depth along the camera axis.
//
// A point on the camera's focal plane (projected depth 0) has no screen
// position: the result is ±Inf or NaN. Callers mapping to pixels must reject
// non-finite results.
func (c *Camera) Transform(point mathutil.Vec3) mathutil.Vec3 {
	offset := point.Sub(c.Position)
	rotated := c.rotX.MulVec3(c.rotY.MulVec3(c.rotZ.MulVec3(offset)))
	p := c.projection.MulVec3(rotated)

	// Perspective divide
	return mathutil.Vec3{
		X: p.X / p.Z,
		Y: p.Y / p.Z,
		Z: p.Z,
	}
}
