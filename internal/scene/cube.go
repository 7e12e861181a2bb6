package scene

import "wireframe-renderer/internal/mathutil"

// GenCube returns the 12 triangles of an axis-aligned cube whose corners sit
// at ±side on every axis. Face order is back, front, top, bottom, left, right;
// each face is split along the same diagonal, so the vertex order is stable.
func GenCube(side float64) []Triangle {
	s := side
	backTopLeft := mathutil.V3(-s, s, -s)
	backBottomLeft := mathutil.V3(-s, -s, -s)
	backTopRight := mathutil.V3(s, s, -s)
	backBottomRight := mathutil.V3(s, -s, -s)
	frontTopLeft := mathutil.V3(-s, s, s)
	frontBottomLeft := mathutil.V3(-s, -s, s)
	frontTopRight := mathutil.V3(s, s, s)
	frontBottomRight := mathutil.V3(s, -s, s)

	return []Triangle{
		// back
		{backTopLeft, backBottomRight, backTopRight},
		{backTopLeft, backBottomRight, backBottomLeft},
		// front
		{frontTopLeft, frontBottomRight, frontTopRight},
		{frontTopLeft, frontBottomRight, frontBottomLeft},
		// top
		{frontTopLeft, backTopRight, frontTopRight},
		{frontTopLeft, backTopRight, backTopLeft},
		// bottom
		{frontBottomLeft, backBottomRight, frontBottomRight},
		{frontBottomLeft, backBottomRight, backBottomLeft},
		// left
		{frontBottomLeft, backTopLeft, frontTopLeft},
		{frontBottomLeft, backTopLeft, backBottomLeft},
		// right
		{frontBottomRight, backTopRight, frontTopRight},
		{frontBottomRight, backTopRight, backBottomRight},
	}
}
