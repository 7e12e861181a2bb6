package scene

import (
	"image"

	"wireframe-renderer/internal/mathutil"
)

// Surface receives projected line segments in pixel coordinates.
type Surface interface {
	DrawLine(p1, p2 image.Point)
}

// Triangle holds three vertices in mesh-local space.
type Triangle struct {
	V1, V2, V3 mathutil.Vec3
}

func NewTriangle(v1, v2, v3 mathutil.Vec3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Project places the vertices at origin, turns them about origin by the
// Euler angles in rotation and runs them through the camera. The results are
// in screen space (see Camera.Transform).
func (t Triangle) Project(origin, rotation mathutil.Vec3, cam *Camera) [3]mathutil.Vec3 {
	return [3]mathutil.Vec3{
		cam.Transform(mathutil.Rotate(t.V1.Add(origin), origin, rotation)),
		cam.Transform(mathutil.Rotate(t.V2.Add(origin), origin, rotation)),
		cam.Transform(mathutil.Rotate(t.V3.Add(origin), origin, rotation)),
	}
}

// Pixels projects the triangle and maps it into vp. ok[i] is false when
// vertex i has no finite pixel position.
func (t Triangle) Pixels(vp Viewport, origin, rotation mathutil.Vec3, cam *Camera) (pts [3]image.Point, ok [3]bool) {
	for i, p := range t.Project(origin, rotation, cam) {
		pts[i], ok[i] = vp.ToPixel(p)
	}
	return pts, ok
}

// Draw emits the edges v1-v2, v2-v3 and v3-v1 to dst. An edge touching a
// vertex without a pixel position is skipped. Returns the number of edges drawn.
func (t Triangle) Draw(dst Surface, vp Viewport, origin, rotation mathutil.Vec3, cam *Camera) int {
	pts, ok := t.Pixels(vp, origin, rotation, cam)

	drawn := 0
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if !ok[i] || !ok[j] {
			continue
		}
		dst.DrawLine(pts[i], pts[j])
		drawn++
	}
	return drawn
}
