package scene

import (
	"image"

	"wireframe-renderer/internal/mathutil"
)

// maxPixel bounds mapped coordinates so float→int conversion stays defined
// and line rasterizers never walk absurd distances.
const maxPixel = 1 << 20

// Viewport is the pixel extent that normalized device coordinates map onto.
type Viewport struct {
	Width  int
	Height int
}

// ReferenceViewport is the 1000×1000 surface of the reference scene.
var ReferenceViewport = Viewport{Width: 1000, Height: 1000}

// ToPixel maps normalized x/y in [-1, 1] to pixels:
//
//	px = (x + 1) · Width/2,  py = (y + 1) · Height/2
//
// truncated toward zero. It reports false when either coordinate is not
// finite or falls outside ±maxPixel.
func (vp Viewport) ToPixel(v mathutil.Vec3) (image.Point, bool) {
	fx := (v.X + 1.0) * (float64(vp.Width) / 2)
	fy := (v.Y + 1.0) * (float64(vp.Height) / 2)
	if !inPixelRange(fx) || !inPixelRange(fy) {
		return image.Point{}, false
	}
	return image.Pt(int(fx), int(fy)), true
}

// Scaled returns the viewport with both extents multiplied by n.
func (vp Viewport) Scaled(n int) Viewport {
	return Viewport{Width: vp.Width * n, Height: vp.Height * n}
}

func (vp Viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, vp.Width, vp.Height)
}

func inPixelRange(f float64) bool {
	// NaN fails both comparisons
	return f >= -maxPixel && f <= maxPixel
}
