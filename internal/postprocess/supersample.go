package postprocess

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Filters maps config names to resampling kernels.
var Filters = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// Filter looks up a resampling kernel by name. Empty selects catmullrom.
func Filter(name string) (draw.Interpolator, error) {
	if name == "" {
		name = "catmullrom"
	}
	f, ok := Filters[name]
	if !ok {
		return nil, fmt.Errorf("postprocess: unknown filter %q", name)
	}
	return f, nil
}

// Downsample scales a supersampled frame to w×h. Thin lines drawn at n× the
// target size come out anti-aliased. image.RGBA is already premultiplied, so
// the kernel can run on it directly.
func Downsample(img *image.RGBA, w, h int, filter draw.Interpolator) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	filter.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
