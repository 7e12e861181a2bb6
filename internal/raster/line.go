package raster

import (
	"image"
	"image/color"
)

// DrawLine draws a 1px line from (x1, y1) to (x2, y2) with a DDA stepper.
// Both endpoints are included. Pixels outside img are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	// Reject lines that cannot touch the image at all
	b := img.Bounds()
	if max(x1, x2) < b.Min.X || min(x1, x2) >= b.Max.X ||
		max(y1, y2) < b.Min.Y || min(y1, y2) >= b.Max.Y {
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x := float64(x1) + 0.5
	y := float64(y1) + 0.5
	for i := 0; i <= steps; i++ {
		setPixel(img, floor(x), floor(y), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}).In(img.Rect) {
		return
	}
	off := img.PixOffset(x, y)
	img.Pix[off] = col.R
	img.Pix[off+1] = col.G
	img.Pix[off+2] = col.B
	img.Pix[off+3] = col.A
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
