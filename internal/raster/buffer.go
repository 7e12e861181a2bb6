package raster

import (
	"image"
	"image/color"
	"image/draw"

	"wireframe-renderer/internal/scene"
)

// Target is a line-drawing surface with a frame lifecycle. The render loop
// calls Clear, then DrawLine for every projected edge, then Present.
type Target interface {
	scene.Surface
	Clear()
	Present() error
}

// Canvas is an in-memory Target backed by an RGBA image.
type Canvas struct {
	Width  int
	Height int
	BG     color.RGBA
	FG     color.RGBA

	img *image.RGBA
}

// NewCanvas allocates a canvas filled with bg.
func NewCanvas(w, h int, bg, fg color.RGBA) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		BG:     bg,
		FG:     fg,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.BG), image.Point{}, draw.Src)
}

// DrawLine draws in the foreground color; pixels outside the canvas are dropped.
func (c *Canvas) DrawLine(p1, p2 image.Point) {
	DrawLine(c.img, p1.X, p1.Y, p2.X, p2.Y, c.FG)
}

// Present is a no-op: the image is always current.
func (c *Canvas) Present() error { return nil }

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }
