package raster

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// LabelFont is the bitmap font used for frame overlays.
var LabelFont tinyfont.Fonter = &tinyfont.TomThumb

// imageDisplay adapts an RGBA image to the tinyfont display interface.
type imageDisplay struct {
	img *image.RGBA
}

func (d imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	setPixel(d.img, int(x), int(y), c)
}

func (d imageDisplay) Display() error { return nil }

func (d imageDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Label writes s with its baseline at (x, y). Multiple lines are split on '\n'.
func Label(img *image.RGBA, x, y int, s string, c color.RGBA) {
	d := imageDisplay{img: img}
	for i, line := range strings.Split(s, "\n") {
		tinyfont.WriteLine(d, LabelFont, int16(x), int16(y+i*labelLineHeight), line, c)
	}
}

const labelLineHeight = 7

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("raster: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("raster: bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
