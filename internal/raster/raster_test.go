package raster

import (
	"image"
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func countFG(img *image.RGBA, fg color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == fg {
				n++
			}
		}
	}
	return n
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		pixels         int
	}{
		{"horizontal", 1, 2, 8, 2, 8},
		{"vertical reversed", 5, 9, 5, 0, 10},
		{"diagonal", 0, 0, 6, 6, 7},
		{"steep", 2, 1, 4, 9, 9},
		{"point", 3, 3, 3, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 10, black, white)
			c.DrawLine(image.Pt(tt.x1, tt.y1), image.Pt(tt.x2, tt.y2))
			img := c.Image()
			if img.RGBAAt(tt.x1, tt.y1) != white || img.RGBAAt(tt.x2, tt.y2) != white {
				t.Fatalf("endpoints not drawn")
			}
			if n := countFG(img, white); n != tt.pixels {
				t.Fatalf("pixels = %d, want %d", n, tt.pixels)
			}
		})
	}
}

func TestDrawLineClipsToCanvas(t *testing.T) {
	c := NewCanvas(10, 10, black, white)
	c.DrawLine(image.Pt(-5, 5), image.Pt(20, 5))
	if n := countFG(c.Image(), white); n != 10 {
		t.Fatalf("clipped row pixels = %d, want 10", n)
	}

	c.Clear()
	c.DrawLine(image.Pt(-1000, -1000), image.Pt(-10, -3))
	c.DrawLine(image.Pt(10, 0), image.Pt(10, 9)) // one past the right edge
	if n := countFG(c.Image(), white); n != 0 {
		t.Fatalf("off-canvas lines drew %d pixels", n)
	}
}

func TestCanvasClearAndTarget(t *testing.T) {
	var tgt Target = NewCanvas(4, 4, black, white)
	tgt.DrawLine(image.Pt(0, 0), image.Pt(3, 3))
	if err := tgt.Present(); err != nil {
		t.Fatalf("present: %v", err)
	}
	tgt.Clear()
	if n := countFG(tgt.(*Canvas).Image(), white); n != 0 {
		t.Fatalf("clear left %d pixels", n)
	}
}

func TestLabelDrawsInsideImage(t *testing.T) {
	img := NewCanvas(64, 24, black, white).Image()
	Label(img, 2, 8, "F 12\nxyz", white)
	if countFG(img, white) == 0 {
		t.Fatalf("label drew nothing")
	}
	// off-image text must not panic
	Label(img, 60, 200, "overflow", white)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"#000000", black, false},
		{"ffffff", white, false},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"#fff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}
