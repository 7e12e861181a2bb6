package encode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		img.SetRGBA(x, 3, color.RGBA{255, 255, 255, 255})
	}
	return img
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"webp", "PNG", ".bmp", "tga"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Errorf("gif accepted")
	}
	if PNG.Ext() != ".png" {
		t.Errorf("ext = %q", PNG.Ext())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testImage()
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		TGA: func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
	}
	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size = %v", got.Bounds().Size())
			}
			r, _, _, _ := got.At(got.Bounds().Min.X+5, got.Bounds().Min.Y+3).RGBA()
			if r>>8 != 255 {
				t.Fatalf("line pixel lost, r = %d", r>>8)
			}
		})
	}
}

func TestEncodeWebP(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), WebP); err != nil {
		t.Fatalf("encode: %v", err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Fatalf("not a RIFF/WEBP stream")
	}
}

func TestWriteFileAndAnimation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "frame_0000.png")
	if err := WriteFile(path, testImage(), PNG); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	anim := filepath.Join(dir, "animation.webp")
	frames := []image.Image{testImage(), testImage()}
	if err := WriteAnimation(anim, frames, 16*time.Millisecond); err != nil {
		t.Fatalf("animation: %v", err)
	}
	if err := WriteAnimation(anim, nil, time.Second); err == nil {
		t.Fatalf("empty animation accepted")
	}
}
