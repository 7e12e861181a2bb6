package encode

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// WriteAnimation writes frames as a looping animated WebP, each shown for delay.
func WriteAnimation(path string, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: animation %s: no frames", path)
	}

	ms := uint(delay.Milliseconds())
	if ms == 0 {
		ms = 1
	}
	ani := nativewebp.Animation{
		Images:          frames,
		Durations:       make([]uint, len(frames)),
		Disposals:       make([]uint, len(frames)),
		LoopCount:       0,
		BackgroundColor: 0xff000000,
	}
	for i := range frames {
		ani.Durations[i] = ms
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := nativewebp.EncodeAll(out, &ani, nil); err != nil {
		out.Close()
		return fmt.Errorf("encode: animation %s: %w", path, err)
	}
	return out.Close()
}
