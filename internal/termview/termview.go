// Package termview shows the scene live in a terminal, one cell per pixel.
package termview

import (
	"image"
	"time"

	"wireframe-renderer/internal/control"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/scene"

	"github.com/gdamore/tcell/v2"
)

const lineRune = '█'

// Surface plots line cells on a tcell screen. It satisfies raster.Target.
type Surface struct {
	Screen tcell.Screen
	Style  tcell.Style
}

var _ raster.Target = (*Surface)(nil)

func (s *Surface) Clear() { s.Screen.Clear() }

func (s *Surface) DrawLine(p1, p2 image.Point) {
	w, h := s.Screen.Size()
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	steps := max(abs(dx), abs(dy))
	for i := 0; i <= steps; i++ {
		x, y := p1.X, p1.Y
		if steps > 0 {
			x += dx * i / steps
			y += dy * i / steps
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		s.Screen.SetContent(x, y, lineRune, nil, s.Style)
	}
}

func (s *Surface) Present() error {
	s.Screen.Show()
	return nil
}

// Viewport is the screen size in cells.
func (s *Surface) Viewport() scene.Viewport {
	w, h := s.Screen.Size()
	return scene.Viewport{Width: w, Height: h}
}

// Run draws the loop on screen every frame until Escape, q or Ctrl-C.
// The caller owns the screen's Init and Fini.
func Run(screen tcell.Screen, loop *control.Loop, frame time.Duration, style tcell.Style) {
	surf := &Surface{Screen: screen, Style: style}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	var in control.Input
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in = merge(in, keyInput(ev.Key(), ev.Rune()))
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !loop.Step(in) {
				return
			}
			in = control.Input{}
			surf.Clear()
			loop.Scene.Draw(surf, surf.Viewport())
			surf.Present()
		}
	}
}

// keyInput maps one key press. Terminals report presses, not held keys, so
// each press turns the camera by one step.
func keyInput(key tcell.Key, r rune) control.Input {
	var in control.Input
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyUp:
		in.Pitch = 1
	case tcell.KeyDown:
		in.Pitch = -1
	case tcell.KeyLeft:
		in.Yaw = -1
	case tcell.KeyRight:
		in.Yaw = 1
	case tcell.KeyRune:
		switch r {
		case 'q':
			in.Quit = true
		case ' ':
			in.Pause = true
		case 'r':
			in.Reset = true
		case 'z':
			in.Roll = -1
		case 'x':
			in.Roll = 1
		}
	}
	return in
}

func merge(a, b control.Input) control.Input {
	a.Pitch = clamp(a.Pitch + b.Pitch)
	a.Yaw = clamp(a.Yaw + b.Yaw)
	a.Roll = clamp(a.Roll + b.Roll)
	a.Pause = a.Pause != b.Pause
	a.Reset = a.Reset || b.Reset
	a.Quit = a.Quit || b.Quit
	return a
}

func clamp(v int) int {
	return max(-1, min(1, v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
