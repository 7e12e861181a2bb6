// Package window shows the scene live in a desktop window.
package window

import (
	"image"
	"image/color"

	"wireframe-renderer/internal/control"
	"wireframe-renderer/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Options configures the window.
type Options struct {
	Title    string
	Viewport scene.Viewport
	TPS      int
	BG, FG   color.RGBA
	Smooth   bool // anti-aliased strokes
}

// Run opens a window and blocks until it is closed or Escape is pressed.
// Each tick samples the keyboard, steps the loop and redraws the scene.
func Run(loop *control.Loop, opts Options) error {
	g := &game{loop: loop, opts: opts}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Viewport.Width, opts.Viewport.Height)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	loop *control.Loop
	opts Options
}

func (g *game) Update() error {
	if !g.loop.Step(readInput()) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.BG)
	g.loop.Scene.Draw(surface{dst: screen, col: g.opts.FG, aa: g.opts.Smooth}, g.opts.Viewport)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Viewport.Width, g.opts.Viewport.Height
}

// surface strokes projected edges onto an ebiten image.
type surface struct {
	dst *ebiten.Image
	col color.RGBA
	aa  bool
}

func (s surface) DrawLine(p1, p2 image.Point) {
	// +0.5 centers the 1px stroke on the pixel grid
	vector.StrokeLine(s.dst,
		float32(p1.X)+0.5, float32(p1.Y)+0.5,
		float32(p2.X)+0.5, float32(p2.Y)+0.5,
		1, s.col, s.aa)
}

func readInput() control.Input {
	var in control.Input
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Pitch = axis(ebiten.KeyDown, ebiten.KeyUp)
	in.Yaw = axis(ebiten.KeyLeft, ebiten.KeyRight)
	in.Roll = axis(ebiten.KeyQ, ebiten.KeyE)
	return in
}

func axis(neg, pos ebiten.Key) int {
	v := 0
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	return v
}
