// Package control maps key input from the live views onto the scene: camera
// re-aiming and pausing the spin. It is independent of any windowing library.
package control

import (
	"wireframe-renderer/internal/anim"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/scene"
)

// Input is the key state sampled for one tick.
type Input struct {
	Pitch int // -1, 0, +1: rotate camera about X
	Yaw   int // about Y
	Roll  int // about Z
	Pause bool
	Reset bool
	Quit  bool
}

// Loop owns the per-tick state shared by the window and terminal views.
type Loop struct {
	Scene    scene.Scene
	Timeline anim.Timeline
	AimStep  float64 // radians per tick while a key is held

	paused bool
	home   mathutil.Vec3
	frame  int
}

func NewLoop(sc scene.Scene, tl anim.Timeline, aimStep float64) *Loop {
	return &Loop{
		Scene:    sc,
		Timeline: tl,
		AimStep:  aimStep,
		home:     sc.Camera.Rotation(),
	}
}

// Step applies one tick of input and advances the animation unless paused.
// It reports false when the view should close.
func (l *Loop) Step(in Input) bool {
	if in.Quit {
		return false
	}
	if in.Pause {
		l.paused = !l.paused
	}

	cam := l.Scene.Camera
	switch {
	case in.Reset:
		cam.SetRotation(l.home)
	case in.Pitch != 0 || in.Yaw != 0 || in.Roll != 0:
		r := cam.Rotation()
		r.AddAssign(mathutil.V3(float64(in.Pitch), float64(in.Yaw), float64(in.Roll)).Scale(l.AimStep))
		cam.SetRotation(mathutil.V3(mathutil.WrapAngle(r.X), mathutil.WrapAngle(r.Y), mathutil.WrapAngle(r.Z)))
	}

	if !l.paused {
		l.Timeline.Tick()
		l.frame++
	}
	return true
}

func (l *Loop) Paused() bool { return l.paused }

// Frame counts the ticks that advanced the animation.
func (l *Loop) Frame() int { return l.frame }
