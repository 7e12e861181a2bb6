package control

import (
	"math"
	"testing"

	"wireframe-renderer/internal/anim"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/scene"
)

func newLoop() (*Loop, *scene.Mesh) {
	cube := scene.NewMesh(mathutil.V3(0, 0, 2.5), scene.GenCube(1))
	sc := scene.Scene{
		Camera: scene.NewCamera(mathutil.Vec3{}, mathutil.ReferenceFOV, mathutil.V3(0, 0, math.Pi)),
		Meshes: []*scene.Mesh{cube},
	}
	tl := anim.Timeline{{Target: cube, Rate: mathutil.V3(0.1, 0, 0)}}
	return NewLoop(sc, tl, 0.05), cube
}

func TestLoopAdvancesAndPauses(t *testing.T) {
	l, cube := newLoop()
	l.Step(Input{})
	l.Step(Input{})
	if math.Abs(cube.Rotation.X-0.2) > 1e-12 || l.Frame() != 2 {
		t.Fatalf("rotation = %v frame = %d", cube.Rotation, l.Frame())
	}

	l.Step(Input{Pause: true})
	l.Step(Input{})
	if !l.Paused() || l.Frame() != 2 {
		t.Fatalf("paused loop advanced: frame %d", l.Frame())
	}

	l.Step(Input{Pause: true})
	if l.Paused() || l.Frame() != 3 {
		t.Fatalf("resume failed: frame %d", l.Frame())
	}

	if l.Step(Input{Quit: true}) {
		t.Fatalf("quit not reported")
	}
}

func TestLoopAimsCamera(t *testing.T) {
	l, _ := newLoop()
	cam := l.Scene.Camera
	p := mathutil.V3(0.5, 0.2, 4)
	before := cam.Transform(p)

	l.Step(Input{Yaw: 1})
	l.Step(Input{Yaw: 1, Pitch: -1})
	r := cam.Rotation()
	if math.Abs(r.Y-0.1) > 1e-12 || math.Abs(r.X+0.05) > 1e-12 {
		t.Fatalf("rotation = %v", r)
	}
	if cam.Transform(p) == before {
		t.Fatalf("camera re-aim did not change the projection")
	}

	l.Step(Input{Reset: true})
	if cam.Rotation() != mathutil.V3(0, 0, math.Pi) {
		t.Fatalf("reset rotation = %v", cam.Rotation())
	}
	if cam.Transform(p) != before {
		t.Fatalf("reset did not restore the projection")
	}
}
