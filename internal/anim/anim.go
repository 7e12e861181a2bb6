// Package anim drives per-frame mesh rotation.
//
// The package only knows about ticks. How often Tick is called (a 60 Hz
// window loop, a terminal ticker, or an offline frame counter) is up to the
// caller.
package anim

import (
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/scene"
)

// Spinner rotates one mesh by a fixed Euler delta per tick.
type Spinner struct {
	Target *scene.Mesh
	Rate   mathutil.Vec3 // radians per tick
}

func (s Spinner) Tick() {
	scene.Advance(s.Target, s.Rate)
}

// Timeline is the set of spinners advanced together.
type Timeline []Spinner

func (tl Timeline) Tick() {
	for _, s := range tl {
		s.Tick()
	}
}

// Snapshots returns n independent copies of sc: frame 0 is the state as
// given, frame i the state after i ticks. Meshes in sc that tl spins are
// advanced on private copies; the originals are left untouched. Triangle
// slices are shared since nothing mutates them.
func Snapshots(sc scene.Scene, tl Timeline, n int) []scene.Scene {
	if n <= 0 {
		return nil
	}

	work := make([]*scene.Mesh, len(sc.Meshes))
	remap := make(map[*scene.Mesh]*scene.Mesh, len(sc.Meshes))
	for i, m := range sc.Meshes {
		cp := *m
		work[i] = &cp
		remap[m] = &cp
	}
	local := make(Timeline, 0, len(tl))
	for _, s := range tl {
		if m, ok := remap[s.Target]; ok {
			local = append(local, Spinner{Target: m, Rate: s.Rate})
		}
	}

	frames := make([]scene.Scene, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			local.Tick()
		}
		meshes := make([]*scene.Mesh, len(work))
		for j, m := range work {
			cp := *m
			meshes[j] = &cp
		}
		frames[i] = scene.Scene{Camera: sc.Camera, Meshes: meshes}
	}
	return frames
}
