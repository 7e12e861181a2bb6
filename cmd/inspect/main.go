package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"wireframe-renderer/internal/anim"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/mathutil"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frame := flag.Int("frame", 0, "Frame to inspect")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *frame < 0 {
		fmt.Printf("Error: frame must be >= 0\n")
		os.Exit(1)
	}

	sc, tl := cfg.BuildScene()
	sc = anim.Snapshots(sc, tl, *frame+1)[*frame]
	vp := cfg.Viewport()
	cam := sc.Camera

	fmt.Printf("Frame %d, Viewport: %dx%d\n", *frame, vp.Width, vp.Height)
	fmt.Printf("Camera: pos=%v fov=%.1f° rot=%v\n", cam.Position, mathutil.Rad2Deg(cam.FOV()), cam.Rotation())
	fmt.Printf("  Surface offset: %v\n", cam.SurfaceOffset())

	for i, m := range sc.Meshes {
		minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
		maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
		for _, v := range m.Vertices() {
			p := mathutil.Rotate(v.Add(m.Position), m.Position, m.Rotation)
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
		}
		fmt.Printf("  Mesh[%d]: tris=%d, pos=%v, rot=%v\n", i, len(m.Triangles), m.Position, m.Rotation)
		fmt.Printf("    BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", minX, maxX, minY, maxY, minZ, maxZ)

		offscreen, rejected := 0, 0
		for j, tri := range m.Triangles {
			proj := tri.Project(m.Position, m.Rotation, cam)
			pts, ok := tri.Pixels(vp, m.Position, m.Rotation, cam)
			fmt.Printf("    Tri[%2d]:", j)
			for k := range proj {
				if !ok[k] {
					rejected++
					fmt.Printf("  %v -> none", proj[k])
					continue
				}
				if !pts[k].In(vp.Bounds()) {
					offscreen++
				}
				fmt.Printf("  %v -> (%d,%d)", proj[k], pts[k].X, pts[k].Y)
			}
			fmt.Println()
		}
		if rejected > 0 || offscreen > 0 {
			fmt.Printf("    Vertices without pixel: %d, outside viewport: %d\n", rejected, offscreen)
		}
	}
}
