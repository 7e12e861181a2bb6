package scene

import "wireframe-renderer/internal/mathutil"

// Mesh is an ordered set of triangles sharing one position and rotation.
// Rotation holds Euler angles in radians and is the per-frame animation hook.
type Mesh struct {
	Position  mathutil.Vec3
	Rotation  mathutil.Vec3
	Triangles []Triangle
}

// NewMesh creates a mesh with zero rotation.
func NewMesh(position mathutil.Vec3, triangles []Triangle) *Mesh {
	return &Mesh{
		Position:  position,
		Triangles: triangles,
	}
}

// Draw draws every triangle in order and returns the number of edges drawn.
func (m *Mesh) Draw(dst Surface, vp Viewport, cam *Camera) int {
	drawn := 0
	for _, t := range m.Triangles {
		drawn += t.Draw(dst, vp, m.Position, m.Rotation, cam)
	}
	return drawn
}

// Vertices returns the distinct vertex values in first-seen order.
func (m *Mesh) Vertices() []mathutil.Vec3 {
	seen := make(map[mathutil.Vec3]bool)
	var out []mathutil.Vec3
	for _, t := range m.Triangles {
		for _, v := range [3]mathutil.Vec3{t.V1, t.V2, t.V3} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Advance adds delta to the mesh rotation. It is the single per-frame tick;
// scheduling and timing belong to the caller.
func Advance(m *Mesh, delta mathutil.Vec3) {
	m.Rotation.AddAssign(delta)
}

// Scene pairs a camera with the meshes it looks at.
type Scene struct {
	Camera *Camera
	Meshes []*Mesh
}

// Draw draws all meshes in order and returns the number of edges drawn.
func (s Scene) Draw(dst Surface, vp Viewport) int {
	drawn := 0
	for _, m := range s.Meshes {
		drawn += m.Draw(dst, vp, s.Camera)
	}
	return drawn
}

// EdgeCount is the number of edges Draw emits when nothing is rejected.
func (s Scene) EdgeCount() int {
	n := 0
	for _, m := range s.Meshes {
		n += 3 * len(m.Triangles)
	}
	return n
}
