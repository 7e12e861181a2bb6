package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func sampleMat() Mat3 {
	return Mat3FromCols(V3(0, 5, 8), V3(3, 2, 10), V3(5, 1, 6))
}

func TestMat3Determinant(t *testing.T) {
	if got := sampleMat().Det(); got != 104 {
		t.Fatalf("det = %v, want 104", got)
	}

	ref := mgl64.Mat3FromCols(mgl64.Vec3{0, 5, 8}, mgl64.Vec3{3, 2, 10}, mgl64.Vec3{5, 1, 6})
	if ref.Det() != 104 {
		t.Fatalf("oracle det = %v", ref.Det())
	}
}

func TestMat3Transform(t *testing.T) {
	got := sampleMat().MulVec3(V3(4, 3, 12))
	if want := V3(69, 38, 134); got != want {
		t.Fatalf("transform = %v, want %v", got, want)
	}
}

func TestNewMat3RowMajorInput(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	if m.Col1 != V3(1, 4, 7) || m.Col2 != V3(2, 5, 8) || m.Col3 != V3(3, 6, 9) {
		t.Fatalf("columns = %#v %#v %#v", m.Col1, m.Col2, m.Col3)
	}
	// first row dotted with (1,0,0) picks a, second row picks d
	if got := m.MulVec3(V3(1, 0, 0)); got != V3(1, 4, 7) {
		t.Fatalf("M·e1 = %v", got)
	}
	if m.Transpose().Transpose() != m {
		t.Fatalf("double transpose changed matrix")
	}
}

func TestMat3Mul(t *testing.T) {
	a := sampleMat()
	if Mat3Mul(a, Mat3Identity()) != a || Mat3Mul(Mat3Identity(), a) != a {
		t.Fatalf("identity is not neutral")
	}

	v := V3(1, -2, 0.5)
	b := RotY(0.7)
	got := Mat3Mul(a, b).MulVec3(v)
	want := a.MulVec3(b.MulVec3(v))
	if !near(got, want, 1e-12) {
		t.Fatalf("(a·b)v = %v, a(b(v)) = %v", got, want)
	}
}

func near(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
