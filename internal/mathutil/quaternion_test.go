package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func nearQuat(a, b Quat, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps && math.Abs(a.W-b.W) <= eps
}

func TestQuatLenNormalize(t *testing.T) {
	q := Quat{1, 2, 2, 4}
	if got := q.Len(); got != 5 {
		t.Fatalf("len = %v, want 5", got)
	}
	n := q.Normalize()
	if want := (Quat{0.2, 0.4, 0.4, 0.8}); !nearQuat(n, want, 1e-15) {
		t.Fatalf("normalize = %+v, want %+v", n, want)
	}
	if l := n.Len(); math.Abs(l-1) > 1e-15 {
		t.Fatalf("normalized len = %v", l)
	}

	z := Quat{}.Normalize()
	if !math.IsNaN(z.W) {
		t.Fatalf("normalize of zero quaternion = %+v, want NaN", z)
	}
}

func TestQuatMulBasis(t *testing.T) {
	i := Quat{X: 1}
	j := Quat{Y: 1}
	k := Quat{Z: 1}
	minus1 := Quat{W: -1}

	tests := []struct {
		name string
		got  Quat
		want Quat
	}{
		{"ij=k", i.Mul(j), k},
		{"jk=i", j.Mul(k), i},
		{"ki=j", k.Mul(i), j},
		{"ji=-k", j.Mul(i), Quat{Z: -1}},
		{"ii=-1", i.Mul(i), minus1},
		{"jj=-1", j.Mul(j), minus1},
		{"kk=-1", k.Mul(k), minus1},
		{"identity", QuatIdentity().Mul(Quat{1, 2, 3, 4}), Quat{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !nearQuat(tt.got, tt.want, 0) {
				t.Fatalf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestQuatMulMatchesOracle(t *testing.T) {
	a := Quat{0.1, -0.7, 0.3, 0.6}
	b := Quat{-0.4, 0.2, 0.9, -0.1}

	ref := mgl64.Quat{W: a.W, V: mgl64.Vec3{a.X, a.Y, a.Z}}.Mul(mgl64.Quat{W: b.W, V: mgl64.Vec3{b.X, b.Y, b.Z}})
	got := a.Mul(b)
	if want := (Quat{ref.V[0], ref.V[1], ref.V[2], ref.W}); !nearQuat(got, want, 1e-12) {
		t.Fatalf("mul = %+v, oracle %+v", got, want)
	}

	if l := a.Mul(a.Conjugate()); !nearQuat(l, Quat{W: a.Len() * a.Len()}, 1e-12) {
		t.Fatalf("q·q* = %+v", l)
	}
}

func TestQuatMat3(t *testing.T) {
	v := V3(0.5, 1, -2)
	for _, a := range []float64{0.2, -1.3, 2.9} {
		q := QuatFromAxisAngle(V3(1, 0, 0), a)
		// the quaternion rotates counter-clockwise, RotX clockwise
		if got, want := q.Mat3().MulVec3(v), RotX(-a).MulVec3(v); !near(got, want, 1e-12) {
			t.Errorf("axis X angle %v: %v vs %v", a, got, want)
		}

		q = QuatFromAxisAngle(V3(0, 0, 3), a)
		if got, want := q.Mat3().MulVec3(v), RotZ(-a).MulVec3(v); !near(got, want, 1e-12) {
			t.Errorf("axis Z angle %v: %v vs %v", a, got, want)
		}
	}
}
