package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// mathgl serves as the numeric oracle for rotation math

func TestQuatRotateAgainstOracle(t *testing.T) {
	axes := []Vec3[float64]{
		{0, 0, 1},
		{1, 0, 0},
		{1, 2, 3},
		{-0.5, 0.25, 1},
	}
	angles := []float64{0, 0.1, 1.0472, 3.1415, -2.5}
	v := Vec3[float64]{0.3, -1.2, 2.5}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuatFromAxisAngle(axis, angle)
			got := q.Rotate(v)

			ref := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z}.Normalize())
			want := ref.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})

			if !almostEq(got.X, want.X(), 1e-9) ||
				!almostEq(got.Y, want.Y(), 1e-9) ||
				!almostEq(got.Z, want.Z(), 1e-9) {
				t.Errorf("axis %v angle %v: Rotate = %v, oracle %v", axis, angle, got, want)
			}
		}
	}
}

func TestQuatMat3AgainstOracle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3[float64]{1, -1, 0.5}, 0.7)
	m := q.Mat3()

	ref := mgl64.QuatRotate(0.7, mgl64.Vec3{1, -1, 0.5}.Normalize()).Mat4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !almostEq(m.M[r][c], ref.At(r, c), 1e-9) {
				t.Errorf("Mat3[%d][%d] = %v, oracle %v", r, c, m.M[r][c], ref.At(r, c))
			}
		}
	}
}

func TestQuatMulCompose(t *testing.T) {
	// Two quarter turns about z equal a half turn
	quarter := QuatFromAxisAngle(Vec3[float64]{0, 0, 1}, 1.5707963267948966)
	half := quarter.Mul(quarter)
	got := half.Rotate(Vec3[float64]{1, 0, 0})
	if !almostEq(got.X, -1, 1e-9) || !almostEq(got.Y, 0, 1e-9) || !almostEq(got.Z, 0, 1e-9) {
		t.Errorf("half turn of +x = %v, want {-1 0 0}", got)
	}
}

func TestMat3InvertAgainstOracle(t *testing.T) {
	m := Mat3[float64]{M: [3][3]float64{
		{2, 0.5, -1},
		{0, 1.5, 0.25},
		{1, 0, 3},
	}}
	inv := m.Invert()

	var ref mgl64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			ref.Set(r, c, m.M[r][c])
		}
	}
	want := ref.Inv()

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !almostEq(inv.M[r][c], want.At(r, c), 1e-9) {
				t.Errorf("Inv[%d][%d] = %v, oracle %v", r, c, inv.M[r][c], want.At(r, c))
			}
		}
	}

	// Singular matrices invert to zero rather than Inf/NaN
	if got := (Mat3[float64]{}).Invert(); got != (Mat3[float64]{}) {
		t.Errorf("singular Invert = %v, want zero matrix", got)
	}
}

func TestMat3MulVec(t *testing.T) {
	m := Mat3Diagonal[float64](2, 3, 4)
	got := m.MulVec(Vec3[float64]{1, 1, 1})
	if got != (Vec3[float64]{2, 3, 4}) {
		t.Errorf("MulVec = %v, want {2 3 4}", got)
	}
	if Mat3Identity[float64]().Mul(m) != m {
		t.Error("identity composition changed matrix")
	}
}
