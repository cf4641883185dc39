package core

import (
	"math"
	"testing"
)

func TestMatrix3x3_InverseRoundTrip(t *testing.T) {
	m := NewMatrix3x3FromColumns(
		NewVec3(0.25, 0, 0),
		NewVec3(0, 0.5, 0),
		NewVec3(0.1, 0, 0.25),
	)

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	// m * inv should be the identity
	identity := NewMatrix3x3FromColumns(NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1))
	for _, v := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 2, 3)} {
		got := m.MulVec(inv.MulVec(v))
		want := identity.MulVec(v)
		if !vecsAlmostEqual(got, want, 1e-12) {
			t.Errorf("m*inv*%v: expected %v, got %v", v, want, got)
		}
	}
}

func TestMatrix3x3_InverseSingular(t *testing.T) {
	// Two identical columns make the matrix singular
	m := NewMatrix3x3FromColumns(
		NewVec3(1, 2, 3),
		NewVec3(1, 2, 3),
		NewVec3(0, 0, 1),
	)

	if _, err := m.Inverse(); err == nil {
		t.Error("Expected error for singular matrix, got nil")
	}
}

func TestMatrix3x3_Transpose(t *testing.T) {
	m := NewMatrix3x3FromColumns(
		NewVec3(1, 2, 3),
		NewVec3(4, 5, 6),
		NewVec3(7, 8, 9),
	)

	mt := m.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m.M[i][j] != mt.M[j][i] {
				t.Errorf("Transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestMatrix3x3_Determinant(t *testing.T) {
	m := NewMatrix3x3FromColumns(
		NewVec3(2, 0, 0),
		NewVec3(0, 3, 0),
		NewVec3(0, 0, 4),
	)

	if got := m.Determinant(); math.Abs(got-24) > 1e-12 {
		t.Errorf("Expected determinant 24, got %f", got)
	}
}
