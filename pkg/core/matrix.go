package core

import "fmt"

// Matrix3x3 represents a 3x3 matrix stored in row-major order
type Matrix3x3 struct {
	M [3][3]float64
}

// NewMatrix3x3FromColumns creates a matrix whose columns are the given vectors
func NewMatrix3x3FromColumns(c0, c1, c2 Vec3) Matrix3x3 {
	return Matrix3x3{M: [3][3]float64{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}}
}

// Determinant returns the determinant of the matrix
func (m Matrix3x3) Determinant() float64 {
	a := m.M
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Transpose returns the transposed matrix
func (m Matrix3x3) Transpose() Matrix3x3 {
	a := m.M
	return Matrix3x3{M: [3][3]float64{
		{a[0][0], a[1][0], a[2][0]},
		{a[0][1], a[1][1], a[2][1]},
		{a[0][2], a[1][2], a[2][2]},
	}}
}

// Inverse returns the inverse of the matrix via the adjugate.
// Returns an error if the matrix is singular.
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3x3{}, fmt.Errorf("matrix is singular")
	}

	a := m.M
	invDet := 1.0 / det

	return Matrix3x3{M: [3][3]float64{
		{
			(a[1][1]*a[2][2] - a[1][2]*a[2][1]) * invDet,
			(a[0][2]*a[2][1] - a[0][1]*a[2][2]) * invDet,
			(a[0][1]*a[1][2] - a[0][2]*a[1][1]) * invDet,
		},
		{
			(a[1][2]*a[2][0] - a[1][0]*a[2][2]) * invDet,
			(a[0][0]*a[2][2] - a[0][2]*a[2][0]) * invDet,
			(a[0][2]*a[1][0] - a[0][0]*a[1][2]) * invDet,
		},
		{
			(a[1][0]*a[2][1] - a[1][1]*a[2][0]) * invDet,
			(a[0][1]*a[2][0] - a[0][0]*a[2][1]) * invDet,
			(a[0][0]*a[1][1] - a[0][1]*a[1][0]) * invDet,
		},
	}}, nil
}

// MulVec returns the matrix-vector product m*v
func (m Matrix3x3) MulVec(v Vec3) Vec3 {
	a := m.M
	return Vec3{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}
