package vmath

// Mat3 is a row-major 3x3 matrix over scalar type S.
// M[r][c] addressing; used for inertia tensors and rotation matrices
type Mat3[S Float] struct {
	M [3][3]S
}

// Mat3Identity returns the identity matrix
func Mat3Identity[S Float]() Mat3[S] {
	return Mat3[S]{M: [3][3]S{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Mat3Diagonal returns a diagonal matrix with entries x, y, z
func Mat3Diagonal[S Float](x, y, z S) Mat3[S] {
	return Mat3[S]{M: [3][3]S{{x, 0, 0}, {0, y, 0}, {0, 0, z}}}
}

// MulVec applies the matrix to v
func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * o
func (m Mat3[S]) Mul(o Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*o.M[0][j] + m.M[i][1]*o.M[1][j] + m.M[i][2]*o.M[2][j]
		}
	}
	return r
}

func (m Mat3[S]) Transpose() Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// Det returns the determinant
func (m Mat3[S]) Det() S {
	a := m.M
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Invert returns the matrix inverse via the adjugate.
// A singular matrix inverts to the zero matrix; for inertia tensors that
// reads as a rotationally immovable body
func (m Mat3[S]) Invert() Mat3[S] {
	det := m.Det()
	if det == 0 {
		return Mat3[S]{}
	}
	inv := 1 / det
	a := m.M
	var r Mat3[S]
	r.M[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) * inv
	r.M[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) * inv
	r.M[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) * inv
	r.M[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) * inv
	r.M[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) * inv
	r.M[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) * inv
	r.M[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) * inv
	r.M[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) * inv
	r.M[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) * inv
	return r
}
