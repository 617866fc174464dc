package vmath

// Quat is a unit quaternion rotation, W + Xi + Yj + Zk
type Quat[S Float] struct {
	W, X, Y, Z S
}

// QuatIdentity returns the zero rotation
func QuatIdentity[S Float]() Quat[S] {
	return Quat[S]{W: 1}
}

// QuatFromAxisAngle builds a rotation of angle radians about axis.
// Axis need not be unit length
func QuatFromAxisAngle[S Float](axis Vec3[S], angle S) Quat[S] {
	axis = axis.Normalize()
	half := angle / 2
	s := Sin(half)
	return Quat[S]{
		W: Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul composes rotations: q.Mul(o) applies o first, then q
func (q Quat[S]) Mul(o Quat[S]) Quat[S] {
	return Quat[S]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conjugate returns the inverse rotation for unit quaternions
func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Normalize rescales to unit length, identity-safe
func (q Quat[S]) Normalize() Quat[S] {
	l := Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if l == 0 {
		return QuatIdentity[S]()
	}
	inv := 1 / l
	return Quat[S]{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// Rotate applies the rotation to v: q v q*
func (q Quat[S]) Rotate(v Vec3[S]) Vec3[S] {
	// t = 2 * (q.xyz x v); v' = v + w*t + q.xyz x t
	u := Vec3[S]{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Mat3 returns the equivalent rotation matrix
func (q Quat[S]) Mat3() Mat3[S] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return Mat3[S]{M: [3][3]S{
		{1 - (yy + zz), xy - wz, xz + wy},
		{xy + wz, 1 - (xx + zz), yz - wx},
		{xz - wy, yz + wx, 1 - (xx + yy)},
	}}
}
