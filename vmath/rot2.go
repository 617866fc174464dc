package vmath

// Rot2 is a 2D rotation stored as cos/sin of the rotation angle.
// Equivalent to a 2x2 rotation matrix without the redundant entries
type Rot2[S Float] struct {
	Cos, Sin S
}

// Rot2Identity returns the zero rotation
func Rot2Identity[S Float]() Rot2[S] {
	return Rot2[S]{Cos: 1, Sin: 0}
}

// Rot2FromAngle builds a rotation of angle radians, counter-clockwise
func Rot2FromAngle[S Float](angle S) Rot2[S] {
	return Rot2[S]{Cos: Cos(angle), Sin: Sin(angle)}
}

// Rotate applies the rotation to v
func (r Rot2[S]) Rotate(v Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: r.Cos*v.X - r.Sin*v.Y,
		Y: r.Sin*v.X + r.Cos*v.Y,
	}
}

// Mul composes two rotations (angle addition)
func (r Rot2[S]) Mul(o Rot2[S]) Rot2[S] {
	return Rot2[S]{
		Cos: r.Cos*o.Cos - r.Sin*o.Sin,
		Sin: r.Sin*o.Cos + r.Cos*o.Sin,
	}
}

// Inverse returns the opposite rotation
func (r Rot2[S]) Inverse() Rot2[S] {
	return Rot2[S]{Cos: r.Cos, Sin: -r.Sin}
}
