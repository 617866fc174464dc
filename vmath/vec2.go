package vmath

// Vec2 is a 2D vector over scalar type S
type Vec2[S Float] struct {
	X, Y S
}

func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v.X + o.X, v.Y + o.Y}
}

func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v.X - o.X, v.Y - o.Y}
}

func (v Vec2[S]) Scale(s S) Vec2[S] {
	return Vec2[S]{v.X * s, v.Y * s}
}

func (v Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{-v.X, -v.Y}
}

func (v Vec2[S]) Dot(o Vec2[S]) S {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the 2D partial cross product: the z component of the 3D cross
// of the two vectors lifted into the plane
func (v Vec2[S]) Cross(o Vec2[S]) Ang2[S] {
	return Ang2[S]{W: v.X*o.Y - v.Y*o.X}
}

func (v Vec2[S]) LenSq() S {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2[S]) Len() S {
	return Sqrt(v.LenSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec2[S]) Normalize() Vec2[S] {
	l := v.Len()
	if l == 0 {
		return Vec2[S]{}
	}
	return v.Scale(1 / l)
}

// Ang2 is a scalar angular quantity (angular velocity, torque, or the
// out-of-plane cross product component) in 2D
type Ang2[S Float] struct {
	W S
}

func (a Ang2[S]) Add(o Ang2[S]) Ang2[S] {
	return Ang2[S]{W: a.W + o.W}
}

func (a Ang2[S]) Sub(o Ang2[S]) Ang2[S] {
	return Ang2[S]{W: a.W - o.W}
}

// Cross computes w x r, the linear velocity an angular rate w induces at
// lever arm r: (-w*r.Y, w*r.X)
func (a Ang2[S]) Cross(r Vec2[S]) Vec2[S] {
	return Vec2[S]{X: -a.W * r.Y, Y: a.W * r.X}
}
