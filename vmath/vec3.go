package vmath

// Vec3 is a 3D vector over scalar type S.
// It serves as both linear and angular quantity in 3D: Cross is the full
// cross product, so the same type satisfies the resolver's linear and
// angular capabilities
type Vec3[S Float] struct {
	X, Y, Z S
}

func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{-v.X, -v.Y, -v.Z}
}

func (v Vec3[S]) Dot(o Vec3[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3[S]) Cross(o Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3[S]) LenSq() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3[S]) Len() S {
	return Sqrt(v.LenSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec3[S]) Normalize() Vec3[S] {
	l := v.Len()
	if l == 0 {
		return Vec3[S]{}
	}
	return v.Scale(1 / l)
}
