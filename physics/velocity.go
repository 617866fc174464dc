package physics

// Velocity is a body's linear and angular velocity. A is scalar-like in
// 2D (vmath.Ang2) and a vector in 3D (vmath.Vec3)
type Velocity[V, A any] struct {
	linear  V
	angular A
}

// NewVelocity creates a velocity from linear and angular parts
func NewVelocity[V, A any](linear V, angular A) Velocity[V, A] {
	return Velocity[V, A]{linear: linear, angular: angular}
}

// Linear returns the linear velocity
func (v Velocity[V, A]) Linear() V {
	return v.linear
}

// Angular returns the angular velocity
func (v Velocity[V, A]) Angular() A {
	return v.angular
}
