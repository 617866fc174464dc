package physics

// BodyPose is a body's world transform: position of the center of mass
// plus orientation. V is the positional type (vmath.Vec2 or vmath.Vec3),
// R the rotational type (vmath.Rot2 or vmath.Quat)
type BodyPose[V, R any] struct {
	position V
	rotation R
}

// NewBodyPose creates a pose at position with orientation rotation
func NewBodyPose[V, R any](position V, rotation R) BodyPose[V, R] {
	return BodyPose[V, R]{position: position, rotation: rotation}
}

// Position returns the world position of the center of mass
func (p BodyPose[V, R]) Position() V {
	return p.position
}

// Rotation returns the world orientation
func (p BodyPose[V, R]) Rotation() R {
	return p.rotation
}

// NextFrame wraps a double-buffered quantity: the value to adopt at the
// start of the following simulation step
type NextFrame[T any] struct {
	Value T
}
