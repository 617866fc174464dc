package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// 2D specialization: scalar angular velocity and scalar moment of inertia

// Inertia2 is the scalar moment of inertia of a 2D body. A zero moment
// models a body whose rotation is not simulated (inverse moment zero)
type Inertia2[S vmath.Float] struct {
	Moment S
}

// NewInertia2 creates a 2D inertia from a scalar moment
func NewInertia2[S vmath.Float](moment S) Inertia2[S] {
	return Inertia2[S]{Moment: moment}
}

// CircleInertia2 is the moment of a solid disc: m r^2 / 2
func CircleInertia2[S vmath.Float](mass, radius S) Inertia2[S] {
	return Inertia2[S]{Moment: mass * radius * radius / 2}
}

// BoxInertia2 is the moment of a solid rectangle: m (w^2 + h^2) / 12
func BoxInertia2[S vmath.Float](mass, width, height S) Inertia2[S] {
	return Inertia2[S]{Moment: mass * (width*width + height*height) / 12}
}

// Invert returns the inverse moment; zero or infinite moments invert to
// zero (rotationally immovable)
func (i Inertia2[S]) Invert() Inertia2[S] {
	if i.Moment == 0 || vmath.IsInf(i.Moment) {
		return Inertia2[S]{}
	}
	return Inertia2[S]{Moment: 1 / i.Moment}
}

// WorldInverse returns the inertia unchanged; a scalar moment is
// invariant under rotation
func (i Inertia2[S]) WorldInverse(vmath.Rot2[S]) Inertia2[S] {
	return i
}

// Apply multiplies the moment with an angular quantity
func (i Inertia2[S]) Apply(a vmath.Ang2[S]) vmath.Ang2[S] {
	return vmath.Ang2[S]{W: i.Moment * a.W}
}

// Aliases binding the generic core to 2D quantities

type (
	Pose2[S vmath.Float]        = BodyPose[vmath.Vec2[S], vmath.Rot2[S]]
	Velocity2[S vmath.Float]    = Velocity[vmath.Vec2[S], vmath.Ang2[S]]
	Mass2[S vmath.Float]        = Mass[S, Inertia2[S]]
	Contact2[S vmath.Float]     = Contact[S, vmath.Vec2[S]]
	ResolveData2[S vmath.Float] = ResolveData[S, vmath.Vec2[S], vmath.Ang2[S], vmath.Rot2[S], Inertia2[S]]
	ChangeSet2[S vmath.Float]   = ChangeSet[vmath.Vec2[S], vmath.Ang2[S], vmath.Rot2[S]]
)
