package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// 3D specialization: vector angular velocity and tensor inertia

// Inertia3 is the 3x3 inertia tensor of a 3D body in body space. A zero
// tensor models a body whose rotation is not simulated
type Inertia3[S vmath.Float] struct {
	Tensor vmath.Mat3[S]
}

// NewInertia3 creates a 3D inertia from a tensor
func NewInertia3[S vmath.Float](tensor vmath.Mat3[S]) Inertia3[S] {
	return Inertia3[S]{Tensor: tensor}
}

// SphereInertia3 is the tensor of a solid sphere: diag(2 m r^2 / 5)
func SphereInertia3[S vmath.Float](mass, radius S) Inertia3[S] {
	moment := 2 * mass * radius * radius / 5
	return Inertia3[S]{Tensor: vmath.Mat3Diagonal(moment, moment, moment)}
}

// CuboidInertia3 is the tensor of a solid cuboid with full side lengths
// x, y, z: diag(m(y^2+z^2), m(x^2+z^2), m(x^2+y^2)) / 12
func CuboidInertia3[S vmath.Float](mass, x, y, z S) Inertia3[S] {
	k := mass / 12
	return Inertia3[S]{Tensor: vmath.Mat3Diagonal(
		k*(y*y+z*z),
		k*(x*x+z*z),
		k*(x*x+y*y),
	)}
}

// Invert returns the inverse tensor; singular tensors invert to zero
// (rotationally immovable)
func (i Inertia3[S]) Invert() Inertia3[S] {
	return Inertia3[S]{Tensor: i.Tensor.Invert()}
}

// WorldInverse transforms the tensor into world space: R I R^T
func (i Inertia3[S]) WorldInverse(rotation vmath.Quat[S]) Inertia3[S] {
	r := rotation.Mat3()
	return Inertia3[S]{Tensor: r.Mul(i.Tensor).Mul(r.Transpose())}
}

// Apply multiplies the tensor with an angular quantity
func (i Inertia3[S]) Apply(a vmath.Vec3[S]) vmath.Vec3[S] {
	return i.Tensor.MulVec(a)
}

// Aliases binding the generic core to 3D quantities. Vec3 serves as both
// the linear and the angular type; its Cross is the full cross product

type (
	Pose3[S vmath.Float]        = BodyPose[vmath.Vec3[S], vmath.Quat[S]]
	Velocity3[S vmath.Float]    = Velocity[vmath.Vec3[S], vmath.Vec3[S]]
	Mass3[S vmath.Float]        = Mass[S, Inertia3[S]]
	Contact3[S vmath.Float]     = Contact[S, vmath.Vec3[S]]
	ResolveData3[S vmath.Float] = ResolveData[S, vmath.Vec3[S], vmath.Vec3[S], vmath.Quat[S], Inertia3[S]]
	ChangeSet3[S vmath.Float]   = ChangeSet[vmath.Vec3[S], vmath.Vec3[S], vmath.Quat[S]]
)
