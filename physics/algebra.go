// Package physics implements impulse-based contact resolution for rigid
// bodies. One generic algorithm covers 2D and 3D, and single and double
// precision: the resolver is written against small capability constraints
// instead of concrete vector types, with the dimension-specific
// instantiations in dim2.go and dim3.go.
//
// The package computes change sets; it never mutates body state. Callers
// (see the engine package) apply change sets in a separate, sequenced
// pass.
package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// Linear is the capability the resolver needs from a linear quantity
// (position difference, linear velocity, impulse). Cross is the partial
// cross product: in 2D it produces the scalar out-of-plane component, in
// 3D the full cross product vector.
type Linear[V, A any, S vmath.Float] interface {
	Add(V) V
	Sub(V) V
	Scale(S) V
	Dot(V) S
	Cross(V) A
}

// Angular is the capability the resolver needs from an angular quantity
// (angular velocity, angular impulse). Cross computes the linear velocity
// the angular rate induces at a lever arm, uniformly for scalar (2D) and
// vector (3D) angular quantities.
type Angular[A, V any, S vmath.Float] interface {
	Add(A) A
	Sub(A) A
	Cross(V) V
}

// InverseInertia transforms a body-space inverse inertia into world space
// and applies it to angular quantities.
type InverseInertia[I, A, R any] interface {
	// WorldInverse returns the inverse inertia transformed by the body's
	// current world orientation
	WorldInverse(rotation R) I
	// Apply multiplies the inverse inertia with an angular quantity,
	// yielding the resulting angular acceleration-like term
	Apply(A) A
}

// Invertible is required of inertia representations at Mass construction
type Invertible[I any] interface {
	Invert() I
}
