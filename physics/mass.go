package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// Mass holds a body's scalar mass and its body-local inertia, plus the
// derived inverse quantities the resolver consumes. Zero or infinite mass
// models an immovable body: its inverse mass is zero
type Mass[S vmath.Float, I any] struct {
	mass           S
	inverseMass    S
	inertia        I
	inverseInertia I
}

// NewMass creates a Mass from mass and body-local inertia. The inverse
// inertia is precomputed once here; it does not change unless the mass
// does
func NewMass[S vmath.Float, I Invertible[I]](mass S, inertia I) Mass[S, I] {
	var inverse S
	if mass != 0 && !vmath.IsInf(mass) {
		inverse = 1 / mass
	}
	return Mass[S, I]{
		mass:           mass,
		inverseMass:    inverse,
		inertia:        inertia,
		inverseInertia: inertia.Invert(),
	}
}

// Mass returns the scalar mass
func (m Mass[S, I]) Mass() S {
	return m.mass
}

// InverseMass returns 1/mass, or zero for an immovable body
func (m Mass[S, I]) InverseMass() S {
	return m.inverseMass
}

// Inertia returns the body-local inertia
func (m Mass[S, I]) Inertia() I {
	return m.inertia
}

// InverseInertia returns the body-local inverse inertia
func (m Mass[S, I]) InverseInertia() I {
	return m.inverseInertia
}
