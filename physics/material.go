package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// Material describes the surface properties of a body. Resolution only
// reads restitution; density is carried for mass computation by callers
type Material[S vmath.Float] struct {
	density     S
	restitution S
}

// NewMaterial creates a material with the given density and restitution
func NewMaterial[S vmath.Float](density, restitution S) Material[S] {
	return Material[S]{density: density, restitution: restitution}
}

// DefaultMaterial is fully elastic with unit density
func DefaultMaterial[S vmath.Float]() Material[S] {
	return NewMaterial[S](1, 1)
}

// Preset materials, density in mass per square/cubic length unit

func Rock[S vmath.Float]() Material[S]       { return NewMaterial[S](0.6, 0.1) }
func Wood[S vmath.Float]() Material[S]       { return NewMaterial[S](0.3, 0.2) }
func Metal[S vmath.Float]() Material[S]      { return NewMaterial[S](1.2, 0.05) }
func BouncyBall[S vmath.Float]() Material[S] { return NewMaterial[S](0.3, 0.8) }
func SuperBall[S vmath.Float]() Material[S]  { return NewMaterial[S](0.3, 0.95) }
func Pillow[S vmath.Float]() Material[S]     { return NewMaterial[S](0.1, 0.2) }

// Density returns mass per area (2D) or volume (3D) unit
func (m Material[S]) Density() S {
	return m.density
}

// Restitution returns the coefficient of elasticity, 0 fully inelastic
// to 1 fully elastic. Pairs combine via the minimum of the two
func (m Material[S]) Restitution() S {
	return m.restitution
}
