package physics

import (
	"github.com/lixenwraith/collide/vmath"
)

// Contact is the narrow-phase output for one resolvable pair.
//
// Preconditions the resolver relies on but does not validate:
//   - Normal is unit length and points from body A towards body B.
//     A reversed normal silently inverts the physical outcome.
//   - PenetrationDepth is non-negative.
type Contact[S vmath.Float, V any] struct {
	// Normal is the unit contact normal, directed A -> B
	Normal V
	// PenetrationDepth is the overlap distance along the normal
	PenetrationDepth S
	// ContactPoint is the world-space point of contact
	ContactPoint V
}
