package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/collide/event"
	"github.com/lixenwraith/collide/physics"
	"github.com/lixenwraith/collide/vmath"
)

// ContactEvent is one detected contact between two bodies, as produced
// by a narrow phase. Bodies[0] is body A, Bodies[1] body B; the contact
// normal points A -> B
type ContactEvent[S vmath.Float, V any] struct {
	Bodies  [2]Entity
	Contact physics.Contact[S, V]
}

// System is a simulation step participant. Lower priority runs first
type System[S vmath.Float, V physics.Linear[V, A, S], A physics.Angular[A, V, S], R any, I physics.InverseInertia[I, A, R]] interface {
	Update(w *World[S, V, A, R, I], dt time.Duration)
	Priority() int
}

// World holds per-body physical state in typed stores and the contact
// queue feeding resolution. Pose and velocity are stored double-buffered
// as next-frame values; resolution reads and rewrites the next-frame
// state, integration elsewhere promotes it
type World[S vmath.Float, V physics.Linear[V, A, S], A physics.Angular[A, V, S], R any, I physics.InverseInertia[I, A, R]] struct {
	mu         sync.Mutex
	nextEntity Entity

	Poses      *Store[physics.NextFrame[physics.BodyPose[V, R]]]
	Velocities *Store[physics.NextFrame[physics.Velocity[V, A]]]
	Masses     *Store[physics.Mass[S, I]]
	Materials  *Store[physics.Material[S]]

	Contacts *event.Queue[ContactEvent[S, V]]

	systems []System[S, V, A, R, I]
}

// NewWorld creates an empty world
func NewWorld[S vmath.Float, V physics.Linear[V, A, S], A physics.Angular[A, V, S], R any, I physics.InverseInertia[I, A, R]]() *World[S, V, A, R, I] {
	return &World[S, V, A, R, I]{
		nextEntity: 1,
		Poses:      NewStore[physics.NextFrame[physics.BodyPose[V, R]]](),
		Velocities: NewStore[physics.NextFrame[physics.Velocity[V, A]]](),
		Masses:     NewStore[physics.Mass[S, I]](),
		Materials:  NewStore[physics.Material[S]](),
		Contacts:   event.NewQueue[ContactEvent[S, V]](),
	}
}

// CreateEntity reserves a new body id
func (w *World[S, V, A, R, I]) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntity
	w.nextEntity++
	return id
}

// DestroyEntity removes all components of a body
func (w *World[S, V, A, R, I]) DestroyEntity(e Entity) {
	w.Poses.Remove(e)
	w.Velocities.Remove(e)
	w.Masses.Remove(e)
	w.Materials.Remove(e)
}

// AddSystem registers a system, kept ordered by priority
func (w *World[S, V, A, R, I]) AddSystem(s System[S, V, A, R, I]) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Step runs all systems in priority order
func (w *World[S, V, A, R, I]) Step(dt time.Duration) {
	w.mu.Lock()
	systems := make([]System[S, V, A, R, I], len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, s := range systems {
		s.Update(w, dt)
	}
}

// Dimension-bound aliases for the common instantiations

type (
	World2[S vmath.Float]        = World[S, vmath.Vec2[S], vmath.Ang2[S], vmath.Rot2[S], physics.Inertia2[S]]
	World3[S vmath.Float]        = World[S, vmath.Vec3[S], vmath.Vec3[S], vmath.Quat[S], physics.Inertia3[S]]
	ContactEvent2[S vmath.Float] = ContactEvent[S, vmath.Vec2[S]]
	ContactEvent3[S vmath.Float] = ContactEvent[S, vmath.Vec3[S]]
)

// NewWorld2 creates a 2D world
func NewWorld2[S vmath.Float]() *World2[S] {
	return NewWorld[S, vmath.Vec2[S], vmath.Ang2[S], vmath.Rot2[S], physics.Inertia2[S]]()
}

// NewWorld3 creates a 3D world
func NewWorld3[S vmath.Float]() *World3[S] {
	return NewWorld[S, vmath.Vec3[S], vmath.Vec3[S], vmath.Quat[S], physics.Inertia3[S]]()
}
