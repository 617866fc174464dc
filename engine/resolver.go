package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/collide/parameter"
	"github.com/lixenwraith/collide/physics"
	"github.com/lixenwraith/collide/vmath"
)

// ContactResolver drains the world's contact queue each step and runs
// the two-phase pipeline: resolve every contact (pure computation,
// spread across workers), then apply the staged change sets to body
// storage single-threaded. Contacts naming bodies without pose or mass
// are skipped; a missing material falls back to the default
type ContactResolver[S vmath.Float, V physics.Linear[V, A, S], A physics.Angular[A, V, S], R any, I physics.InverseInertia[I, A, R]] struct {
	Config  physics.Config[S]
	Workers int

	pending *PendingChanges[V, A, R]
}

// NewContactResolver creates a resolver with default config and worker
// count
func NewContactResolver[S vmath.Float, V physics.Linear[V, A, S], A physics.Angular[A, V, S], R any, I physics.InverseInertia[I, A, R]]() *ContactResolver[S, V, A, R, I] {
	return &ContactResolver[S, V, A, R, I]{
		Config:  physics.DefaultConfig[S](),
		Workers: parameter.DefaultResolverWorkers,
		pending: NewPendingChanges[V, A, R](),
	}
}

func (cr *ContactResolver[S, V, A, R, I]) Priority() int {
	return 100
}

func (cr *ContactResolver[S, V, A, R, I]) Update(w *World[S, V, A, R, I], _ time.Duration) {
	events := w.Contacts.Consume()
	if len(events) == 0 {
		return
	}

	// Compute phase. Resolution only reads immutable snapshots and
	// stages results, so contacts partition freely across workers
	workers := cr.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(events) {
		workers = len(events)
	}
	chunk := (len(events) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(events); start += chunk {
		end := min(start+chunk, len(events))
		wg.Add(1)
		go func(evs []ContactEvent[S, V]) {
			defer wg.Done()
			for i := range evs {
				cr.resolveOne(w, &evs[i])
			}
		}(events[start:end])
	}
	wg.Wait()

	// Apply phase. Sequenced: two change sets for one body overwrite
	// rather than merge, so application must not race
	cr.applyPending(w)
}

func (cr *ContactResolver[S, V, A, R, I]) resolveOne(w *World[S, V, A, R, I], ev *ContactEvent[S, V]) {
	dataA, ok := cr.view(w, ev.Bodies[0])
	if !ok {
		return
	}
	dataB, ok := cr.view(w, ev.Bodies[1])
	if !ok {
		return
	}

	setA, setB := physics.ResolveContactWith(cr.Config, &ev.Contact, dataA, dataB)
	cr.pending.Stage(ev.Bodies[0], setA)
	cr.pending.Stage(ev.Bodies[1], setB)
}

// view assembles the read-only resolution input for one body. The
// velocity pointer is nil when the body has no velocity component, which
// the resolver treats as "not simulated here"
func (cr *ContactResolver[S, V, A, R, I]) view(w *World[S, V, A, R, I], e Entity) (physics.ResolveData[S, V, A, R, I], bool) {
	var data physics.ResolveData[S, V, A, R, I]

	pose, ok := w.Poses.Get(e)
	if !ok {
		return data, false
	}
	mass, ok := w.Masses.Get(e)
	if !ok {
		return data, false
	}

	material, ok := w.Materials.Get(e)
	if !ok {
		material = physics.DefaultMaterial[S]()
	}

	if vel, ok := w.Velocities.Get(e); ok {
		data.Velocity = &vel
	}
	data.Pose = pose.Value
	data.Mass = mass
	data.Material = material
	return data, true
}

func (cr *ContactResolver[S, V, A, R, I]) applyPending(w *World[S, V, A, R, I]) {
	for e, set := range cr.pending.Drain() {
		pose, hasPose := w.Poses.Get(e)
		vel, hasVel := w.Velocities.Get(e)

		var poseSlot *physics.NextFrame[physics.BodyPose[V, R]]
		if hasPose {
			poseSlot = &pose
		}
		var velSlot *physics.NextFrame[physics.Velocity[V, A]]
		if hasVel {
			velSlot = &vel
		}

		set.Apply(poseSlot, velSlot)

		if hasPose {
			w.Poses.Set(e, pose)
		}
		if hasVel {
			w.Velocities.Set(e, vel)
		}
	}
}
