package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/collide/physics"
	"github.com/lixenwraith/collide/vmath"
)

func mass2(m float64) physics.Mass2[float64] {
	return physics.NewMass(m, physics.NewInertia2(m))
}

func addBody2(w *World2[float64], pos, vel vmath.Vec2[float64], m float64) Entity {
	e := w.CreateEntity()
	w.Poses.Set(e, physics.NextFrame[physics.Pose2[float64]]{
		Value: physics.NewBodyPose(pos, vmath.Rot2Identity[float64]()),
	})
	w.Velocities.Set(e, physics.NextFrame[physics.Velocity2[float64]]{
		Value: physics.NewVelocity(vel, vmath.Ang2[float64]{}),
	})
	w.Masses.Set(e, mass2(m))
	return e
}

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if d := got - want; d < -1e-6 || d > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// Two equal bodies approaching head-on swap linear velocities and are
// pushed apart by the positional correction, end to end through the
// world step.
func TestResolverHeadOn(t *testing.T) {
	w := NewWorld2[float64]()
	w.AddSystem(NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]())

	a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: 0}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)
	b := addBody2(w, vmath.Vec2[float64]{X: 1, Y: 0}, vmath.Vec2[float64]{X: -2, Y: 0}, 2)

	w.Contacts.Push(ContactEvent2[float64]{
		Bodies: [2]Entity{a, b},
		Contact: physics.Contact2[float64]{
			Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
			PenetrationDepth: 0.5,
			ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: 0},
		},
	})

	w.Step(time.Second / 60)

	velA, _ := w.Velocities.Get(a)
	velB, _ := w.Velocities.Get(b)
	near(t, "velA.X", velA.Value.Linear().X, -2)
	near(t, "velB.X", velB.Value.Linear().X, 1)

	poseA, _ := w.Poses.Get(a)
	poseB, _ := w.Poses.Get(b)
	near(t, "poseA.X", poseA.Value.Position().X, -0.049)
	near(t, "poseB.X", poseB.Value.Position().X, 1.049)
}

// A body without a velocity component and with infinite mass is a
// static obstacle: the moving body reflects off it, the obstacle never
// acquires a velocity component, and only the moving body's pose is
// corrected.
func TestResolverStaticBody(t *testing.T) {
	w := NewWorld2[float64]()
	w.AddSystem(NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]())

	a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: 0}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)

	b := w.CreateEntity()
	w.Poses.Set(b, physics.NextFrame[physics.Pose2[float64]]{
		Value: physics.NewBodyPose(vmath.Vec2[float64]{X: 1, Y: 0}, vmath.Rot2Identity[float64]()),
	})
	w.Masses.Set(b, physics.NewMass(math.Inf(1), physics.NewInertia2(math.Inf(1))))

	w.Contacts.Push(ContactEvent2[float64]{
		Bodies: [2]Entity{a, b},
		Contact: physics.Contact2[float64]{
			Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
			PenetrationDepth: 0.5,
			ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: 0},
		},
	})

	w.Step(time.Second / 60)

	velA, _ := w.Velocities.Get(a)
	near(t, "velA.X", velA.Value.Linear().X, -1)
	if w.Velocities.Has(b) {
		t.Error("static body acquired a velocity component")
	}

	// All of the correction falls on the movable body
	poseA, _ := w.Poses.Get(a)
	poseB, _ := w.Poses.Get(b)
	near(t, "poseA.X", poseA.Value.Position().X, -0.098)
	near(t, "poseB.X", poseB.Value.Position().X, 1)
}

// A contact naming a body with no pose or mass resolves nothing and
// leaves the other body untouched.
func TestResolverSkipsIncompleteBodies(t *testing.T) {
	w := NewWorld2[float64]()
	w.AddSystem(NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]())

	a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: 0}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)
	ghost := w.CreateEntity()

	w.Contacts.Push(ContactEvent2[float64]{
		Bodies: [2]Entity{a, ghost},
		Contact: physics.Contact2[float64]{
			Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
			PenetrationDepth: 0.5,
			ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: 0},
		},
	})

	w.Step(time.Second / 60)

	velA, _ := w.Velocities.Get(a)
	near(t, "velA.X", velA.Value.Linear().X, 1)
	poseA, _ := w.Poses.Get(a)
	near(t, "poseA.X", poseA.Value.Position().X, 0)
}

// When several contacts name the same body in one frame, the staged
// change sets overwrite rather than merge: the body ends up with the
// outcome of exactly one contact, not an accumulation.
func TestResolverLastWriteWins(t *testing.T) {
	cr := NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]()
	cr.Workers = 1
	w := NewWorld2[float64]()
	w.AddSystem(cr)

	a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: 0}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)
	b := addBody2(w, vmath.Vec2[float64]{X: 1, Y: 0}, vmath.Vec2[float64]{X: -2, Y: 0}, 2)
	c := addBody2(w, vmath.Vec2[float64]{X: -1, Y: 0}, vmath.Vec2[float64]{X: 3, Y: 0}, 2)

	contact := physics.Contact2[float64]{
		Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
		PenetrationDepth: 0.5,
		ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: 0},
	}
	w.Contacts.Push(ContactEvent2[float64]{Bodies: [2]Entity{a, b}, Contact: contact})
	w.Contacts.Push(ContactEvent2[float64]{Bodies: [2]Entity{c, a}, Contact: contact})

	w.Step(time.Second / 60)

	// With one worker the contacts resolve in order, so the second
	// contact's change set for a replaces the first's. a approaches c at
	// closing speed 2 along the normal, equal masses: swap to 3.
	velA, _ := w.Velocities.Get(a)
	near(t, "velA.X", velA.Value.Linear().X, 3)
	velC, _ := w.Velocities.Get(c)
	near(t, "velC.X", velC.Value.Linear().X, 1)
}

// Many independent pairs resolved with several workers all land their
// change sets; the parallel compute phase must not drop or cross wires.
func TestResolverParallelPairs(t *testing.T) {
	cr := NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]()
	cr.Workers = 4
	w := NewWorld2[float64]()
	w.AddSystem(cr)

	const pairs = 32
	type pair struct{ a, b Entity }
	created := make([]pair, 0, pairs)
	for i := 0; i < pairs; i++ {
		y := float64(i) * 10
		a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: y}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)
		b := addBody2(w, vmath.Vec2[float64]{X: 1, Y: y}, vmath.Vec2[float64]{X: -2, Y: 0}, 2)
		created = append(created, pair{a, b})
		w.Contacts.Push(ContactEvent2[float64]{
			Bodies: [2]Entity{a, b},
			Contact: physics.Contact2[float64]{
				Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
				PenetrationDepth: 0.5,
				ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: y},
			},
		})
	}

	w.Step(time.Second / 60)

	for i, p := range created {
		velA, _ := w.Velocities.Get(p.a)
		velB, _ := w.Velocities.Get(p.b)
		if got := velA.Value.Linear().X; got != -2 {
			t.Errorf("pair %d: velA.X = %v, want -2", i, got)
		}
		if got := velB.Value.Linear().X; got != 1 {
			t.Errorf("pair %d: velB.X = %v, want 1", i, got)
		}
	}
}

// Material components on the bodies feed the restitution minimum; two
// rock bodies barely bounce.
func TestResolverUsesMaterials(t *testing.T) {
	w := NewWorld2[float64]()
	w.AddSystem(NewContactResolver[float64, vmath.Vec2[float64], vmath.Ang2[float64], vmath.Rot2[float64], physics.Inertia2[float64]]())

	a := addBody2(w, vmath.Vec2[float64]{X: 0, Y: 0}, vmath.Vec2[float64]{X: 1, Y: 0}, 2)
	b := addBody2(w, vmath.Vec2[float64]{X: 1, Y: 0}, vmath.Vec2[float64]{X: -1, Y: 0}, 2)
	w.Materials.Set(a, physics.Rock[float64]())
	w.Materials.Set(b, physics.Rock[float64]())

	w.Contacts.Push(ContactEvent2[float64]{
		Bodies: [2]Entity{a, b},
		Contact: physics.Contact2[float64]{
			Normal:           vmath.Vec2[float64]{X: 1, Y: 0},
			PenetrationDepth: 0.02,
			ContactPoint:     vmath.Vec2[float64]{X: 0.5, Y: 0},
		},
	})

	w.Step(time.Second / 60)

	// Closing speed 2, e = 0.1: separation speed 0.2, split evenly.
	velA, _ := w.Velocities.Get(a)
	velB, _ := w.Velocities.Get(b)
	near(t, "velA.X", velA.Value.Linear().X, -0.1)
	near(t, "velB.X", velB.Value.Linear().X, 0.1)
}
