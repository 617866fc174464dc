package physics

import (
	"github.com/lixenwraith/collide/parameter"
	"github.com/lixenwraith/collide/vmath"
)

// Config holds the positional correction tuning for a resolution call
type Config[S vmath.Float] struct {
	// CorrectionPercent is the fraction of penetration corrected per call
	CorrectionPercent S
	// CorrectionSlop is the minimum penetration before correction applies
	CorrectionSlop S
}

// DefaultConfig returns the parameter package defaults in precision S
func DefaultConfig[S vmath.Float]() Config[S] {
	return Config[S]{
		CorrectionPercent: S(parameter.CorrectionPercent),
		CorrectionSlop:    S(parameter.CorrectionSlop),
	}
}

// ResolveData is the read-only per-body input bundle for one resolution
// call. It is an ephemeral view assembled by the caller, not a stored
// entity.
//
// A nil Velocity means the body's velocity is not simulated here (static
// or kinematic body). That is distinct from a present zero velocity: a
// nil input never produces a velocity entry in the change set.
type ResolveData[S vmath.Float, V, A, R, I any] struct {
	// Velocity is the body's next-frame velocity, or nil when untracked
	Velocity *NextFrame[Velocity[V, A]]
	// Pose is the body's current world transform
	Pose BodyPose[V, R]
	// Mass holds scalar mass and inertia with derived inverses
	Mass Mass[S, I]
	// Material supplies restitution
	Material Material[S]
}

// ChangeSet describes the state changes resolution computed for exactly
// one body. A nil field means that quantity did not need to change.
// Change sets are descriptions, not mutations: applying one is the
// caller's explicit second step, and applying several to the same body
// overwrites wholesale rather than accumulating
type ChangeSet[V, A, R any] struct {
	Pose     *BodyPose[V, R]
	Velocity *NextFrame[Velocity[V, A]]
}

// Apply writes the change set into the given slots. For each of pose and
// velocity: the slot is overwritten only when both the slot and the
// corresponding change-set field are present. Last value wins; there are
// no merge semantics
func (c ChangeSet[V, A, R]) Apply(pose *NextFrame[BodyPose[V, R]], velocity *NextFrame[Velocity[V, A]]) {
	if pose != nil && c.Pose != nil {
		pose.Value = *c.Pose
	}
	if velocity != nil && c.Velocity != nil {
		*velocity = *c.Velocity
	}
}

// ResolveContact performs impulse resolution of a single contact with the
// default correction config. The contact normal must point from body A
// towards body B.
//
// Returns the change sets for body A and body B, in that order. Pose
// corrections are always present; velocity entries are present only for
// bodies with a velocity input, and absent entirely when both bodies are
// immovable or already separating along the normal.
//
// The call is a single-pass solve of exactly one contact: it reads
// immutable snapshots, mutates nothing, and holds no locks, so many
// contacts can be resolved concurrently. Sequencing the application of
// the resulting change sets is the caller's responsibility.
func ResolveContact[S vmath.Float, V Linear[V, A, S], A Angular[A, V, S], R any, I InverseInertia[I, A, R]](
	contact *Contact[S, V],
	a, b ResolveData[S, V, A, R, I],
) (ChangeSet[V, A, R], ChangeSet[V, A, R]) {
	return ResolveContactWith(DefaultConfig[S](), contact, a, b)
}

// ResolveContactWith is ResolveContact with an explicit correction config
func ResolveContactWith[S vmath.Float, V Linear[V, A, S], A Angular[A, V, S], R any, I InverseInertia[I, A, R]](
	cfg Config[S],
	contact *Contact[S, V],
	a, b ResolveData[S, V, A, R, I],
) (ChangeSet[V, A, R], ChangeSet[V, A, R]) {
	// Absent velocity input reads as zero velocity for the solve
	var aVelocity, bVelocity Velocity[V, A]
	if a.Velocity != nil {
		aVelocity = a.Velocity.Value
	}
	if b.Velocity != nil {
		bVelocity = b.Velocity.Value
	}

	aInverseMass := a.Mass.InverseMass()
	bInverseMass := b.Mass.InverseMass()
	totalInverseMass := aInverseMass + bInverseMass

	// Positional correction runs unconditionally so penetrating bodies
	// separate even when no impulse applies
	newPoseA, newPoseB := PositionalCorrection(cfg, contact, a.Pose, b.Pose, aInverseMass, bInverseMass)

	aSet := ChangeSet[V, A, R]{Pose: newPoseA}
	bSet := ChangeSet[V, A, R]{Pose: newPoseB}

	// Two infinite masses cannot exchange momentum; resolving further
	// would divide by zero
	if totalInverseMass == 0 {
		return aSet, bSet
	}

	// Lever arms from each center of mass to the contact point
	rA := contact.ContactPoint.Sub(a.Pose.Position())
	rB := contact.ContactPoint.Sub(b.Pose.Position())

	// Velocity of the contact point on each body
	aPointVelocity := aVelocity.Linear().Add(aVelocity.Angular().Cross(rA))
	bPointVelocity := bVelocity.Linear().Add(bVelocity.Angular().Cross(rB))

	relative := bPointVelocity.Sub(aPointVelocity)
	velocityAlongNormal := contact.Normal.Dot(relative)

	// Already separating; an impulse here would pull the bodies together
	if velocityAlongNormal > 0 {
		return aSet, bSet
	}

	e := vmath.Min(a.Material.Restitution(), b.Material.Restitution())
	numerator := -(1 + e) * velocityAlongNormal

	aTensor := a.Mass.InverseInertia().WorldInverse(a.Pose.Rotation())
	bTensor := b.Mass.InverseInertia().WorldInverse(b.Pose.Rotation())

	// Rotational contribution to the effective mass along the normal
	termA := contact.Normal.Dot(aTensor.Apply(rA.Cross(contact.Normal)).Cross(rA))
	termB := contact.Normal.Dot(bTensor.Apply(rB.Cross(contact.Normal)).Cross(rB))

	denominator := aInverseMass + bInverseMass + termA + termB
	// Pathological mass/inertia combinations can degenerate the effective
	// mass. Policy: skip the velocity update instead of propagating a
	// non-finite or attractive impulse; pose correction stands
	if denominator <= 0 || !vmath.IsFinite(denominator) {
		return aSet, bSet
	}

	j := numerator / denominator
	impulse := contact.Normal.Scale(j)

	// Velocity entries only for bodies whose velocity input was present.
	// An impulse conceptually applies to a static body too, but its
	// velocity is not simulated here
	if a.Velocity != nil {
		aSet.Velocity = &NextFrame[Velocity[V, A]]{Value: NewVelocity(
			aVelocity.Linear().Sub(impulse.Scale(aInverseMass)),
			aVelocity.Angular().Sub(aTensor.Apply(rA.Cross(impulse))),
		)}
	}
	if b.Velocity != nil {
		bSet.Velocity = &NextFrame[Velocity[V, A]]{Value: NewVelocity(
			bVelocity.Linear().Add(impulse.Scale(bInverseMass)),
			bVelocity.Angular().Add(bTensor.Apply(rB.Cross(impulse))),
		)}
	}

	return aSet, bSet
}

// PositionalCorrection computes corrected poses that reduce the pair's
// interpenetration. Only a fraction of the depth beyond the slop
// tolerance is corrected per call, weighted by inverse mass so lighter
// bodies move proportionally more. Orientation never changes.
//
// Both returned poses are always non-nil; a zero-magnitude correction is
// still represented as an unchanged pose, not an absent one. A pair with
// zero total inverse mass is guarded internally and comes back unmoved.
func PositionalCorrection[S vmath.Float, V Linear[V, A, S], A Angular[A, V, S], R any](
	cfg Config[S],
	contact *Contact[S, V],
	poseA, poseB BodyPose[V, R],
	inverseMassA, inverseMassB S,
) (*BodyPose[V, R], *BodyPose[V, R]) {
	totalInverseMass := inverseMassA + inverseMassB

	depth := vmath.Max(contact.PenetrationDepth-cfg.CorrectionSlop, 0)
	var magnitude S
	if totalInverseMass > 0 {
		magnitude = depth / totalInverseMass * cfg.CorrectionPercent
	}
	correction := contact.Normal.Scale(magnitude)

	newA := NewBodyPose(poseA.Position().Add(correction.Scale(-inverseMassA)), poseA.Rotation())
	newB := NewBodyPose(poseB.Position().Add(correction.Scale(inverseMassB)), poseB.Rotation())
	return &newA, &newB
}
