package parameter

// Contact resolution tuning. Defaults follow the usual impulse-solver
// values; override per call site via physics.Config
const (
	// CorrectionPercent is the fraction of penetration corrected per
	// resolution call. Partial correction avoids overshoot when the same
	// pair is resolved again on following frames
	CorrectionPercent = 0.2

	// CorrectionSlop is the minimum penetration depth, in length units,
	// before positional correction applies. Overlap below this is left
	// alone to prevent micro-jitter from floating point noise
	CorrectionSlop = 0.01
)
