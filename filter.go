package inkwell

import "math"

// SignalFilter smooths a noisy scalar stream sampled at irregular intervals,
// such as the pressure channel of a stylus. Implementations are stateful;
// one instance serves one continuous signal (typically one in-progress
// stroke) and is Reset between signals.
type SignalFilter interface {
	// Filter returns the smoothed value for a new sample taken at time t
	// (seconds). The very first call returns value unfiltered — it seeds
	// internal state rather than producing a transient from an assumed zero.
	Filter(value, t float64) float64
	// Reset clears internal state so the next call is treated as the first.
	Reset()
}

// --- Constants ---

const (
	defaultMinCutoff = 1.0 // Hz; smoothing floor for a near-static signal
	defaultBeta      = 0.007
	derivativeCutoff = 1.0 // Hz; fixed cutoff for the derivative estimate
)

// --- AdaptiveFilter ---

// AdaptiveFilter is a speed-aware low-pass filter. It smooths heavily while
// the signal is nearly static (suppressing jitter) and lightly while it
// moves fast (suppressing lag), by deriving the cutoff frequency from a
// low-passed estimate of the signal's rate of change.
type AdaptiveFilter struct {
	minCutoff float64
	beta      float64

	prevValue float64
	prevDeriv float64
	prevTime  float64
	primed    bool
}

// NewAdaptiveFilter creates an adaptive filter. minCutoff is the cutoff
// frequency (Hz) applied to a static signal; beta scales how much the cutoff
// opens up as the signal speeds up. Non-positive minCutoff and negative beta
// fall back to the defaults.
func NewAdaptiveFilter(minCutoff, beta float64) *AdaptiveFilter {
	if minCutoff <= 0 {
		minCutoff = defaultMinCutoff
	}
	if beta < 0 {
		beta = defaultBeta
	}
	return &AdaptiveFilter{minCutoff: minCutoff, beta: beta}
}

// Filter returns the smoothed value for a sample taken at time t.
func (f *AdaptiveFilter) Filter(value, t float64) float64 {
	if !f.primed {
		f.prevValue = value
		f.prevDeriv = 0
		f.prevTime = t
		f.primed = true
		return value
	}

	dt := t - f.prevTime
	if dt <= 0 {
		// Duplicate or out-of-order timestamp: no time has passed, so the
		// output cannot change.
		return f.prevValue
	}

	dx := (value - f.prevValue) / dt
	ad := smoothingAlpha(derivativeCutoff, dt)
	dxHat := ad*dx + (1-ad)*f.prevDeriv

	cutoff := f.minCutoff + f.beta*math.Abs(dxHat)
	a := smoothingAlpha(cutoff, dt)
	out := a*value + (1-a)*f.prevValue

	f.prevValue = out
	f.prevDeriv = dxHat
	f.prevTime = t
	return out
}

// Reset clears the filter state.
func (f *AdaptiveFilter) Reset() {
	f.primed = false
	f.prevValue = 0
	f.prevDeriv = 0
	f.prevTime = 0
}

// smoothingAlpha converts a cutoff frequency and a sample interval into an
// exponential smoothing coefficient in (0, 1).
func smoothingAlpha(cutoff, dt float64) float64 {
	tau := 1.0 / (2 * math.Pi * cutoff)
	return 1.0 / (1.0 + tau/dt)
}

// --- LowPassFilter ---

// LowPassFilter is a fixed-coefficient exponential filter:
// out = alpha*value + (1-alpha)*prev. The timestamp is ignored.
type LowPassFilter struct {
	alpha  float64
	prev   float64
	primed bool
}

// NewLowPassFilter creates a fixed-coefficient filter. alpha is clamped to
// [0, 1]; alpha=1 passes the signal through unchanged.
func NewLowPassFilter(alpha float64) *LowPassFilter {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return &LowPassFilter{alpha: alpha}
}

// Filter returns the smoothed value for a new sample. t is unused.
func (f *LowPassFilter) Filter(value, t float64) float64 {
	if !f.primed {
		f.prev = value
		f.primed = true
		return value
	}
	f.prev = f.alpha*value + (1-f.alpha)*f.prev
	return f.prev
}

// Reset clears the filter state.
func (f *LowPassFilter) Reset() {
	f.primed = false
	f.prev = 0
}
