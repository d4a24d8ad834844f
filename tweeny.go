package tweeny

import (
	"errors"
	"math"
)

// State is the playback state of a tween or sequence.
type State uint8

const (
	// StateStopped means the unit is inert: never started, stopped early,
	// or finished. Use IsComplete to tell finished from stopped early.
	StateStopped State = iota
	// StateDelayed means the unit is started but its start delay has not
	// yet elapsed.
	StateDelayed
	// StateRunning means the unit advances when Update is called.
	StateRunning
	// StatePaused means the unit holds its clock until Resume.
	StatePaused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateDelayed:
		return "Delayed"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	}
	return "Unknown"
}

// LoopType selects what happens when a tween's clock reaches its duration.
type LoopType uint8

const (
	// LoopNone completes the tween after a single play.
	LoopNone LoopType = iota
	// LoopRestart replays from the start value each iteration.
	LoopRestart
	// LoopPingPong swaps the start and end values each iteration.
	LoopPingPong
	// LoopYoyo mirrors progress on alternate iterations without swapping
	// the endpoint values, so the same easing curve shapes the return trip.
	LoopYoyo
)

// StopBehavior selects what Stop does with the current value.
type StopBehavior uint8

const (
	// StopAsIs freezes the unit at its current value without notification.
	StopAsIs StopBehavior = iota
	// StopForceComplete snaps the unit to its final value and fires the
	// completion notification once.
	StopForceComplete
)

// Errors reported by the package. All failures are permanent contract
// violations; there are no transient conditions and nothing is retried.
var (
	// ErrNilBlend is returned by New when no blend function is supplied.
	ErrNilBlend = errors.New("tweeny: blend function must not be nil")
	// ErrNonPositiveDuration is returned by Start when duration <= 0.
	ErrNonPositiveDuration = errors.New("tweeny: duration must be positive")
	// ErrEmptySequence is returned by Sequence.Start when the sequence has
	// no members.
	ErrEmptySequence = errors.New("tweeny: sequence has no members")
	// ErrReverseUnsupported is returned by Sequence.Reverse, which is a
	// permanent capability gap.
	ErrReverseUnsupported = errors.New("tweeny: sequence reversal is not supported")
)

// Playable is the uniform playback-control contract implemented by both
// [Tween] and [Sequence]. Bulk helpers like [Manager] and the ecs adapter
// depend only on this interface.
//
// All methods are total: calling one in a state where it has no effect is a
// documented no-op, never a failure. The sole exception is Reverse, which
// fails on units that cannot define a coherent reversal.
type Playable interface {
	// Update advances the unit's clock by dt seconds. Negative dt is
	// treated as zero; clocks never rewind through Update.
	Update(dt float64)
	// Stop halts playback. See StopBehavior for the two policies.
	Stop(behavior StopBehavior)
	// Pause freezes the clock without losing position.
	Pause()
	// Resume continues a paused unit. It does not re-fire the start
	// notification.
	Resume()
	// Restart replays from time zero with the current configuration.
	Restart()
	// Reverse plays the remaining motion backward where supported.
	Reverse() error
	// State reports the current playback state.
	State() State
	// Progress reports normalized playback position in [0, 1].
	Progress() float64
	// SetProgress seeks to a normalized position, clamped to [0, 1],
	// regardless of state.
	SetProgress(p float64)
	// IsComplete reports whether the unit ran to its natural (or forced)
	// end, as opposed to being stopped early.
	IsComplete() bool
	// Remaining reports the wall-clock seconds of Update time the unit
	// still needs to reach completion, accounting for pending delays,
	// loop iterations, and the unit's time scale. It is +Inf when the
	// unit can never complete (zero time scale, infinite looping) and 0
	// once complete.
	Remaining() float64
	// TimeScale reports the multiplier applied to incoming dt values.
	TimeScale() float64
	// SetTimeScale sets the dt multiplier. Negative values clamp to zero;
	// zero freezes the unit without pausing it.
	SetTimeScale(scale float64)
}

// Lerp returns the linear interpolation between a and b at t. It is the
// standard blend function for float64 tweens and extrapolates naturally for
// t outside [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
