package tweeny

import (
	"math"

	"github.com/RedMeansWar/Tweeny/ease"
)

// BlendFunc combines a start and end value at shaped progress t. It must be
// pure and must tolerate t outside [0, 1], which overshooting easings like
// [ease.OutBack] and [ease.OutElastic] produce near the boundaries.
type BlendFunc[T any] func(start, end T, t float64) T

// Tween interpolates between two values of type T over a fixed duration,
// shaped by an easing function. It is driven by the host calling Update
// with per-frame elapsed seconds and supports delayed starts, looping,
// pausing, reversal, retiming, and seeking.
//
// A Tween is built by [New] in the Stopped state with no values; it becomes
// live through Start and may be restarted indefinitely. Instances are not
// safe for concurrent use; callers must serialize access per instance,
// which single-threaded frame loops do trivially.
type Tween[T any] struct {
	blend BlendFunc[T]
	ease  ease.TweenFunc

	start   T
	end     T
	current T

	duration       float64
	elapsed        float64
	delay          float64
	delayRemaining float64
	timeScale      float64

	state          State
	loopType       LoopType
	loopCount      int
	loopsRemaining int
	mirrored       bool // yoyo return trip

	onStart    []func()
	onUpdate   []func(value T)
	onLoop     []func(remaining int)
	onComplete []func()
}

// New creates an inert Tween bound to the given blend function. The blend
// function is fixed for the life of the instance. The easing defaults to
// [ease.Linear] and the time scale to 1.
func New[T any](blend BlendFunc[T]) (*Tween[T], error) {
	if blend == nil {
		return nil, ErrNilBlend
	}
	return &Tween[T]{
		blend:     blend,
		ease:      ease.Linear,
		timeScale: 1,
	}, nil
}

// Start arms the tween with new endpoint values and a duration in seconds,
// resetting the clock, loop counters, and yoyo phase. The tween enters
// Delayed if a start delay is configured, otherwise Running, in which case
// the start notification fires immediately. The current value is recomputed
// before Start returns.
//
// A duration that is not positive fails with [ErrNonPositiveDuration] and
// leaves the tween's prior state untouched.
func (tw *Tween[T]) Start(start, end T, duration float64) error {
	if duration <= 0 {
		return ErrNonPositiveDuration
	}
	tw.start = start
	tw.end = end
	tw.duration = duration
	tw.begin()
	return nil
}

// begin enters playback from time zero with the current configuration.
func (tw *Tween[T]) begin() {
	tw.elapsed = 0
	tw.delayRemaining = tw.delay
	tw.loopsRemaining = tw.loopCount
	tw.mirrored = false
	if tw.delayRemaining > 0 {
		tw.state = StateDelayed
		tw.recompute()
		return
	}
	tw.state = StateRunning
	tw.recompute()
	tw.fireStart()
}

// Update advances the tween by dt seconds. The delta is multiplied by the
// time scale before it touches any clock. While Delayed it consumes the
// remaining delay; a dt that overruns the delay transitions to Running and
// applies the excess as elapsed time within the same call. While Running it
// advances elapsed time, recomputes the value, fires the update
// notification, and on reaching the duration runs loop or completion
// handling. A scaled delta of zero produces no new value and fires no
// update notification. In any other state Update is a no-op.
func (tw *Tween[T]) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	switch tw.state {
	case StateDelayed:
		tw.delayRemaining -= dt * tw.timeScale
		if tw.delayRemaining > 0 {
			return
		}
		overflow := -tw.delayRemaining
		tw.delayRemaining = 0
		tw.state = StateRunning
		tw.fireStart()
		// A start observer may have paused or stopped the tween; its
		// mutation wins over applying the overflow.
		if tw.state == StateRunning {
			tw.advance(overflow)
		}
	case StateRunning:
		tw.advance(dt * tw.timeScale)
	}
}

// advance applies an already-scaled time delta to the running clock. A zero
// delta leaves the value unchanged and is silent.
func (tw *Tween[T]) advance(dt float64) {
	if dt == 0 {
		return
	}
	tw.elapsed += dt
	if tw.elapsed < tw.duration {
		tw.recompute()
		tw.fireUpdate()
		return
	}
	tw.elapsed = tw.duration
	tw.recompute()
	tw.fireUpdate()
	// An update observer may have restarted, stopped, or sought the tween;
	// only complete if it is still sitting at the end of its run.
	if tw.state == StateRunning && tw.elapsed >= tw.duration {
		tw.finish()
	}
}

// finish handles the clock reaching the duration: consume a loop iteration
// if one is available, otherwise complete. Bookkeeping is finalized before
// the loop or completion notification fires, so a callback that re-enters
// this tween (for example, Restart from an on-complete handler) observes
// consistent state and is not overwritten afterward.
func (tw *Tween[T]) finish() {
	if tw.loopType != LoopNone && (tw.loopCount == -1 || tw.loopsRemaining > 0) {
		if tw.loopCount != -1 {
			tw.loopsRemaining--
		}
		tw.elapsed = 0
		switch tw.loopType {
		case LoopRestart:
			tw.mirrored = false
		case LoopPingPong:
			tw.mirrored = !tw.mirrored
			tw.start, tw.end = tw.end, tw.start
		case LoopYoyo:
			tw.mirrored = !tw.mirrored
		}
		tw.recompute()
		tw.fireLoop()
		return
	}
	tw.state = StateStopped
	tw.fireComplete()
}

// Stop halts playback. StopAsIs freezes the tween at its current value with
// no notification and is idempotent. StopForceComplete snaps the clock to
// the duration, recomputes, and fires the completion notification once; it
// is a no-op if the tween is already Stopped.
func (tw *Tween[T]) Stop(behavior StopBehavior) {
	if tw.state == StateStopped {
		return
	}
	switch behavior {
	case StopAsIs:
		tw.state = StateStopped
	case StopForceComplete:
		tw.elapsed = tw.duration
		tw.delayRemaining = 0
		tw.state = StateStopped
		tw.recompute()
		tw.fireComplete()
	}
}

// Pause freezes the tween without altering elapsed time or the remaining
// delay. No-op unless the tween is Delayed or Running.
func (tw *Tween[T]) Pause() {
	if tw.state == StateDelayed || tw.state == StateRunning {
		tw.state = StatePaused
	}
}

// Resume continues a paused tween, returning to Delayed if delay time
// remains and to Running otherwise. The start notification is not re-fired.
// No-op unless the tween is Paused.
func (tw *Tween[T]) Resume() {
	if tw.state != StatePaused {
		return
	}
	if tw.delayRemaining > 0 {
		tw.state = StateDelayed
		return
	}
	tw.state = StateRunning
}

// Restart replays the tween from time zero with its current endpoint
// values, duration, delay, and loop configuration. No notifications fire
// for the run being abandoned. No-op if the tween was never started.
func (tw *Tween[T]) Restart() {
	if tw.duration == 0 {
		return
	}
	tw.begin()
}

// Reverse swaps the endpoint values and mirrors elapsed time so the motion
// retraces itself, recomputing immediately. The state is unchanged. Calling
// Reverse twice restores the original endpoints and clock.
func (tw *Tween[T]) Reverse() error {
	tw.start, tw.end = tw.end, tw.start
	tw.elapsed = tw.duration - tw.elapsed
	tw.recompute()
	return nil
}

// SetEase replaces the easing function. If the tween is Running the value
// is recomputed immediately. A nil function is ignored.
func (tw *Tween[T]) SetEase(fn ease.TweenFunc) {
	if fn == nil {
		return
	}
	tw.ease = fn
	if tw.state == StateRunning {
		tw.recompute()
	}
}

// SetDelay sets the delay in seconds applied at the next Start or Restart.
// Negative values clamp to zero.
func (tw *Tween[T]) SetDelay(seconds float64) {
	tw.delay = math.Max(0, seconds)
}

// SetLoop configures looping for the next runs. count is the number of
// extra iterations after the first play: -1 loops forever, 0 plays once,
// N > 0 repeats exactly N times. Takes effect at the next Start or Restart.
func (tw *Tween[T]) SetLoop(loop LoopType, count int) {
	if count < -1 {
		count = -1
	}
	tw.loopType = loop
	tw.loopCount = count
}

// SetTimeScale sets the multiplier applied to incoming dt values. Zero
// freezes the tween in place without pausing it; negative values clamp to
// zero.
func (tw *Tween[T]) SetTimeScale(scale float64) {
	tw.timeScale = math.Max(0, scale)
}

// TimeScale reports the current dt multiplier.
func (tw *Tween[T]) TimeScale() float64 { return tw.timeScale }

// State reports the current playback state.
func (tw *Tween[T]) State() State { return tw.state }

// Value returns the current interpolated value. It is never stale: every
// public operation that affects timing recomputes it before returning.
func (tw *Tween[T]) Value() T { return tw.current }

// Duration reports the configured duration in seconds, 0 if never started.
func (tw *Tween[T]) Duration() float64 { return tw.duration }

// Elapsed reports seconds of scaled playback time consumed in the current
// iteration.
func (tw *Tween[T]) Elapsed() float64 { return tw.elapsed }

// Progress reports elapsed/duration in [0, 1], or 0 if the tween was never
// started.
func (tw *Tween[T]) Progress() float64 {
	if tw.duration == 0 {
		return 0
	}
	return tw.elapsed / tw.duration
}

// SetProgress seeks directly to a normalized position, clamped to [0, 1],
// and recomputes the value. It works in any state and does not fire
// notifications. No-op if the tween was never started.
func (tw *Tween[T]) SetProgress(p float64) {
	if tw.duration == 0 {
		return
	}
	tw.elapsed = clamp01(p) * tw.duration
	tw.recompute()
}

// IsComplete reports whether the tween ran to its end, naturally or via
// StopForceComplete. It is false for a tween stopped early with StopAsIs
// and for one that was never started.
func (tw *Tween[T]) IsComplete() bool {
	return tw.state == StateStopped && tw.duration > 0 && tw.elapsed >= tw.duration
}

// Remaining reports the wall-clock seconds of Update time needed to reach
// completion, including any pending delay and loop iterations and
// accounting for the time scale. +Inf when the time scale is zero or the
// tween loops forever, 0 once complete or never started.
func (tw *Tween[T]) Remaining() float64 {
	if tw.duration == 0 || tw.IsComplete() {
		return 0
	}
	if tw.timeScale == 0 {
		return math.Inf(1)
	}
	loops := 0.0
	if tw.loopType != LoopNone {
		if tw.loopCount == -1 {
			return math.Inf(1)
		}
		loops = float64(tw.loopsRemaining)
	}
	return (tw.delayRemaining + tw.duration - tw.elapsed + loops*tw.duration) / tw.timeScale
}

// OnStart registers an observer fired when the tween enters Running via
// Start, Restart, or the Delayed-to-Running transition. Resume does not
// fire it. Observers run in registration order.
func (tw *Tween[T]) OnStart(fn func()) {
	if fn != nil {
		tw.onStart = append(tw.onStart, fn)
	}
}

// OnUpdate registers an observer fired once per Update call that advances
// the clock while Running, receiving the freshly computed value. Calls with
// a zero scaled delta produce no new value and fire nothing. Observers run
// in registration order.
func (tw *Tween[T]) OnUpdate(fn func(value T)) {
	if fn != nil {
		tw.onUpdate = append(tw.onUpdate, fn)
	}
}

// OnLoop registers an observer fired once per loop iteration consumed,
// receiving the remaining finite iteration count (-1 while looping
// forever). Observers run in registration order.
func (tw *Tween[T]) OnLoop(fn func(remaining int)) {
	if fn != nil {
		tw.onLoop = append(tw.onLoop, fn)
	}
}

// OnComplete registers an observer fired exactly once per terminal
// completion, whether reached naturally or via StopForceComplete. Observers
// run in registration order.
func (tw *Tween[T]) OnComplete(fn func()) {
	if fn != nil {
		tw.onComplete = append(tw.onComplete, fn)
	}
}

// recompute derives the current value from the clock, loop phase, and
// easing. Progress is mirrored on yoyo return trips so the same curve
// shapes both directions.
func (tw *Tween[T]) recompute() {
	t := 0.0
	if tw.duration > 0 {
		t = tw.elapsed / tw.duration
	}
	if tw.loopType == LoopYoyo && tw.mirrored {
		t = 1 - t
	}
	tw.current = tw.blend(tw.start, tw.end, tw.ease(t))
}

func (tw *Tween[T]) fireStart() {
	for _, fn := range tw.onStart {
		fn()
	}
}

func (tw *Tween[T]) fireUpdate() {
	for _, fn := range tw.onUpdate {
		fn(tw.current)
	}
}

func (tw *Tween[T]) fireLoop() {
	remaining := tw.loopsRemaining
	if tw.loopCount == -1 {
		remaining = -1
	}
	for _, fn := range tw.onLoop {
		fn(remaining)
	}
}

func (tw *Tween[T]) fireComplete() {
	for _, fn := range tw.onComplete {
		fn()
	}
}
