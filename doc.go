// Package tweeny is a generic, time-driven value-interpolation engine.
//
// A [Tween] carries a value of any type from a start to an end over a fixed
// duration, shaped by an easing curve from the [ease] catalog. The host
// drives it by calling Update with per-frame elapsed seconds; there is no
// background execution and no clock of its own, so it slots into any game
// loop or simulation step.
//
// # Quick start
//
//	tw, err := tweeny.NewFloat64(0, 100, 2.0, ease.OutQuad)
//	if err != nil {
//		// duration was not positive
//	}
//	tw.OnComplete(func() { fmt.Println("done") })
//
//	// each frame:
//	tw.Update(dt)
//	x := tw.Value()
//
// For custom value types, supply a blend function to [New]:
//
//	tw, _ := tweeny.New(func(a, b MyType, t float64) MyType {
//		return a.Mix(b, t)
//	})
//	tw.Start(from, to, 1.5)
//
// # Playback control
//
// Tweens support delayed starts (SetDelay), looping (SetLoop with Restart,
// PingPong, or Yoyo semantics), pausing, resuming, restarting, reversal,
// per-instance time scaling, and direct seeking through SetProgress.
// Observers attach to four notification points: OnStart, OnUpdate, OnLoop,
// and OnComplete.
//
// # Composition
//
// A [Sequence] plays playback-controllable units one after another and is
// itself such a unit, so sequences nest. A [Manager] drives a heterogeneous
// collection of units and evicts finished ones. Both are built on the
// [Playable] interface, which any external unit can implement to join in.
//
// # Value adapters
//
// [Vec2], [Vec3], and [Color] come with lerp blends and one-liner
// constructors ([NewVec2], [NewColor], ...). They are plain instantiations
// of the generic engine; binding further host types is a one-line blend
// function away.
//
// Instances are not safe for concurrent use. All state changes happen
// synchronously inside the public calls, and notification callbacks run
// reentrantly on the calling goroutine; a callback may mutate its own tween
// (for example, Restart from OnComplete).
//
// [ease]: https://pkg.go.dev/github.com/RedMeansWar/Tweeny/ease
package tweeny
