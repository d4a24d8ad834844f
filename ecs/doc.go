// Package ecs provides ECS adapters for tweeny.
//
// The primary adapter is the [Playback] component, which carries any
// [tweeny.Playable] (a tween of any value type, or a sequence) on a
// [Donburi] entity. Call [Update] once per frame from your ECS scheduler to
// advance every playback component in the world; entities flagged with
// RemoveOnComplete are removed once their unit finishes.
//
// Usage:
//
//	world := donburi.NewWorld()
//	tw, _ := tweeny.NewFloat64(0, 100, 2.0, ease.OutQuad)
//	ecs.Attach(world, tw)
//
//	// each frame:
//	ecs.Update(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
