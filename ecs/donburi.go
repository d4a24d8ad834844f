package ecs

import (
	tweeny "github.com/RedMeansWar/Tweeny"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PlaybackData is the component payload: one playback-controllable unit and
// its eviction policy.
type PlaybackData struct {
	// Unit is the tween or sequence driven by Update.
	Unit tweeny.Playable
	// RemoveOnComplete removes the owning entity from the world once Unit
	// reports completion.
	RemoveOnComplete bool
}

// Playback is the Donburi component type for playback units.
var Playback = donburi.NewComponentType[PlaybackData]()

var playbackQuery = donburi.NewQuery(filter.Contains(Playback))

// Attach creates an entity carrying the unit, flagged for removal on
// completion. For other policies, set the component value yourself.
func Attach(world donburi.World, unit tweeny.Playable) *donburi.Entry {
	entry := world.Entry(world.Create(Playback))
	Playback.SetValue(entry, PlaybackData{Unit: unit, RemoveOnComplete: true})
	return entry
}

// Update advances every playback component in the world by dt seconds and
// removes entities whose unit completed, where flagged. Removal happens
// after iteration so the query is never mutated mid-walk.
func Update(world donburi.World, dt float64) {
	var done []donburi.Entity
	playbackQuery.Each(world, func(entry *donburi.Entry) {
		data := Playback.Get(entry)
		if data.Unit == nil {
			return
		}
		data.Unit.Update(dt)
		if data.RemoveOnComplete && data.Unit.IsComplete() {
			done = append(done, entry.Entity())
		}
	})
	for _, e := range done {
		world.Remove(e)
	}
}

// Broadcast applies fn to every playback unit in the world. Useful for
// world-wide pause, resume, or time-scale changes:
//
//	ecs.Broadcast(world, func(u tweeny.Playable) { u.Pause() })
func Broadcast(world donburi.World, fn func(unit tweeny.Playable)) {
	playbackQuery.Each(world, func(entry *donburi.Entry) {
		data := Playback.Get(entry)
		if data.Unit != nil {
			fn(data.Unit)
		}
	})
}
