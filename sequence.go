package tweeny

import "math"

// Sequence plays an ordered list of playback-controllable units strictly
// one at a time, advancing to the next only when the current one completes.
// Members may be tweens of any value type or nested sequences; the Sequence
// itself satisfies [Playable], so sequences compose.
//
// Like Tween, a Sequence is single-threaded: callers must serialize access
// per instance.
type Sequence struct {
	members   []Playable
	index     int
	state     State
	started   bool
	timeScale float64

	onComplete []func()
}

// NewSequence creates a sequence from the given members, in order. The
// sequence starts inert with a time scale of 1, propagated to each member.
func NewSequence(members ...Playable) *Sequence {
	s := &Sequence{timeScale: 1}
	for _, m := range members {
		s.Append(m)
	}
	return s
}

// Append adds a unit to the end of the sequence and propagates the
// sequence's current time scale to it. Members appended later do not pick
// up earlier scale changes retroactively; only SetTimeScale re-propagates.
func (s *Sequence) Append(p Playable) {
	if p == nil {
		return
	}
	p.SetTimeScale(s.timeScale)
	s.members = append(s.members, p)
}

// Len reports the number of members.
func (s *Sequence) Len() int { return len(s.members) }

// Start resets the sequence to its first member and begins playback.
// Members keep their own armed state; use Restart to rewind them too.
// Starting an empty sequence fails with [ErrEmptySequence].
func (s *Sequence) Start() error {
	if len(s.members) == 0 {
		return ErrEmptySequence
	}
	s.index = 0
	s.state = StateRunning
	s.started = true
	return nil
}

// Update advances the active member by dt seconds. The delta is delegated
// unmodified; time scaling already happened when the scale was propagated
// to members. When the active member completes, the index advances and any
// unconsumed portion of dt carries into the next member within the same
// call. When the index passes the last member the sequence stops and fires
// its completion notification exactly once.
func (s *Sequence) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	for s.state == StateRunning && s.index < len(s.members) {
		m := s.members[s.index]
		needed := m.Remaining()
		m.Update(dt)
		if !m.IsComplete() {
			return
		}
		s.index++
		if s.index == len(s.members) {
			s.state = StateStopped
			s.fireComplete()
			return
		}
		dt -= needed
		if dt <= 0 || math.IsInf(needed, 1) {
			return
		}
	}
}

// Stop halts the sequence. StopAsIs freezes the active member in place.
// StopForceComplete force-completes every member in list order, advances
// the index past the end, and fires the sequence completion notification
// once; it is a no-op on a never-started or already completed sequence,
// matching the tween's behavior on a never-started instance.
func (s *Sequence) Stop(behavior StopBehavior) {
	switch behavior {
	case StopAsIs:
		if s.state == StateStopped {
			return
		}
		if s.index < len(s.members) {
			s.members[s.index].Stop(StopAsIs)
		}
		s.state = StateStopped
	case StopForceComplete:
		if !s.started || s.IsComplete() {
			return
		}
		for _, m := range s.members {
			m.Stop(StopForceComplete)
		}
		s.index = len(s.members)
		s.state = StateStopped
		s.fireComplete()
	}
}

// Pause freezes the active member and the sequence. Members not yet reached
// are unaffected and start fresh when their turn comes. No-op unless
// Running.
func (s *Sequence) Pause() {
	if s.state != StateRunning {
		return
	}
	if s.index < len(s.members) {
		s.members[s.index].Pause()
	}
	s.state = StatePaused
}

// Resume continues a paused sequence and its active member. No-op unless
// Paused.
func (s *Sequence) Resume() {
	if s.state != StatePaused {
		return
	}
	if s.index < len(s.members) {
		s.members[s.index].Resume()
	}
	s.state = StateRunning
}

// Restart restarts every member, including ones not yet reached, and
// resets the sequence to its first member. No-op on an empty sequence.
func (s *Sequence) Restart() {
	if len(s.members) == 0 {
		return
	}
	for _, m := range s.members {
		m.Restart()
	}
	s.index = 0
	s.state = StateRunning
	s.started = true
}

// Reverse always fails with [ErrReverseUnsupported]: an ordered composition
// has no coherent reversal without additional design.
func (s *Sequence) Reverse() error {
	return ErrReverseUnsupported
}

// State reports the sequence's aggregate playback state.
func (s *Sequence) State() State { return s.state }

// Index reports the position of the active member. It equals Len exactly
// when the sequence has completed.
func (s *Sequence) Index() int { return s.index }

// IsComplete reports whether every member was played (or force-completed).
func (s *Sequence) IsComplete() bool {
	return len(s.members) > 0 && s.index == len(s.members)
}

// Remaining reports the wall-clock seconds needed to finish the members
// from the active one onward.
func (s *Sequence) Remaining() float64 {
	total := 0.0
	for i := s.index; i < len(s.members); i++ {
		total += s.members[i].Remaining()
	}
	return total
}

// TimeScale reports the sequence's time scale.
func (s *Sequence) TimeScale() float64 { return s.timeScale }

// SetTimeScale sets the sequence's time scale and propagates it to every
// current member. Negative values clamp to zero.
func (s *Sequence) SetTimeScale(scale float64) {
	s.timeScale = math.Max(0, scale)
	for _, m := range s.members {
		m.SetTimeScale(s.timeScale)
	}
}

// Progress reports approximate global progress: the finished member count
// plus the active member's own progress, over the member count.
func (s *Sequence) Progress() float64 {
	n := len(s.members)
	if n == 0 {
		return 0
	}
	if s.index >= n {
		return 1
	}
	return (float64(s.index) + s.members[s.index].Progress()) / float64(n)
}

// SetProgress seeks to an approximate global position: the target maps to a
// member index and an intra-member progress, and only that member is
// sought. Members before the target keep whatever state they were in; they
// are not fast-forwarded. This is a documented limitation of the
// approximate progress model, not an oversight.
func (s *Sequence) SetProgress(p float64) {
	n := len(s.members)
	if n == 0 {
		return
	}
	scaled := clamp01(p) * float64(n)
	idx := int(scaled)
	intra := scaled - float64(idx)
	if idx >= n {
		idx = n - 1
		intra = 1
	}
	s.index = idx
	s.members[idx].SetProgress(intra)
}

// OnComplete registers an observer fired exactly once when the sequence
// finishes its last member, naturally or via StopForceComplete. Observers
// run in registration order.
func (s *Sequence) OnComplete(fn func()) {
	if fn != nil {
		s.onComplete = append(s.onComplete, fn)
	}
}

// fireComplete runs after the index and state are finalized, so reentrant
// calls from observers see a completed sequence.
func (s *Sequence) fireComplete() {
	for _, fn := range s.onComplete {
		fn()
	}
}
