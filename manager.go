package tweeny

// Manager drives a collection of playback-controllable units from a single
// Update call and evicts the ones that finish. It is built entirely on the
// [Playable] contract with no privileged access, so tweens of any value
// type and sequences mix freely in one manager.
//
// A Manager is optional; for a handful of tweens, calling their Update
// directly is just as good.
type Manager struct {
	units []Playable
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a unit with the manager. Nil units are ignored.
func (m *Manager) Add(p Playable) {
	if p != nil {
		m.units = append(m.units, p)
	}
}

// Remove drops a unit from the manager without stopping it. No-op if the
// unit is not managed.
func (m *Manager) Remove(p Playable) {
	for i, u := range m.units {
		if u == p {
			m.units = append(m.units[:i], m.units[i+1:]...)
			return
		}
	}
}

// Len reports the number of managed units.
func (m *Manager) Len() int { return len(m.units) }

// Update advances every managed unit by dt seconds and evicts units that
// report completion. Eviction compacts the slice in place; relative order
// of surviving units is preserved.
func (m *Manager) Update(dt float64) {
	live := m.units[:0]
	for _, u := range m.units {
		u.Update(dt)
		if !u.IsComplete() {
			live = append(live, u)
		}
	}
	// Release references held past the new length.
	for i := len(live); i < len(m.units); i++ {
		m.units[i] = nil
	}
	m.units = live
}

// StopAll broadcasts Stop to every managed unit. Units force-completed this
// way are evicted on the next Update.
func (m *Manager) StopAll(behavior StopBehavior) {
	for _, u := range m.units {
		u.Stop(behavior)
	}
}

// PauseAll broadcasts Pause to every managed unit.
func (m *Manager) PauseAll() {
	for _, u := range m.units {
		u.Pause()
	}
}

// ResumeAll broadcasts Resume to every managed unit.
func (m *Manager) ResumeAll() {
	for _, u := range m.units {
		u.Resume()
	}
}

// SetTimeScale broadcasts a time scale to every managed unit.
func (m *Manager) SetTimeScale(scale float64) {
	for _, u := range m.units {
		u.SetTimeScale(scale)
	}
}
