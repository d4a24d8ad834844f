package tweeny

import (
	"math"
	"testing"

	"github.com/RedMeansWar/Tweeny/ease"
)

func newSeqPair(t *testing.T) (*Sequence, *Tween[float64], *Tween[float64]) {
	t.Helper()
	first, err := NewFloat64(0, 50, 1.0, ease.Linear)
	if err != nil {
		t.Fatalf("NewFloat64: %v", err)
	}
	second, err := NewFloat64(50, 100, 1.0, ease.Linear)
	if err != nil {
		t.Fatalf("NewFloat64: %v", err)
	}
	seq := NewSequence(first, second)
	if err := seq.Start(); err != nil {
		t.Fatalf("Sequence.Start: %v", err)
	}
	return seq, first, second
}

func TestSequenceEmptyStartFails(t *testing.T) {
	seq := NewSequence()
	if err := seq.Start(); err != ErrEmptySequence {
		t.Fatalf("Start on empty sequence error = %v, want ErrEmptySequence", err)
	}
	if seq.State() != StateStopped {
		t.Errorf("state = %v after failed Start, want Stopped", seq.State())
	}
}

func TestSequenceReverseFails(t *testing.T) {
	seq, _, _ := newSeqPair(t)
	if err := seq.Reverse(); err != ErrReverseUnsupported {
		t.Fatalf("Reverse error = %v, want ErrReverseUnsupported", err)
	}
}

func TestSequenceOverflowCarriesIntoNextMember(t *testing.T) {
	seq, first, second := newSeqPair(t)

	seq.Update(1.5)

	if !first.IsComplete() {
		t.Error("first member should be complete")
	}
	if seq.Index() != 1 {
		t.Errorf("Index = %d, want 1", seq.Index())
	}
	if math.Abs(second.Value()-75) > tol {
		t.Errorf("second member Value = %f, want 75 (0.5s overflow applied)", second.Value())
	}
}

func TestSequenceOverflowSpansMultipleMembers(t *testing.T) {
	a, _ := NewFloat64(0, 1, 1.0, ease.Linear)
	b, _ := NewFloat64(1, 2, 1.0, ease.Linear)
	c, _ := NewFloat64(2, 3, 1.0, ease.Linear)
	seq := NewSequence(a, b, c)
	seq.Start()

	seq.Update(2.5)

	if seq.Index() != 2 {
		t.Fatalf("Index = %d, want 2", seq.Index())
	}
	if math.Abs(c.Progress()-0.5) > tol {
		t.Errorf("third member Progress = %f, want 0.5", c.Progress())
	}
}

func TestSequenceCompletesExactlyOnce(t *testing.T) {
	seq, _, _ := newSeqPair(t)
	completions := 0
	seq.OnComplete(func() { completions++ })

	seq.Update(1.0)
	seq.Update(1.0)
	seq.Update(1.0) // past the end: no-op

	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if !seq.IsComplete() {
		t.Error("expected IsComplete")
	}
	if seq.Index() != seq.Len() {
		t.Errorf("Index = %d, want Len %d", seq.Index(), seq.Len())
	}
	if seq.Progress() != 1 {
		t.Errorf("Progress = %f, want 1", seq.Progress())
	}
}

func TestSequenceStopForceCompleteRunsMembersInOrder(t *testing.T) {
	seq, first, second := newSeqPair(t)

	var order []string
	first.OnComplete(func() { order = append(order, "first") })
	second.OnComplete(func() { order = append(order, "second") })
	seq.OnComplete(func() { order = append(order, "sequence") })

	seq.Update(0.25)
	seq.Stop(StopForceComplete)

	want := []string{"first", "second", "sequence"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if math.Abs(first.Value()-50) > tol || math.Abs(second.Value()-100) > tol {
		t.Errorf("member values = %f, %f, want 50, 100", first.Value(), second.Value())
	}
	if !seq.IsComplete() {
		t.Error("expected IsComplete after force-complete")
	}

	// Idempotent once complete.
	seq.Stop(StopForceComplete)
	if len(order) != 3 {
		t.Errorf("force-complete on completed sequence fired notifications: %v", order)
	}
}

func TestSequenceStopAsIsFreezes(t *testing.T) {
	seq, first, _ := newSeqPair(t)

	seq.Update(0.5)
	seq.Stop(StopAsIs)

	if seq.State() != StateStopped {
		t.Errorf("state = %v, want Stopped", seq.State())
	}
	if seq.IsComplete() {
		t.Error("stopped-early sequence must not report complete")
	}
	if math.Abs(first.Value()-25) > tol {
		t.Errorf("active member Value = %f, want frozen 25", first.Value())
	}

	// Updates have no effect once stopped.
	seq.Update(1.0)
	if math.Abs(first.Value()-25) > tol {
		t.Errorf("Value = %f after Update on stopped sequence, want 25", first.Value())
	}
}

func TestSequencePauseAffectsOnlyActiveMember(t *testing.T) {
	seq, first, second := newSeqPair(t)

	seq.Update(0.25)
	seq.Pause()

	if seq.State() != StatePaused {
		t.Errorf("sequence state = %v, want Paused", seq.State())
	}
	if first.State() != StatePaused {
		t.Errorf("active member state = %v, want Paused", first.State())
	}
	if second.State() != StateRunning {
		t.Errorf("pending member state = %v, want untouched Running", second.State())
	}

	seq.Update(5)
	if math.Abs(first.Value()-12.5) > tol {
		t.Errorf("Value = %f while paused, want 12.5", first.Value())
	}

	seq.Resume()
	if first.State() != StateRunning {
		t.Errorf("active member state = %v after Resume, want Running", first.State())
	}
	seq.Update(0.75)
	if seq.Index() != 1 {
		t.Errorf("Index = %d after resuming through the first member, want 1", seq.Index())
	}
}

func TestSequenceRestartRewindsAllMembers(t *testing.T) {
	seq, first, second := newSeqPair(t)

	seq.Update(1.5)
	if seq.Index() != 1 {
		t.Fatalf("Index = %d, want 1", seq.Index())
	}

	seq.Restart()
	if seq.Index() != 0 {
		t.Errorf("Index = %d after Restart, want 0", seq.Index())
	}
	if first.Progress() != 0 || second.Progress() != 0 {
		t.Errorf("member progress = %f, %f after Restart, want 0, 0",
			first.Progress(), second.Progress())
	}
	if math.Abs(first.Value()-0) > tol {
		t.Errorf("first member Value = %f after Restart, want 0", first.Value())
	}

	seq.Update(0.5)
	if math.Abs(first.Value()-25) > tol {
		t.Errorf("Value = %f after restarted playback, want 25", first.Value())
	}
}

func TestSequenceTimeScalePropagation(t *testing.T) {
	first, _ := NewFloat64(0, 1, 1.0, ease.Linear)
	seq := NewSequence(first)
	seq.SetTimeScale(2)

	if first.TimeScale() != 2 {
		t.Errorf("member TimeScale = %f after reassignment, want 2", first.TimeScale())
	}

	// Appended members inherit the scale at append time.
	second, _ := NewFloat64(0, 1, 1.0, ease.Linear)
	seq.Append(second)
	if second.TimeScale() != 2 {
		t.Errorf("appended member TimeScale = %f, want 2", second.TimeScale())
	}

	// Reassignment re-propagates to every current member.
	seq.SetTimeScale(0.5)
	if first.TimeScale() != 0.5 || second.TimeScale() != 0.5 {
		t.Errorf("member TimeScales = %f, %f, want 0.5, 0.5",
			first.TimeScale(), second.TimeScale())
	}

	// Scaled members advance faster; the sequence delegates dt unmodified.
	seq.SetTimeScale(2)
	seq.Start()
	seq.Update(0.25)
	if math.Abs(first.Progress()-0.5) > tol {
		t.Errorf("member Progress = %f at double speed, want 0.5", first.Progress())
	}
}

func TestSequenceProgressApproximation(t *testing.T) {
	seq, _, second := newSeqPair(t)

	seq.Update(1.0) // finish first member exactly
	seq.Update(0.5) // halfway through second
	got := seq.Progress()
	if math.Abs(got-0.75) > tol {
		t.Errorf("Progress = %f, want 0.75", got)
	}

	if math.Abs(second.Value()-75) > tol {
		t.Errorf("second member Value = %f, want 75", second.Value())
	}
}

func TestSequenceSetProgressSeeksOnlyTargetMember(t *testing.T) {
	seq, first, second := newSeqPair(t)

	seq.SetProgress(0.75)

	if seq.Index() != 1 {
		t.Errorf("Index = %d after seek, want 1", seq.Index())
	}
	if math.Abs(second.Progress()-0.5) > tol {
		t.Errorf("target member Progress = %f, want 0.5", second.Progress())
	}
	// Skipped members are left as they were, by design.
	if first.Progress() != 0 {
		t.Errorf("skipped member Progress = %f, want untouched 0", first.Progress())
	}
}

func TestSequenceNested(t *testing.T) {
	a, _ := NewFloat64(0, 10, 1.0, ease.Linear)
	b, _ := NewFloat64(10, 20, 1.0, ease.Linear)
	inner := NewSequence(a, b)
	if err := inner.Start(); err != nil {
		t.Fatalf("inner Start: %v", err)
	}

	c, _ := NewFloat64(20, 30, 1.0, ease.Linear)
	outer := NewSequence(inner, c)
	if err := outer.Start(); err != nil {
		t.Fatalf("outer Start: %v", err)
	}

	outer.Update(2.5)

	if !inner.IsComplete() {
		t.Error("inner sequence should be complete")
	}
	if outer.Index() != 1 {
		t.Errorf("outer Index = %d, want 1", outer.Index())
	}
	if math.Abs(c.Value()-25) > tol {
		t.Errorf("trailing member Value = %f, want 25 (overflow through nested sequence)", c.Value())
	}

	outer.Update(0.5)
	if !outer.IsComplete() {
		t.Error("outer sequence should be complete")
	}
}

func TestSequenceStalledMemberHoldsPlayback(t *testing.T) {
	frozen, _ := NewFloat64(0, 1, 1.0, ease.Linear)
	frozen.SetTimeScale(0)
	after, _ := NewFloat64(0, 1, 1.0, ease.Linear)
	seq := NewSequence(frozen, after)
	// NewSequence propagated scale 1; freeze the first member again.
	frozen.SetTimeScale(0)
	seq.Start()

	seq.Update(10)
	if seq.Index() != 0 {
		t.Errorf("Index = %d with frozen member, want 0", seq.Index())
	}
	if after.Progress() != 0 {
		t.Errorf("pending member advanced past a frozen member: %f", after.Progress())
	}
}

func TestSequenceForceCompleteBeforeStartIsNoOp(t *testing.T) {
	member := newLinear(t, 0, 100, 1.0)
	seq := NewSequence(member)
	completions := 0
	seq.OnComplete(func() { completions++ })

	// A sequence that was never started has nothing to complete.
	seq.Stop(StopForceComplete)

	if completions != 0 {
		t.Errorf("completions = %d on never-started sequence, want 0", completions)
	}
	if seq.IsComplete() {
		t.Error("never-started sequence reports complete")
	}
	if member.IsComplete() {
		t.Error("member was force-completed by a never-started sequence")
	}
}
