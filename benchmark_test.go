package tweeny

import (
	"testing"

	"github.com/RedMeansWar/Tweeny/ease"
)

func BenchmarkTweenUpdate(b *testing.B) {
	tw, _ := New(Lerp)
	tw.SetLoop(LoopYoyo, -1)
	tw.SetEase(ease.InOutCubic)
	tw.Start(0, 100, 1.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tw.Update(0.016)
	}
}

func BenchmarkTweenUpdateVec2(b *testing.B) {
	tw, _ := New(Vec2.Lerp)
	tw.SetLoop(LoopRestart, -1)
	tw.Start(Vec2{}, Vec2{X: 100, Y: 100}, 1.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tw.Update(0.016)
	}
}

func BenchmarkTweenUpdateWithObservers(b *testing.B) {
	tw, _ := New(Lerp)
	tw.SetLoop(LoopRestart, -1)
	tw.Start(0, 100, 1.0)

	var sink float64
	tw.OnUpdate(func(v float64) { sink = v })
	tw.OnLoop(func(int) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tw.Update(0.016)
	}
	_ = sink
}

func BenchmarkSequenceUpdate(b *testing.B) {
	members := make([]Playable, 8)
	for i := range members {
		tw, _ := New(Lerp)
		tw.Start(0, 1, 1.0)
		members[i] = tw
	}
	seq := NewSequence(members...)
	seq.Start()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.Update(0.016)
		if seq.IsComplete() {
			seq.Restart()
		}
	}
}

func BenchmarkManagerUpdate100(b *testing.B) {
	m := NewManager()
	for i := 0; i < 100; i++ {
		tw, _ := New(Lerp)
		tw.SetLoop(LoopYoyo, -1)
		tw.Start(0, float64(i)+1, 1.0)
		m.Add(tw)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Update(0.016)
	}
}
