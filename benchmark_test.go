package motion

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func setupBenchManager(n int) (*Manager, []*point) {
	e := NewEngine(Config{Unsynchronized: true})
	m := e.NewManager()
	m.SetAutoRemove(false)
	targets := make([]*point, n)
	for i := range targets {
		p := &point{X: float64(i)}
		targets[i] = p
		m.Add(e.To(p, 0, 1e9).Target(float64(i)+100, 50).Ease(ease.OutQuad))
	}
	// Warm up: first update initializes every tween.
	m.Update(0.001)
	return m, targets
}

func BenchmarkManagerUpdate_1000Tweens(b *testing.B) {
	m, _ := setupBenchManager(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Update(0.000001)
	}
}

func BenchmarkTweenUpdate(b *testing.B) {
	e := NewEngine(Config{Unsynchronized: true})
	s := &scalar{}
	tw := e.To(s, 0, 1e9).Target(100).Start()
	tw.Update(0.001)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tw.Update(0.000001)
	}
}

func BenchmarkTimelineUpdate(b *testing.B) {
	e := NewEngine(Config{Unsynchronized: true})
	tl := e.NewParallel()
	for i := 0; i < 16; i++ {
		s := &scalar{}
		tl.Push(e.To(s, 0, 1e9).Target(100))
	}
	tl.Start()
	tl.Update(0.001)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tl.Update(0.000001)
	}
}

func BenchmarkPoolTakePut(b *testing.B) {
	e := NewEngine(Config{Unsynchronized: true})
	s := &scalar{}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.To(s, 0, 1).Target(1).Free()
	}
}
