package motion

import (
	"math"
	"testing"
)

func TestManagerAutoRemove(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	s := &scalar{}

	m.Add(e.To(s, 0, 1).Target(10))
	if m.Count() != 1 {
		t.Fatalf("Count = %d, want 1", m.Count())
	}

	m.Update(0.5)
	if m.Count() != 1 {
		t.Fatalf("Count = %d, want 1 mid-flight", m.Count())
	}

	m.Update(0.6)
	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0 after finish", m.Count())
	}
	if s.V != 10 {
		t.Errorf("value = %f, want exactly 10", s.V)
	}
}

func TestManagerAddStartsNode(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	s := &scalar{}

	tw := e.To(s, 0, 1).Target(10)
	if tw.IsStarted() {
		t.Fatal("not started before Add")
	}
	m.Add(tw)
	if !tw.IsStarted() {
		t.Error("Add should start the node")
	}
}

func TestManagerAbsorbsOverflowForReverse(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	m.SetAutoRemove(false)
	s := &scalar{}

	m.Add(e.To(s, 0, 1).Target(100))
	m.Update(1.5)
	if s.V != 100 {
		t.Fatalf("value = %f, want exactly 100", s.V)
	}
	if m.Count() != 1 {
		t.Fatal("finished node should stay with auto-removal off")
	}

	// The 0.5 absorbed past the end is paid down before values move.
	m.Update(-0.3)
	if s.V != 100 {
		t.Errorf("value = %f, want still 100 (inside the residue)", s.V)
	}
	m.Update(-0.4)
	if math.Abs(s.V-80) > 1e-5 {
		t.Errorf("value = %f, want 80", s.V)
	}
}

func TestManagerPauseAll(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	s := &scalar{}

	m.Add(e.To(s, 0, 1).Target(100))
	m.Update(0.5)
	m.PauseAll()
	m.Update(10)
	if math.Abs(s.V-50) > 1e-5 {
		t.Errorf("value = %f, want frozen at 50", s.V)
	}

	m.ResumeAll()
	m.Update(0.25)
	if math.Abs(s.V-75) > 1e-5 {
		t.Errorf("value = %f, want 75", s.V)
	}
}

func TestManagerKillAll(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	a, b := &scalar{}, &scalar{}

	m.Add(e.To(a, 0, 1).Target(10))
	m.Add(e.To(b, 0, 1).Target(20))
	m.Update(0.5)
	m.KillAll()
	m.Update(0.1)

	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0 after KillAll", m.Count())
	}
	if math.Abs(a.V-5) > 1e-5 || math.Abs(b.V-10) > 1e-5 {
		t.Errorf("values = (%f, %f), want frozen at (5, 10)", a.V, b.V)
	}
}

func TestManagerKillTarget(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	a, b := &scalar{}, &scalar{}

	m.Add(e.To(a, 0, 1).Target(10))
	m.Add(e.To(b, 0, 1).Target(20))

	if !m.ContainsTarget(a) {
		t.Fatal("ContainsTarget(a) = false")
	}
	m.KillTarget(a)
	m.Update(0.5)

	if a.V != 0 {
		t.Errorf("a = %f, want untouched", a.V)
	}
	if math.Abs(b.V-10) > 1e-5 {
		t.Errorf("b = %f, want 10", b.V)
	}
	if m.ContainsTarget(a) {
		t.Error("killed root should have been removed")
	}
}

func TestManagerDrivesTimeline(t *testing.T) {
	e := newTestEngine()
	m := e.NewManager()
	a, b := &scalar{}, &scalar{}

	m.Add(e.NewSequential().
		Push(e.To(a, 0, 1).Target(10)).
		Push(e.To(b, 0, 1).Target(20)))

	m.Update(1.5)
	if a.V != 10 {
		t.Errorf("a = %f, want exactly 10", a.V)
	}
	if math.Abs(b.V-10) > 1e-5 {
		t.Errorf("b = %f, want 10", b.V)
	}
}
