package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
)

// dot is a one-channel animation target for the adapter tests.
type dot struct {
	v float64
}

func (d *dot) TweenValues(tag int, buf []float64) int {
	buf[0] = d.v
	return 1
}

func (d *dot) SetTweenValues(tag int, values []float64) {
	d.v = values[0]
}

func TestAttachAndManager(t *testing.T) {
	world := donburi.NewWorld()
	engine := motion.NewEngine(motion.Config{})
	m := engine.NewManager()

	entry := world.Entry(world.Create(Animator))
	Attach(entry, m)

	if got := Manager(entry); got != m {
		t.Fatalf("Manager = %p, want %p", got, m)
	}
}

// position stands in for an unrelated component on entities that do not
// carry an Animator.
var position = donburi.NewComponentType[struct{ X, Y float64 }]()

func TestManagerWithoutAnimatorComponent(t *testing.T) {
	world := donburi.NewWorld()
	entry := world.Entry(world.Create(position))

	if got := Manager(entry); got != nil {
		t.Errorf("Manager on an entry without the component = %p, want nil", got)
	}
}

func TestUpdateDrivesManagers(t *testing.T) {
	world := donburi.NewWorld()
	engine := motion.NewEngine(motion.Config{})

	a, b := &dot{}, &dot{v: 10}
	ma := engine.NewManager()
	ma.Add(engine.To(a, 0, 1).Target(100))
	mb := engine.NewManager()
	mb.Add(engine.To(b, 0, 2).Target(20))

	Attach(world.Entry(world.Create(Animator)), ma)
	Attach(world.Entry(world.Create(Animator)), mb)

	Update(world, 0.5)

	if math.Abs(a.v-50) > 1e-5 {
		t.Errorf("a = %f, want 50", a.v)
	}
	if math.Abs(b.v-12.5) > 1e-5 {
		t.Errorf("b = %f, want 12.5", b.v)
	}

	Update(world, 0.6)
	if a.v != 100 {
		t.Errorf("a = %f, want exactly 100", a.v)
	}
	if math.Abs(b.v-15.5) > 1e-5 {
		t.Errorf("b = %f, want 15.5", b.v)
	}
}

func TestUpdateSkipsNilManager(t *testing.T) {
	world := donburi.NewWorld()
	world.Entry(world.Create(Animator)) // zero-value component, nil manager

	Update(world, 0.5) // must not panic
}
