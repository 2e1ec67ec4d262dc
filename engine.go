package motion

import (
	"reflect"

	"github.com/tanema/gween/ease"
)

// Config tunes an Engine. The zero value is usable; zero fields take the
// defaults documented on each.
type Config struct {
	// CombinedAttrsLimit caps how many float channels one tween can drive
	// at once. Buffers are sized to it at pool time. Default 3.
	CombinedAttrsLimit int
	// WaypointsLimit caps the waypoints per tween. Default 0 (no
	// waypoint storage allocated).
	WaypointsLimit int
	// PoolPolicy selects the node pools' retention policy.
	PoolPolicy PoolPolicy
	// PoolBound caps each eager pool's free list. Default 64.
	PoolBound int
	// Unsynchronized removes the synchronization barrier from the pools
	// and from Managers created by this engine. Single-goroutine callers
	// get minimum overhead; in exchange, nothing guarantees a node built
	// on one goroutine is visible to an update on another.
	Unsynchronized bool
}

// Engine is the context every animation hangs off: it owns the node
// pools, the accessor registry and the configured limits. Engines replace
// any notion of process-wide state; two engines are fully independent.
type Engine struct {
	cfg       Config
	accessors map[reflect.Type]Accessor
	tweens    *Pool[Tween]
	timelines *Pool[Timeline]
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.CombinedAttrsLimit <= 0 {
		cfg.CombinedAttrsLimit = 3
	}
	if cfg.WaypointsLimit < 0 {
		cfg.WaypointsLimit = 0
	}
	if cfg.PoolBound <= 0 {
		cfg.PoolBound = 64
	}
	e := &Engine{
		cfg:       cfg,
		accessors: make(map[reflect.Type]Accessor),
	}
	e.tweens = NewPool(cfg.PoolPolicy, cfg.PoolBound, cfg.Unsynchronized,
		func() *Tween { return newTween(cfg) },
		func(t *Tween) { t.reset() })
	e.timelines = NewPool(cfg.PoolPolicy, cfg.PoolBound, cfg.Unsynchronized,
		newTimeline,
		func(tl *Timeline) { tl.reset() })
	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// To creates a tween that animates target's channels for tag from their
// captured values to the values given via Target, over duration seconds.
// The target must implement Tweenable or have a registered accessor;
// pass nil for a pure wait.
func (e *Engine) To(target any, tag int, duration float64) *Tween {
	return e.tween(target, tag, duration, false)
}

// From is the inverse of To: the values given via Target are where the
// animation starts, and the values captured at initialization are where
// it ends.
func (e *Engine) From(target any, tag int, duration float64) *Tween {
	return e.tween(target, tag, duration, true)
}

func (e *Engine) tween(target any, tag int, duration float64, isFrom bool) *Tween {
	if duration < 0 {
		panic("motion: negative tween duration")
	}
	t := e.tweens.Take()
	t.engine = e
	t.target = target
	t.tag = tag
	t.duration = duration
	t.isFrom = isFrom
	t.easing = ease.Linear
	if target != nil {
		t.acc = e.accessorFor(target)
	}
	return t
}

// pauseTween builds the hidden leaf behind Timeline.PushPause.
func (e *Engine) pauseTween(d float64) *Tween {
	t := e.tweens.Take()
	t.engine = e
	t.duration = d
	t.easing = ease.Linear
	return t
}

// NewSequential creates a timeline whose children play one after another.
func (e *Engine) NewSequential() *Timeline {
	return e.newTimeline(ModeSequential)
}

// NewParallel creates a timeline whose children share its clock.
func (e *Engine) NewParallel() *Timeline {
	return e.newTimeline(ModeParallel)
}

func (e *Engine) newTimeline(mode TimelineMode) *Timeline {
	tl := e.timelines.Take()
	tl.engine = e
	tl.mode = mode
	return tl
}

// NewManager creates a frame driver bound to this engine.
func (e *Engine) NewManager() *Manager {
	return &Manager{engine: e, unsync: e.cfg.Unsynchronized, autoRemove: true}
}
