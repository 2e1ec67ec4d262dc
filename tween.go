package motion

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Tween drives one target's property channels from their captured start
// values to configured end values through an easing curve. Obtain one from
// [Engine.To] or [Engine.From], configure it fluently, then Start it and
// feed it deltas (directly, or via a [Manager] or parent [Timeline]).
//
// Start values are captured through the target's accessor when the first
// iteration is entered — after the delay, not at Start — so a target that
// moves during the delay is picked up where it now is.
type Tween struct {
	baseTween

	target any
	tag    int
	acc    Accessor

	isFrom   bool
	relative bool

	nvalues int
	start   []float64
	end     []float64
	buf     []float64

	// Waypoints are stored channel-interleaved: waypoint w's value for
	// channel i sits at points[w*nvalues+i].
	npoints int
	points  []float64
	// pathScratch is the per-channel [start, waypoints..., end] buffer
	// handed to the path function, preallocated so apply never allocates.
	pathScratch []float64

	easing ease.TweenFunc
	path   Path
}

// newTween allocates a tween with buffers sized to the engine's limits.
// Called once per pooled instance.
func newTween(cfg Config) *Tween {
	t := &Tween{
		start:       make([]float64, cfg.CombinedAttrsLimit),
		end:         make([]float64, cfg.CombinedAttrsLimit),
		buf:         make([]float64, cfg.CombinedAttrsLimit),
		points:      make([]float64, cfg.WaypointsLimit*cfg.CombinedAttrsLimit),
		pathScratch: make([]float64, cfg.WaypointsLimit+2),
	}
	t.self = t
	return t
}

// reset sanitizes the tween for pool reuse. Buffers are kept (their
// capacity is the point of pooling) but every observable field clears.
func (t *Tween) reset() {
	t.resetBase()
	t.target = nil
	t.tag = 0
	t.acc = nil
	t.isFrom = false
	t.relative = false
	t.nvalues = 0
	t.npoints = 0
	t.easing = ease.Linear
	t.path = nil
	clear(t.start)
	clear(t.end)
	clear(t.buf)
	clear(t.points)
}

// --- Fluent configuration ---

// Target sets the values the tween interpolates toward. The count must
// match the channel count the target's accessor reports for the tag.
func (t *Tween) Target(values ...float64) *Tween {
	if len(values) > len(t.end) {
		panic(fmt.Sprintf("motion: %d target values exceed the combined attributes limit %d", len(values), len(t.end)))
	}
	t.nvalues = len(values)
	copy(t.end, values)
	return t
}

// TargetRelative is like Target, but the values are offsets added to the
// start values captured at initialization.
func (t *Tween) TargetRelative(values ...float64) *Tween {
	t.Target(values...)
	t.relative = true
	return t
}

// Waypoint adds an intermediate set of values the interpolation passes
// through, one value per channel. Requires a Path; see PathLinear and
// PathCatmullRom.
func (t *Tween) Waypoint(values ...float64) *Tween {
	if (t.npoints+1)*t.nvalues > len(t.points) {
		panic("motion: waypoint count exceeds the waypoints limit")
	}
	if len(values) != t.nvalues {
		panic("motion: waypoint channel count does not match the target")
	}
	copy(t.points[t.npoints*t.nvalues:], values)
	t.npoints++
	return t
}

// Ease sets the easing curve. The default is ease.Linear.
func (t *Tween) Ease(fn ease.TweenFunc) *Tween {
	t.easing = fn
	return t
}

// Path sets the interpolation path across waypoints. Defaults to
// PathCatmullRom when waypoints are present.
func (t *Tween) Path(p Path) *Tween {
	t.path = p
	return t
}

// Delay sets the initial delay. A negative delay is honored only in
// duration derivation (producing overlap inside parallel timelines);
// at run time it waits nothing.
func (t *Tween) Delay(d float64) *Tween {
	if t.started {
		panic("motion: cannot change delay on a started node")
	}
	t.delay = d
	if t.parent != nil {
		recomputeDurations(t.parent)
	}
	return t
}

// Repeat makes the tween play count additional iterations, restarting
// forward each time, with delay seconds between iterations.
// Use RepeatInfinite to repeat forever.
func (t *Tween) Repeat(count int, delay float64) *Tween {
	if t.started {
		panic("motion: cannot change repeat on a started node")
	}
	t.repeatCount = count
	t.repeatDelay = delay
	t.yoyo = false
	if t.parent != nil {
		recomputeDurations(t.parent)
	}
	return t
}

// RepeatYoyo is like Repeat, but odd iterations play backward.
func (t *Tween) RepeatYoyo(count int, delay float64) *Tween {
	t.Repeat(count, delay)
	t.yoyo = true
	return t
}

// On registers a callback for the given event mask and returns the tween.
func (t *Tween) On(cb Callback, mask EventType) *Tween {
	t.SetCallback(cb, mask)
	return t
}

// Start arms the tween so Update calls take effect.
func (t *Tween) Start() *Tween {
	t.start_()
	return t
}

func (t *Tween) start_() {
	if t.path == nil && t.npoints > 0 {
		t.path = PathCatmullRom
	}
	t.baseTween.start()
}

// Free returns the tween to its engine's pool.
func (t *Tween) Free() {
	if t.engine != nil {
		t.engine.tweens.Put(t)
	}
}

// Target object accessors.

// TweenTarget returns the animated target object.
func (t *Tween) TweenTarget() any { return t.target }

// Tag returns the property tag the tween animates.
func (t *Tween) Tag() int { return t.tag }

// Values returns the currently configured end values.
func (t *Tween) Values() []float64 { return t.end[:t.nvalues] }

// ContainsTarget reports whether the tween animates the given target.
func (t *Tween) ContainsTarget(target any) bool {
	return t.target != nil && t.target == target
}

func (t *Tween) killTarget(target any) bool {
	if t.ContainsTarget(target) {
		t.Kill()
		return true
	}
	return false
}

// --- State machine hooks ---

// initialize captures start values and resolves From/Relative semantics.
func (t *Tween) initialize() {
	if t.target == nil || t.acc == nil {
		return
	}
	n := t.acc.Values(t.target, t.tag, t.buf)
	if n != t.nvalues {
		panic(fmt.Sprintf("motion: accessor reported %d channels for tag %d, tween configured %d", n, t.tag, t.nvalues))
	}
	copy(t.start, t.buf[:n])
	if t.relative {
		for i := 0; i < n; i++ {
			t.end[i] += t.start[i]
		}
	}
	if t.isFrom {
		// From tweens animate out of the given values into the captured
		// ones: swap the endpoints once.
		for i := 0; i < n; i++ {
			t.start[i], t.end[i] = t.end[i], t.start[i]
		}
	}
}

// step consumes up to dt seconds of the current iteration and applies
// interpolated values. dt arrives in the iteration's value frame; the
// yoyo mirroring already happened in the caller.
func (t *Tween) step(dt float64) float64 {
	var over float64
	ct := t.currentTime + dt
	if ct > t.duration {
		over = ct - t.duration
		ct = t.duration
	} else if ct < 0 {
		over = ct
		ct = 0
	}
	t.currentTime = ct
	t.apply()
	return over
}

func (t *Tween) prepare(iter int, forwardEntry bool) {}

// forceEdge writes the exact start or end values, bit-for-bit, so chained
// sequential tweens hand off without visible seams. Before initialization
// there is nothing recorded to force.
func (t *Tween) forceEdge(end bool) {
	if !t.initialized {
		return
	}
	if end {
		t.write(t.end[:t.nvalues])
	} else {
		t.write(t.start[:t.nvalues])
	}
}

func (t *Tween) rewind()      { t.rewindBase() }
func (t *Tween) fastForward() { t.fastForwardBase() }

// apply writes the values for the current value clock. The clock already
// runs mirrored during a yoyo-reversed iteration, so the mapping here is
// always start-to-end. Times at or beyond the edges short-circuit to the
// recorded values exactly; the easing function never gets a chance to
// drift them.
func (t *Tween) apply() {
	if t.duration <= 0 {
		// A zero-length iteration has no clock to read; its resting value
		// is the edge the current iteration travels toward.
		t.forceEdge(!t.reverse(t.iteration))
		return
	}
	tt := t.currentTime
	if tt <= 0 {
		t.forceEdge(false)
		return
	}
	if tt >= t.duration {
		t.forceEdge(true)
		return
	}
	f := float64(t.easing(float32(tt), 0, 1, float32(t.duration)))
	if t.npoints == 0 {
		for i := 0; i < t.nvalues; i++ {
			t.buf[i] = t.start[i] + f*(t.end[i]-t.start[i])
		}
	} else {
		for i := 0; i < t.nvalues; i++ {
			t.buf[i] = t.path(f, t.channelPoints(i))
		}
	}
	t.write(t.buf[:t.nvalues])
}

// channelPoints gathers [start, waypoints..., end] for one channel into
// the preallocated scratch slice.
func (t *Tween) channelPoints(i int) []float64 {
	pts := t.pathScratch[:t.npoints+2]
	pts[0] = t.start[i]
	for w := 0; w < t.npoints; w++ {
		pts[w+1] = t.points[w*t.nvalues+i]
	}
	pts[t.npoints+1] = t.end[i]
	return pts
}

func (t *Tween) write(values []float64) {
	if t.killed || t.target == nil || t.acc == nil {
		return
	}
	t.acc.SetValues(t.target, t.tag, values)
}
