package motion

// baseTween is the state machine shared by Tween and Timeline. It owns all
// time accounting: delay, iterations, repeat delays, yoyo direction, and
// the signed overflow handed back to whichever container drives the node.
//
// The lifetime tape of a node looks like
//
//	[delay][iter 0][repeatDelay][iter 1] ... [iter repeatCount]
//
// and currentTime is the exact accumulated position inside the current
// phase. Boundary checks compare against that accumulated sum directly,
// never a recomputation, so many small deltas cannot drift past a phase.
type baseTween struct {
	duration    float64
	delay       float64
	repeatCount int
	repeatDelay float64
	yoyo        bool

	state     State
	iteration int
	// currentTime is the exact accumulated clock of the current phase.
	// Inside RUN it is the value-frame clock: it runs 0..duration for a
	// normal iteration and duration..0 for a yoyo-reversed one, so value
	// lookups never need to mirror it again.
	currentTime float64
	// overshoot is time absorbed past a terminal boundary (StateDone or
	// StateBefore). Parallel timelines and the Manager park residue here
	// so a later reversal pays it down before the node re-enters RUN.
	overshoot float64

	started     bool
	initialized bool
	finished    bool
	paused      bool
	killed      bool

	callback     Callback
	callbackMask EventType

	// parent is a non-owning back-reference, used only to resolve the
	// builder cursor during Timeline.End.
	parent *Timeline

	engine *Engine
	self   node
}

func (b *baseTween) base() *baseTween { return b }

// State returns the phase the node currently occupies.
func (b *baseTween) State() State { return b.state }

// Duration returns the length of one iteration, excluding delays.
func (b *baseTween) Duration() float64 { return b.duration }

// StartDelay returns the initial delay before the first iteration.
func (b *baseTween) StartDelay() float64 { return b.delay }

// CurrentTime returns the accumulated time within the current phase.
func (b *baseTween) CurrentTime() float64 { return b.currentTime }

// Iteration returns the zero-based index of the current iteration.
func (b *baseTween) Iteration() int { return b.iteration }

// RepeatCount returns the configured number of additional iterations,
// or RepeatInfinite.
func (b *baseTween) RepeatCount() int { return b.repeatCount }

// IsYoyo reports whether odd iterations play backward.
func (b *baseTween) IsYoyo() bool { return b.yoyo }

func (b *baseTween) IsStarted() bool  { return b.started }
func (b *baseTween) IsFinished() bool { return b.finished }
func (b *baseTween) IsPaused() bool   { return b.paused }
func (b *baseTween) IsKilled() bool   { return b.killed }

// FullDuration returns the node's whole lifetime, delay and repeats
// included, or -1 when the node repeats forever.
func (b *baseTween) FullDuration() float64 {
	if b.repeatCount < 0 {
		return -1
	}
	return b.delay + b.duration*float64(b.repeatCount+1) + b.repeatDelay*float64(b.repeatCount)
}

// Pause freezes the node until Resume. A paused node consumes no time.
func (b *baseTween) Pause() { b.paused = true }

// Resume lifts a previous Pause.
func (b *baseTween) Resume() { b.paused = false }

// Kill mutes the node and its subtree. See Node.Kill.
func (b *baseTween) Kill() { b.killed = true }

// SetCallback registers cb for every event matching mask. A zero mask
// means EventComplete. Passing a nil callback clears the registration.
func (b *baseTween) SetCallback(cb Callback, mask EventType) {
	if mask == 0 {
		mask = EventComplete
	}
	b.callback = cb
	b.callbackMask = mask
}

// reverse reports whether iteration iter plays with its value axis
// mirrored. Only yoyo nodes reverse, on odd iterations.
func (b *baseTween) reverse(iter int) bool {
	return b.yoyo && iter%2 == 1
}

func (b *baseTween) hasMoreIterations() bool {
	return b.repeatCount < 0 || b.iteration < b.repeatCount
}

func (b *baseTween) fire(ev EventType) {
	if b.killed {
		return
	}
	if b.callback != nil && b.callbackMask&ev != 0 {
		b.callback(ev, b.self)
	}
}

// start arms the node. The first Update crosses into DELAY (or straight
// into RUN when the delay is zero or negative).
func (b *baseTween) start() {
	if b.started {
		panic("motion: node already started")
	}
	b.started = true
	b.initialized = false
	b.finished = false
	b.state = StateDelay
	b.iteration = 0
	b.currentTime = 0
	b.overshoot = 0
}

// absorb parks overflow a container chose not to spend. Legal only once
// the node sits at a terminal boundary; the residue is paid down before
// the node re-enters RUN from the opposite direction.
func (b *baseTween) absorb(over float64) {
	b.overshoot += over
}

// Update advances the node by dt seconds and returns the unconsumed
// remainder. See Node.Update for the full contract. The loop crosses as
// many phase boundaries as the delta covers: a single large dt may finish
// a delay, a whole iteration, and part of the next in one call.
func (b *baseTween) Update(dt float64) float64 {
	if !b.started || b.paused {
		return 0
	}
	rem := dt
	for rem != 0 {
		switch b.state {
		case StateDelay:
			rem = b.stepDelay(rem)
		case StateRun:
			rem = b.stepRun(rem)
		case StateBetween:
			rem = b.stepBetween(rem)
		case StateDone:
			if rem > 0 {
				return rem
			}
			if b.overshoot > 0 {
				if -rem <= b.overshoot {
					b.overshoot += rem
					return 0
				}
				rem += b.overshoot
				b.overshoot = 0
			}
			// Relaunch backward into the last iteration. The value clock
			// resumes where that iteration left it: its end for a normal
			// iteration, its start for a mirrored one.
			b.finished = false
			b.state = StateRun
			if b.reverse(b.iteration) {
				b.currentTime = 0
			} else {
				b.currentTime = b.duration
			}
			b.fire(EventBackBegin)
			b.fire(EventBackStart)
		case StateBefore:
			if rem < 0 {
				return rem
			}
			if b.overshoot < 0 {
				if rem <= -b.overshoot {
					b.overshoot += rem
					return 0
				}
				rem += b.overshoot
				b.overshoot = 0
			}
			// Relaunch forward. The initial delay replays so a container's
			// accounting stays symmetric with the backward traversal.
			b.finished = false
			b.state = StateDelay
			b.currentTime = 0
		default:
			return 0
		}
	}
	return 0
}

// stepDelay consumes time inside the initial delay. Negative delays
// contribute nothing at run time (they only shorten FullDuration, which
// is what produces overlap inside parallel timelines).
func (b *baseTween) stepDelay(rem float64) float64 {
	if rem >= 0 {
		need := b.delay - b.currentTime
		if need > 0 && rem < need {
			b.currentTime += rem
			return 0
		}
		if need > 0 {
			rem -= need
		}
		b.enterForward(0)
		return rem
	}
	if -rem < b.currentTime {
		b.currentTime += rem
		return 0
	}
	rem += b.currentTime
	b.currentTime = 0
	b.state = StateBefore
	if b.initialized {
		b.finished = true
		b.fire(EventBackComplete)
	}
	return rem
}

// stepBetween consumes time inside a repeat delay. While in this state,
// iteration already names the upcoming (higher-numbered) iteration.
func (b *baseTween) stepBetween(rem float64) float64 {
	if rem >= 0 {
		need := b.repeatDelay - b.currentTime
		if rem < need {
			b.currentTime += rem
			return 0
		}
		rem -= need
		b.enterForward(b.iteration)
		return rem
	}
	if -rem < b.currentTime {
		b.currentTime += rem
		return 0
	}
	rem += b.currentTime
	b.iteration--
	b.enterBackward(b.iteration)
	return rem
}

// stepRun delegates to the concrete type's step hook and handles the
// iteration boundary it may report. The hook works in the iteration's
// value frame: for a yoyo-reversed iteration, forward travel of the
// parent clock is backward travel of the values, so the delta and the
// returned overflow are mirrored on the way in and out.
func (b *baseTween) stepRun(rem float64) float64 {
	rev := b.reverse(b.iteration)
	inner := rem
	if rev {
		inner = -rem
	}
	over := b.self.step(inner)
	if rev {
		over = -over
	}
	if over == 0 {
		return 0
	}
	if over > 0 {
		// Iteration finished forward.
		b.fire(EventEnd)
		if b.hasMoreIterations() {
			b.iteration++
			if b.repeatDelay > 0 {
				b.state = StateBetween
				b.currentTime = 0
			} else {
				b.enterForward(b.iteration)
			}
			return over
		}
		b.state = StateDone
		b.finished = true
		b.fire(EventComplete)
		return over
	}
	// Iteration exited backward at its start.
	b.fire(EventBackEnd)
	if b.iteration > 0 {
		if b.repeatDelay > 0 {
			b.state = StateBetween
			b.currentTime = b.repeatDelay
		} else {
			b.iteration--
			b.enterBackward(b.iteration)
		}
		return over
	}
	if b.delay > 0 {
		b.state = StateDelay
		b.currentTime = b.delay
		return over
	}
	b.state = StateBefore
	b.finished = true
	b.fire(EventBackComplete)
	return over
}

// enterForward begins iteration iter at its forward entry: value clock 0
// for a normal iteration, value clock duration for a mirrored one.
func (b *baseTween) enterForward(iter int) {
	b.state = StateRun
	b.iteration = iter
	if b.reverse(iter) {
		b.currentTime = b.duration
	} else {
		b.currentTime = 0
	}
	if !b.initialized {
		b.self.initialize()
		b.initialized = true
	}
	b.self.prepare(iter, true)
	b.self.forceEdge(b.reverse(iter))
	if iter == 0 {
		b.fire(EventBegin)
	}
	b.fire(EventStart)
}

// enterBackward begins iteration iter at its backward entry: value clock
// duration for a normal iteration, value clock 0 for a mirrored one.
func (b *baseTween) enterBackward(iter int) {
	b.state = StateRun
	b.iteration = iter
	if b.reverse(iter) {
		b.currentTime = 0
	} else {
		b.currentTime = b.duration
	}
	b.self.prepare(iter, false)
	b.self.forceEdge(!b.reverse(iter))
	b.fire(EventBackStart)
}

// rewindBase silently repositions the machine at its pristine pre-play
// state. Concrete types reposition their subtrees around it.
func (b *baseTween) rewindBase() {
	b.state = StateDelay
	b.iteration = 0
	b.currentTime = 0
	b.overshoot = 0
	b.finished = false
}

// fastForwardBase silently repositions the machine at its fully played
// state. Never called on infinite nodes (timelines reject them).
func (b *baseTween) fastForwardBase() {
	b.state = StateDone
	b.iteration = b.repeatCount
	if b.iteration < 0 {
		b.iteration = 0
	}
	if b.reverse(b.iteration) {
		b.currentTime = 0
	} else {
		b.currentTime = b.duration
	}
	b.overshoot = 0
	b.finished = true
}

// resetBase restores pool defaults. Part of the pool's sanitize contract:
// no field survives into the next Take.
func (b *baseTween) resetBase() {
	b.duration = 0
	b.delay = 0
	b.repeatCount = 0
	b.repeatDelay = 0
	b.yoyo = false
	b.state = StateIdle
	b.iteration = 0
	b.currentTime = 0
	b.overshoot = 0
	b.started = false
	b.initialized = false
	b.finished = false
	b.paused = false
	b.killed = false
	b.callback = nil
	b.callbackMask = 0
	b.parent = nil
}
