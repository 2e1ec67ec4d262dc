package motion

// Timeline composes child nodes — tweens or nested timelines — into one
// playable unit. Sequential timelines play children one after another,
// handing each child's leftover time straight to the next within the same
// update; parallel timelines share their clock with every child. Either
// kind repeats, yoyos, and nests like any other node.
//
// Build a timeline fluently on the root:
//
//	tl := engine.NewSequential().
//		Push(engine.To(obj, TagPosition, 1).Target(10, 0)).
//		PushPause(0.25).
//		BeginParallel().
//		Push(engine.To(obj, TagAlpha, 0.5).Target(0)).
//		Push(engine.To(obj, TagScale, 0.5).Target(2, 2)).
//		End().
//		Start()
//
// Misuse of the build surface (a negative pause, End without a matching
// Begin, closing an empty timeline, pushing an infinitely repeating
// child) is a programming error and panics.
type Timeline struct {
	baseTween

	mode     TimelineMode
	children []node
	// index tracks the active child in sequential playback.
	index int

	// current is the builder cursor: the innermost open timeline in this
	// root's nesting chain. Meaningful on the root only.
	current *Timeline
}

func newTimeline() *Timeline {
	tl := &Timeline{}
	tl.self = tl
	tl.current = tl
	return tl
}

// reset sanitizes the timeline for pool reuse. Children must already have
// been freed (Free is depth-first).
func (tl *Timeline) reset() {
	tl.resetBase()
	tl.mode = ModeSequential
	tl.children = tl.children[:0]
	tl.index = 0
	tl.current = tl
}

// Mode returns the composition mode, fixed at creation.
func (tl *Timeline) Mode() TimelineMode { return tl.mode }

// Children returns the direct children in insertion order. The slice is a
// copy; mutating it does not affect the timeline.
func (tl *Timeline) Children() []Node {
	out := make([]Node, len(tl.children))
	for i, c := range tl.children {
		out[i] = c
	}
	return out
}

// --- Construction ---

// Push appends a node to the innermost open timeline. The pushed node must
// not be started and must not repeat forever (an infinite child would make
// the parent's duration undefined).
func (tl *Timeline) Push(n Node) *Timeline {
	if n == nil {
		panic("motion: cannot push a nil node")
	}
	nn, ok := n.(node)
	if !ok {
		panic("motion: pushed node is not a Tween or Timeline")
	}
	tl.pushNode(nn)
	return tl
}

// PushPause appends a pure wait of d seconds. Pauses cannot be negative.
func (tl *Timeline) PushPause(d float64) *Timeline {
	if d < 0 {
		panic("motion: negative pause duration")
	}
	tl.pushNode(tl.engine.pauseTween(d))
	return tl
}

func (tl *Timeline) pushNode(n node) {
	if n.IsStarted() {
		panic("motion: cannot push a started node")
	}
	if n.RepeatCount() < 0 {
		panic("motion: cannot push an infinitely repeating node into a timeline")
	}
	cur := tl.current
	n.base().parent = cur
	cur.children = append(cur.children, n)
	recomputeDurations(cur)
}

// BeginSequential opens a nested sequential timeline; subsequent pushes
// land inside it until End.
func (tl *Timeline) BeginSequential() *Timeline {
	tl.begin(tl.engine.NewSequential())
	return tl
}

// BeginParallel opens a nested parallel timeline; subsequent pushes land
// inside it until End.
func (tl *Timeline) BeginParallel() *Timeline {
	tl.begin(tl.engine.NewParallel())
	return tl
}

func (tl *Timeline) begin(inner *Timeline) {
	cur := tl.current
	inner.parent = cur
	cur.children = append(cur.children, inner)
	tl.current = inner
}

// End closes the innermost open timeline and moves the cursor back to its
// container. Closing the root, or closing an empty timeline, panics.
func (tl *Timeline) End() *Timeline {
	cur := tl.current
	if cur == tl {
		panic("motion: End without a matching Begin")
	}
	if len(cur.children) == 0 {
		panic("motion: closing an empty timeline")
	}
	tl.current = cur.parent
	return tl
}

// recomputeDurations rebuilds the derived duration of the given timeline
// and every timeline above it. Durations are kept current on every push so
// a nested timeline's container sees its growth before End.
func recomputeDurations(from *Timeline) {
	for t := from; t != nil; t = t.parent {
		var d float64
		if t.mode == ModeSequential {
			for _, c := range t.children {
				d += c.FullDuration()
			}
		} else {
			for _, c := range t.children {
				if fd := c.FullDuration(); fd > d {
					d = fd
				}
			}
		}
		t.duration = d
	}
}

// Repeat makes the timeline play count additional iterations, restarting
// forward each time. Use RepeatInfinite only on root timelines.
func (tl *Timeline) Repeat(count int, delay float64) *Timeline {
	if tl.started {
		panic("motion: cannot change repeat on a started node")
	}
	tl.repeatCount = count
	tl.repeatDelay = delay
	tl.yoyo = false
	if tl.parent != nil {
		recomputeDurations(tl.parent)
	}
	return tl
}

// RepeatYoyo is like Repeat, but odd iterations play backward.
func (tl *Timeline) RepeatYoyo(count int, delay float64) *Timeline {
	tl.Repeat(count, delay)
	tl.yoyo = true
	return tl
}

// Delay sets the initial delay before the first iteration.
func (tl *Timeline) Delay(d float64) *Timeline {
	if tl.started {
		panic("motion: cannot change delay on a started node")
	}
	tl.delay = d
	if tl.parent != nil {
		recomputeDurations(tl.parent)
	}
	return tl
}

// On registers a callback for the given event mask and returns the timeline.
func (tl *Timeline) On(cb Callback, mask EventType) *Timeline {
	tl.SetCallback(cb, mask)
	return tl
}

// Start recursively starts every child, then the timeline itself. Starting
// with an unclosed nested timeline or no children panics.
func (tl *Timeline) Start() *Timeline {
	if tl.current != tl {
		panic("motion: Start with an open nested timeline (missing End)")
	}
	tl.startRecursive()
	return tl
}

func (tl *Timeline) startRecursive() {
	if len(tl.children) == 0 {
		panic("motion: timeline has no children")
	}
	for _, c := range tl.children {
		// Repeat may have been flipped to RepeatInfinite after the push.
		if c.RepeatCount() < 0 {
			panic("motion: cannot start a timeline with an infinitely repeating child")
		}
		switch n := c.(type) {
		case *Tween:
			n.start_()
		case *Timeline:
			n.startRecursive()
		}
	}
	tl.baseTween.start()
}

// Kill mutes the timeline and its whole subtree.
func (tl *Timeline) Kill() {
	tl.baseTween.Kill()
	for _, c := range tl.children {
		c.Kill()
	}
}

// KillTarget mutes every leaf in the subtree animating the given target.
// Timing structure is unaffected: siblings keep their schedule.
func (tl *Timeline) KillTarget(target any) {
	tl.killTarget(target)
}

func (tl *Timeline) killTarget(target any) bool {
	hit := false
	for _, c := range tl.children {
		if c.killTarget(target) {
			hit = true
		}
	}
	return hit
}

// ContainsTarget reports whether any leaf in the subtree animates target.
func (tl *Timeline) ContainsTarget(target any) bool {
	for _, c := range tl.children {
		if c.ContainsTarget(target) {
			return true
		}
	}
	return false
}

// Free releases children depth-first, then the timeline itself, so no
// pooled child can be reused while still referenced here.
func (tl *Timeline) Free() {
	for _, c := range tl.children {
		c.Free()
	}
	tl.children = tl.children[:0]
	if tl.engine != nil {
		tl.engine.timelines.Put(tl)
	}
}

// --- State machine hooks ---

func (tl *Timeline) initialize() {}

// step consumes up to dt seconds of the current iteration by delegating
// to the children. dt arrives already in the value frame — the caller
// mirrored it for a yoyo-reversed iteration — so it drives the children
// directly and moves the value clock by whatever they consumed.
func (tl *Timeline) step(dt float64) float64 {
	var over float64
	if tl.mode == ModeSequential {
		over = tl.stepSequential(dt)
	} else {
		over = tl.stepParallel(dt)
	}
	tl.currentTime += dt - over
	if tl.currentTime < 0 {
		tl.currentTime = 0
	} else if tl.currentTime > tl.duration {
		tl.currentTime = tl.duration
	}
	return over
}

// stepSequential hands the entire remaining delta to the active child.
// Whenever the child runs past one of its boundaries, the cursor moves to
// the neighbor on that side and the child's returned overflow feeds the
// new child in the same pass. The loop stops once the delta is exhausted,
// or at the first/last child — whose residue goes back to this timeline's
// own container.
func (tl *Timeline) stepSequential(cdt float64) float64 {
	rem := cdt
	for rem != 0 {
		child := tl.children[tl.index]
		over := child.Update(rem)
		if over == 0 {
			return 0
		}
		if over > 0 {
			if tl.index == len(tl.children)-1 {
				return over
			}
			tl.index++
		} else {
			if tl.index == 0 {
				return over
			}
			tl.index--
		}
		rem = over
	}
	return 0
}

// stepParallel gives every child the same delta — forward order when time
// advances, reverse order when it rewinds — and computes the timeline's
// own overflow from its clock alone. A child finishing early has its
// returned overflow absorbed back into itself, less the part past this
// timeline's own boundary, so each child tracks exactly how far past its
// own end the shared clock sits when the timeline later reverses.
func (tl *Timeline) stepParallel(cdt float64) float64 {
	pos := tl.currentTime
	var over float64
	if npos := pos + cdt; npos > tl.duration {
		over = npos - tl.duration
	} else if npos < 0 {
		over = npos
	}
	if cdt >= 0 {
		for _, c := range tl.children {
			if o := c.Update(cdt); o != 0 {
				c.base().absorb(o - over)
			}
		}
	} else {
		for i := len(tl.children) - 1; i >= 0; i-- {
			c := tl.children[i]
			if o := c.Update(cdt); o != 0 {
				c.base().absorb(o - over)
			}
		}
	}
	return over
}

// prepare positions the subtree for entry into iteration iter. An entry at
// the iteration's start needs every child rewound; an entry at its end
// needs every child fully played. Yoyo mirroring swaps which end is which.
func (tl *Timeline) prepare(iter int, forwardEntry bool) {
	atStart := forwardEntry != tl.reverse(iter)
	if atStart {
		tl.index = 0
		for _, c := range tl.children {
			c.rewind()
		}
	} else {
		tl.index = len(tl.children) - 1
		for _, c := range tl.children {
			c.fastForward()
		}
	}
}

// forceEdge snaps every child to the same edge, in insertion order.
func (tl *Timeline) forceEdge(end bool) {
	for _, c := range tl.children {
		c.forceEdge(end)
	}
}

func (tl *Timeline) rewind() {
	tl.rewindBase()
	tl.index = 0
	for _, c := range tl.children {
		c.rewind()
	}
}

func (tl *Timeline) fastForward() {
	tl.fastForwardBase()
	if tl.reverse(tl.iteration) {
		// The last iteration played mirrored, so the fully played subtree
		// sits back at its own start.
		tl.index = 0
		for _, c := range tl.children {
			c.rewind()
		}
	} else {
		tl.index = len(tl.children) - 1
		for _, c := range tl.children {
			c.fastForward()
		}
	}
}
