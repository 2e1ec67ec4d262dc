package motion

// State identifies the phase a node currently occupies within its own
// lifetime. Transitions are driven exclusively by [Node.Update].
type State uint8

const (
	StateIdle    State = iota // built but not started
	StateDelay                // waiting out the initial delay
	StateRun                  // inside an iteration
	StateBetween              // waiting out a repeat delay between iterations
	StateDone                 // finished playing forward
	StateBefore               // rewound past its own start
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDelay:
		return "delay"
	case StateRun:
		return "run"
	case StateBetween:
		return "between"
	case StateDone:
		return "done"
	case StateBefore:
		return "before"
	default:
		return "unknown"
	}
}

// TimelineMode selects how a Timeline drives its children.
// Parallel describes simultaneity of effect, not concurrent execution:
// every update runs to completion synchronously on the calling goroutine.
type TimelineMode uint8

const (
	ModeSequential TimelineMode = iota // children play one after another
	ModeParallel                       // children share the timeline's clock
)

// RepeatInfinite makes a tween or timeline repeat forever. Infinite nodes
// cannot be pushed into a timeline: their full duration is undefined.
const RepeatInfinite = -1

// Node is a playable animation: a leaf [Tween] or a composite [Timeline].
// Only those two types implement it.
type Node interface {
	// Update advances the node by dt seconds. Positive dt plays forward,
	// negative dt rewinds. The return value is the portion of dt the node
	// could not consume on its own — zero while the node is mid-flight,
	// signed with the direction of travel once it runs past a boundary.
	// Phase transitions fire only when time crosses a boundary; landing
	// exactly on one leaves the node at the edge until the next delta.
	Update(dt float64) float64

	// Pause freezes the node; updates become no-ops until Resume.
	Pause()
	// Resume lifts a previous Pause.
	Resume()
	// Kill mutes the node and its subtree: time still flows through it so
	// that surrounding children keep their timing, but no property writes
	// or callbacks occur, and a Manager discards it on the next update.
	Kill()
	// Free returns the node (children first, depth-first) to its engine's
	// pools. The node must not be used afterwards.
	Free()

	State() State
	// Duration is the length of one forward iteration, excluding delays.
	Duration() float64
	// FullDuration is the node's whole lifetime:
	// delay + duration*(repeat+1) + repeatDelay*repeat, or -1 when the
	// node repeats forever.
	FullDuration() float64
	// StartDelay is the pause before the first iteration begins.
	StartDelay() float64
	// CurrentTime is the exact accumulated time within the current phase.
	CurrentTime() float64
	Iteration() int
	RepeatCount() int
	IsYoyo() bool
	IsStarted() bool
	IsFinished() bool
	IsPaused() bool
	IsKilled() bool

	// SetCallback registers cb for every event matching mask; a zero mask
	// means EventComplete. Events are delivered synchronously, inside the
	// Update call, in transition order.
	SetCallback(cb Callback, mask EventType)
	// ContainsTarget reports whether the node (or any descendant) animates
	// the given target. Targets are compared by identity, so they should
	// be pointers.
	ContainsTarget(target any) bool

	base() *baseTween
}

// node is the internal face of Tween and Timeline: the hooks the shared
// state machine dispatches through.
type node interface {
	Node

	// initialize captures start values when the first iteration is entered.
	initialize()
	// step consumes up to dt seconds inside the current iteration, keeping
	// currentTime in [0, duration], applies values, and returns the signed
	// remainder.
	step(dt float64) float64
	// prepare positions the node's subtree for entry into iteration iter,
	// from the iteration's beginning (forwardEntry) or its end.
	prepare(iter int, forwardEntry bool)
	// forceEdge snaps property values to the start or end edge exactly.
	forceEdge(end bool)
	// rewind silently repositions the subtree at its pristine pre-play
	// state, delays unconsumed.
	rewind()
	// fastForward silently repositions the subtree at its fully played
	// state, as if every iteration had run.
	fastForward()
	// killTarget mutes every leaf animating the given target.
	killTarget(target any) bool
}
