package motion

// EventType is a bitmask of state machine transitions. Values can be
// combined with bitwise OR when registering a callback
// (e.g. EventStart|EventComplete).
type EventType uint8

const (
	EventBegin        EventType = 1 << iota // first iteration entered, forward
	EventStart                              // an iteration entered, forward
	EventEnd                                // an iteration exited, forward
	EventComplete                           // last iteration exited, forward
	EventBackBegin                          // last iteration entered, backward
	EventBackStart                          // an iteration entered, backward
	EventBackEnd                            // an iteration exited, backward
	EventBackComplete                       // first iteration exited, backward
)

// EventAny matches every transition.
const EventAny EventType = 0xFF

// Callback receives state machine events. It runs synchronously inside the
// Update call that produced the transition, once per matching transition,
// in the order they occur.
type Callback func(ev EventType, n Node)

// String returns the conventional name of a single event bit.
func (e EventType) String() string {
	switch e {
	case EventBegin:
		return "begin"
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventComplete:
		return "complete"
	case EventBackBegin:
		return "back_begin"
	case EventBackStart:
		return "back_start"
	case EventBackEnd:
		return "back_end"
	case EventBackComplete:
		return "back_complete"
	default:
		return "mixed"
	}
}
