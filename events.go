package cloth

// EventType identifies a kind of simulation event.
type EventType uint8

const (
	EventPathStart EventType = iota // a cut path was started
	EventPathEnd                    // a cut path was finalized (Cut holds the outcome)
	EventCut                        // constraints were severed
	EventReset                      // the mesh was rebuilt
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPathStart:
		return "path-start"
	case EventPathEnd:
		return "path-end"
	case EventCut:
		return "cut"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event carries simulation events to an EventSink.
type Event struct {
	Type  EventType
	Frame uint64
	// Point is the first path point (EventPathStart).
	Point Vec2
	// Points is the number of path points (EventPathEnd, EventCut).
	Points int
	// Depth is the cut depth fraction in effect (EventPathEnd, EventCut).
	Depth float64
	// Cut is the cut outcome (EventPathEnd, EventCut).
	Cut CutResult
	// Particles and Constraints describe the rebuilt mesh (EventReset).
	Particles   int
	Constraints int
}

// EventSink is the interface for optional ECS integration.
// When set on a Sim, events are forwarded to it synchronously.
type EventSink interface {
	EmitEvent(event Event)
}
