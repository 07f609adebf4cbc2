package game

// EventType identifies a simulation event consumed by the UI layer.
type EventType int

const (
	// EventInitialized fires once when the engine is constructed.
	EventInitialized EventType = iota

	// EventLevelStarted fires on every StartLevel. Carries Level.
	EventLevelStarted

	// EventLevelComplete fires exactly once per completed level. Carries Level.
	EventLevelComplete

	// EventPaused / EventResumed bracket pause toggles.
	EventPaused
	EventResumed

	// EventProgressUpdate fires every tick while playing. Carries Progress.
	EventProgressUpdate

	// EventReturnedToMenu fires when the session goes back to the menu.
	EventReturnedToMenu
)

// Event is the payload delivered to subscribers.
type Event struct {
	Type     EventType
	Level    int     // level index, for level events
	Progress float64 // in [0, 1], for progress events
}

// Handler is a subscriber callback.
type Handler func(Event)

// Dispatcher holds per-type subscriber lists. Emission iterates a snapshot
// of the list and isolates handler panics so one failing observer cannot
// abort the tick. Single-threaded like the rest of the core.
type Dispatcher struct {
	handlers map[EventType][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers fn for events of type t.
func (d *Dispatcher) Subscribe(t EventType, fn Handler) {
	d.handlers[t] = append(d.handlers[t], fn)
}

// Emit delivers ev to all subscribers of its type.
func (d *Dispatcher) Emit(ev Event) {
	snapshot := d.handlers[ev.Type]
	for _, fn := range snapshot {
		deliver(fn, ev)
	}
}

func deliver(fn Handler, ev Event) {
	defer func() {
		_ = recover() // a failing observer must not take the tick down
	}()
	fn(ev)
}
