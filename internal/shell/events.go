package shell

import "go.uber.org/zap"

// EventKind identifies what an Event carries.
type EventKind int

const (
	EventCommand EventKind = iota
	EventKey
	EventTitleChanged
	EventFullScreenRequested
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventKey:
		return "key"
	case EventTitleChanged:
		return "title-changed"
	case EventFullScreenRequested:
		return "fullscreen-requested"
	default:
		return "unknown"
	}
}

// Event is a UI input or browser signal delivered to the window.
type Event struct {
	Kind    EventKind
	Command CommandID
	Key     Shortcut
	Title   string
	Request FullScreenRequest
}

// dispatcher maps event kinds to handlers and runs them synchronously on the
// caller's goroutine, which is always the UI loop.
type dispatcher struct {
	handlers map[EventKind]func(Event)
	log      *zap.Logger
}

func newDispatcher(log *zap.Logger) *dispatcher {
	return &dispatcher{handlers: make(map[EventKind]func(Event)), log: log}
}

func (d *dispatcher) handle(kind EventKind, fn func(Event)) {
	d.handlers[kind] = fn
}

func (d *dispatcher) dispatch(ev Event) bool {
	fn, ok := d.handlers[ev.Kind]
	if !ok {
		d.log.Debug("No handler for event", zap.Stringer("kind", ev.Kind))
		return false
	}
	fn(ev)
	return true
}
