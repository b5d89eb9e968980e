package tiling

// EventType identifies a pointer event.
type EventType int

const (
	PointerPress EventType = iota
	PointerMove
	PointerRelease
)

func (e EventType) String() string {
	switch e {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	}
	return "unknown"
}

// PointerEvent is a pointer position in container coordinates.
type PointerEvent struct {
	Type EventType
	X, Y int
}

// Listener receives dispatched pointer events.
type Listener func(PointerEvent)

type listenerEntry struct {
	id  int
	typ EventType
	fn  Listener
}

// Document is the container-wide pointer event target. Drags listen here
// rather than on the thin handle so they keep tracking when the pointer
// leaves it. It is not safe for concurrent use; hosts dispatch from their
// event loop.
type Document struct {
	nextID    int
	listeners []listenerEntry
}

// NewDocument creates a Document with no listeners.
func NewDocument() *Document {
	return &Document{}
}

// Subscribe registers fn for events of the given type. The returned
// Subscription must be closed to detach it.
func (d *Document) Subscribe(typ EventType, fn Listener) *Subscription {
	d.nextID++
	d.listeners = append(d.listeners, listenerEntry{id: d.nextID, typ: typ, fn: fn})
	return &Subscription{doc: d, id: d.nextID}
}

// Dispatch delivers ev to every listener of its type, in subscription order.
// Listeners may close subscriptions while being dispatched.
func (d *Document) Dispatch(ev PointerEvent) {
	snapshot := make([]listenerEntry, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		if l.typ == ev.Type && d.has(l.id) {
			l.fn(ev)
		}
	}
}

// Listeners returns how many listeners are attached for the event type.
func (d *Document) Listeners(typ EventType) int {
	n := 0
	for _, l := range d.listeners {
		if l.typ == typ {
			n++
		}
	}
	return n
}

func (d *Document) has(id int) bool {
	for _, l := range d.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (d *Document) remove(id int) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Subscription detaches its listener when closed.
type Subscription struct {
	doc *Document
	id  int
}

// Close detaches the listener. Closing twice, or closing a nil
// Subscription, is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.doc == nil {
		return
	}
	s.doc.remove(s.id)
	s.doc = nil
}
