package tiling

import "fmt"

// ResolveFunc re-resolves and re-renders a topology after its flex changed.
type ResolveFunc func(t *Topology)

// Resizer reproportions the neighbours of a separator while it is dragged.
// At most one drag is active; its move and release listeners live on the
// Document only for the duration of the drag.
type Resizer struct {
	doc     *Document
	resolve ResolveFunc
	drag    *drag
}

type drag struct {
	topo *Topology
	sep  int
	grab int // pointer offset from the handle's centre line at press time
	move *Subscription
	up   *Subscription
}

// NewResizer creates a Resizer listening on doc. resolve is invoked
// synchronously after every pointer move.
func NewResizer(doc *Document, resolve ResolveFunc) *Resizer {
	return &Resizer{doc: doc, resolve: resolve}
}

// Begin starts dragging separator sep of t. It satisfies DragFunc so it can
// be handed to Build directly. Any drag still attached is detached first.
func (r *Resizer) Begin(t *Topology, sep int, ev PointerEvent) {
	r.Cancel()

	s := &t.Sections[sep]
	if !s.IsSeparator() {
		panic(fmt.Sprintf("tiling: section %d of %s is not a separator", sep, t.Preset))
	}
	if len(s.ResizePos) == 0 || len(s.ResizeNeg) == 0 {
		panic(fmt.Sprintf("tiling: separator %d of %s has no resize neighbours", sep, t.Preset))
	}

	d := &drag{topo: t, sep: sep}
	if s.Orientation == Vertical {
		d.grab = ev.X - (s.Rect.Left + t.Thickness/2)
	} else {
		d.grab = ev.Y - (s.Rect.Top + t.Thickness/2)
	}
	d.move = r.doc.Subscribe(PointerMove, r.onMove)
	d.up = r.doc.Subscribe(PointerRelease, r.onRelease)
	r.drag = d
}

// Dragging reports whether a drag is in progress.
func (r *Resizer) Dragging() bool {
	return r.drag != nil
}

// Separator returns the index of the separator being dragged, or -1.
func (r *Resizer) Separator() int {
	if r.drag == nil {
		return -1
	}
	return r.drag.sep
}

// Cancel detaches the active drag, keeping whatever flex it last applied.
func (r *Resizer) Cancel() {
	if r.drag == nil {
		return
	}
	r.drag.move.Close()
	r.drag.up.Close()
	r.drag = nil
}

func (r *Resizer) onMove(ev PointerEvent) {
	d := r.drag
	if d == nil {
		return
	}
	if Drag(d.topo, d.sep, ev, d.grab) && r.resolve != nil {
		r.resolve(d.topo)
	}
}

func (r *Resizer) onRelease(PointerEvent) {
	r.Cancel()
}

// Drag moves separator sep so its boundary line follows the pointer, offset
// by grab pixels. The band is measured in flex space against the container of
// the last Resolve, so a press that does not move leaves the handle in place.
// Both sides are clamped to the minimum frame size with the remainder going
// to the other side. It reports whether flex changed.
func Drag(t *Topology, sep int, ev PointerEvent, grab int) bool {
	s := &t.Sections[sep]
	if len(s.ResizePos) == 0 || len(s.ResizeNeg) == 0 {
		panic(fmt.Sprintf("tiling: separator %d of %s has no resize neighbours", sep, t.Preset))
	}
	p0 := s.ResizePos[0]
	pos := &t.Sections[p0]
	neg := &t.Sections[s.ResizeNeg[0]]
	ox, oy := origins(t)

	var total, start, extent, minimum float64
	var pointer int
	if s.Orientation == Vertical {
		total = pos.FlexWidth + neg.FlexWidth
		start = float64(t.width) * ox[p0]
		extent = float64(t.width) * total
		pointer = ev.X - grab
		minimum = MinFrameWidth
	} else {
		total = pos.FlexHeight + neg.FlexHeight
		start = float64(t.height) * oy[p0]
		extent = float64(t.height) * total
		pointer = ev.Y - grab
		minimum = MinFrameHeight
	}
	if extent <= 0 {
		return false
	}

	rel := float64(pointer) - start
	lead, trail := split(rel/extent*total, total, minimum)
	for _, i := range s.ResizePos {
		setFlex(&t.Sections[i], s.Orientation, lead)
	}
	for _, i := range s.ResizeNeg {
		setFlex(&t.Sections[i], s.Orientation, trail)
	}
	return true
}

// split divides total into lead and trail with neither below minimum. When
// total cannot hold two minimums it is halved.
func split(lead, total, minimum float64) (float64, float64) {
	if total < 2*minimum {
		return total / 2, total / 2
	}
	trail := total - lead
	if lead < minimum {
		return minimum, total - minimum
	}
	if trail < minimum {
		return total - minimum, minimum
	}
	return lead, trail
}

func setFlex(s *Section, o Orientation, v float64) {
	if o == Vertical {
		s.FlexWidth = v
	} else {
		s.FlexHeight = v
	}
}
