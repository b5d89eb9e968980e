package tiling

// Kind distinguishes frames from separators.
type Kind int

const (
	KindFrame Kind = iota
	KindSeparator
)

// Orientation is the direction a separator runs in.
// A Vertical separator is a column dragged left/right;
// a Horizontal separator is a row dragged up/down.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// DragFunc is bound to every separator as its pointer-down handler.
type DragFunc func(t *Topology, sep int, ev PointerEvent)

// Section is a node of the layout graph. Neighbours are referenced by index
// into the owning Topology's Sections.
type Section struct {
	Kind        Kind
	Orientation Orientation // separators only

	// FlexWidth/FlexHeight are proportions of the container. A Vertical
	// separator only uses FlexHeight, a Horizontal one only FlexWidth.
	FlexWidth  float64
	FlexHeight float64

	Rect Rect

	// ResizePos holds the sections this one is positioned from, all of which
	// precede it. For separators ResizePos[0] is the positional reference and
	// the whole list grows when the handle moves away from it.
	ResizePos []int
	// ResizeNeg holds the sections on the far side of a separator.
	ResizeNeg []int

	onPointerDown DragFunc
}

// IsFrame reports whether the section is a frame.
func (s Section) IsFrame() bool {
	return s.Kind == KindFrame
}

// IsSeparator reports whether the section is a separator.
func (s Section) IsSeparator() bool {
	return s.Kind == KindSeparator
}

// Label returns a short name for the section kind.
func (s Section) Label() string {
	if s.IsFrame() {
		return "frame"
	}
	if s.Orientation == Vertical {
		return "vsep"
	}
	return "hsep"
}

// Topology is the ordered section graph for one preset.
type Topology struct {
	Preset    Preset
	Thickness int
	Sections  []Section

	// container size of the last Resolve
	width, height int
}

// Frames returns the indices of all frames in order. The n-th entry is the
// slot the host fills with its n-th pane.
func (t *Topology) Frames() []int {
	var frames []int
	for i := range t.Sections {
		if t.Sections[i].IsFrame() {
			frames = append(frames, i)
		}
	}
	return frames
}

// Separators returns the indices of all separators in order.
func (t *Topology) Separators() []int {
	var seps []int
	for i := range t.Sections {
		if t.Sections[i].IsSeparator() {
			seps = append(seps, i)
		}
	}
	return seps
}

// FrameAt returns the frame slot under the point, or -1.
func (t *Topology) FrameAt(x, y int) int {
	for slot, i := range t.Frames() {
		if t.Sections[i].Rect.Contains(x, y) {
			return slot
		}
	}
	return -1
}

// SeparatorAt returns the index of the separator under the point, or -1.
func (t *Topology) SeparatorAt(x, y int) int {
	for i := range t.Sections {
		s := &t.Sections[i]
		if s.IsSeparator() && s.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// PointerDown routes a press to the separator under it, invoking its bound
// drag handler. It reports whether a separator was hit.
func (t *Topology) PointerDown(ev PointerEvent) bool {
	i := t.SeparatorAt(ev.X, ev.Y)
	if i < 0 {
		return false
	}
	if h := t.Sections[i].onPointerDown; h != nil {
		h(t, i, ev)
	}
	return true
}

// Clone returns a deep copy of the topology. Drag handlers are shared.
func (t *Topology) Clone() *Topology {
	c := &Topology{
		Preset:    t.Preset,
		Thickness: t.Thickness,
		Sections:  make([]Section, len(t.Sections)),
		width:     t.width,
		height:    t.height,
	}
	for i, s := range t.Sections {
		s.ResizePos = append([]int(nil), s.ResizePos...)
		s.ResizeNeg = append([]int(nil), s.ResizeNeg...)
		c.Sections[i] = s
	}
	return c
}
