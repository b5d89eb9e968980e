package tiling

const (
	whole   = 1.0
	half    = 0.5
	third   = 1.0 / 3
	quarter = 0.25
)

// catalog maps each preset to its hand-authored section list. Every builder
// lists sections so that each ResizePos entry precedes its dependent.
var catalog = [presetCount]func() []Section{
	Single:            single,
	DoubleVert:        doubleVert,
	DoubleHoriz:       doubleHoriz,
	TripleVert:        tripleVert,
	TripleVertLeft:    tripleVertLeft,
	TripleVertRight:   tripleVertRight,
	TripleHoriz:       tripleHoriz,
	TripleHorizTop:    tripleHorizTop,
	TripleHorizBottom: tripleHorizBottom,
	QuadSqV:           quadSqV,
	QuadSqH:           quadSqH,
	QuadVert:          quadVert,
	QuadHoriz:         quadHoriz,
	QuadLeft:          quadLeft,
	QuadRight:         quadRight,
	QuadTop:           quadTop,
	QuadBottom:        quadBottom,
}

// Build constructs a fresh topology for the preset and binds onDrag as the
// pointer-down handler of every separator. Unknown presets produce the
// Single topology; callers can detect this by comparing t.Preset.
func Build(p Preset, onDrag DragFunc) *Topology {
	if !p.Valid() {
		p = Single
	}
	t := &Topology{
		Preset:    p,
		Thickness: DefaultSeparatorThickness,
		Sections:  catalog[p](),
	}
	for i := range t.Sections {
		if t.Sections[i].IsSeparator() {
			t.Sections[i].onPointerDown = onDrag
		}
	}
	return t
}

// frame creates a frame positioned after the given separators.
func frame(fw, fh float64, refs ...int) Section {
	return Section{Kind: KindFrame, FlexWidth: fw, FlexHeight: fh, ResizePos: refs}
}

// vsep creates a column handle spanning fh of the container height.
func vsep(fh float64, pos, neg []int) Section {
	return Section{Kind: KindSeparator, Orientation: Vertical, FlexHeight: fh, ResizePos: pos, ResizeNeg: neg}
}

// hsep creates a row handle spanning fw of the container width.
func hsep(fw float64, pos, neg []int) Section {
	return Section{Kind: KindSeparator, Orientation: Horizontal, FlexWidth: fw, ResizePos: pos, ResizeNeg: neg}
}

func idx(i ...int) []int { return i }

// ┌───┐
// │ 0 │
// └───┘
func single() []Section {
	return []Section{
		frame(whole, whole),
	}
}

// ┌───┬───┐
// │ 0 1 2 │
// └───┴───┘
func doubleVert() []Section {
	return []Section{
		frame(half, whole),
		vsep(whole, idx(0), idx(2)),
		frame(half, whole, 1),
	}
}

// ┌───┐
// │ 0 │
// ├─1─┤
// │ 2 │
// └───┘
func doubleHoriz() []Section {
	return []Section{
		frame(whole, half),
		hsep(whole, idx(0), idx(2)),
		frame(whole, half, 1),
	}
}

// ┌───┬───┬───┐
// │ 0 1 2 3 4 │
// └───┴───┴───┘
func tripleVert() []Section {
	return []Section{
		frame(third, whole),
		vsep(whole, idx(0), idx(2)),
		frame(third, whole, 1),
		vsep(whole, idx(2), idx(4)),
		frame(third, whole, 3),
	}
}

// ┌───┬───┐
// │   │ 2 │
// │ 0 1─3─┤
// │   │ 4 │
// └───┴───┘
func tripleVertLeft() []Section {
	return []Section{
		frame(half, whole),
		vsep(whole, idx(0), idx(2, 3, 4)),
		frame(half, half, 1),
		hsep(half, idx(2), idx(4)),
		frame(half, half, 1, 3),
	}
}

// ┌───┬───┐
// │ 0 │   │
// ├─1─3 4 │
// │ 2 │   │
// └───┴───┘
func tripleVertRight() []Section {
	return []Section{
		frame(half, half),
		hsep(half, idx(0), idx(2)),
		frame(half, half, 1),
		vsep(whole, idx(0, 1, 2), idx(4)),
		frame(half, whole, 3),
	}
}

// ┌───┐
// │ 0 │
// ├─1─┤
// │ 2 │
// ├─3─┤
// │ 4 │
// └───┘
func tripleHoriz() []Section {
	return []Section{
		frame(whole, third),
		hsep(whole, idx(0), idx(2)),
		frame(whole, third, 1),
		hsep(whole, idx(2), idx(4)),
		frame(whole, third, 3),
	}
}

// ┌───────┐
// │   0   │
// ├───1───┤
// │ 2 3 4 │
// └───┴───┘
func tripleHorizTop() []Section {
	return []Section{
		frame(whole, half),
		hsep(whole, idx(0), idx(2, 3, 4)),
		frame(half, half, 1),
		vsep(half, idx(2), idx(4)),
		frame(half, half, 1, 3),
	}
}

// ┌───┬───┐
// │ 0 1 2 │
// ├───3───┤
// │   4   │
// └───────┘
func tripleHorizBottom() []Section {
	return []Section{
		frame(half, half),
		vsep(half, idx(0), idx(2)),
		frame(half, half, 1),
		hsep(whole, idx(0, 1, 2), idx(4)),
		frame(whole, half, 3),
	}
}

// ┌───┬───┐
// │ 0 │ 4 │
// ├─1─3─5─┤
// │ 2 │ 6 │
// └───┴───┘
// The vertical handle spans the full height; each column has its own row handle.
func quadSqV() []Section {
	return []Section{
		frame(half, half),
		hsep(half, idx(0), idx(2)),
		frame(half, half, 1),
		vsep(whole, idx(0, 1, 2), idx(4, 5, 6)),
		frame(half, half, 3),
		hsep(half, idx(4), idx(6)),
		frame(half, half, 3, 5),
	}
}

// ┌───┬───┐
// │ 0 1 2 │
// ├───3───┤
// │ 4 5 6 │
// └───┴───┘
// The horizontal handle spans the full width; each row has its own column handle.
func quadSqH() []Section {
	return []Section{
		frame(half, half),
		vsep(half, idx(0), idx(2)),
		frame(half, half, 1),
		hsep(whole, idx(0, 1, 2), idx(4, 5, 6)),
		frame(half, half, 3),
		vsep(half, idx(4), idx(6)),
		frame(half, half, 3, 5),
	}
}

// Four columns: 0, 2, 4, 6 separated by handles 1, 3, 5.
func quadVert() []Section {
	return []Section{
		frame(quarter, whole),
		vsep(whole, idx(0), idx(2)),
		frame(quarter, whole, 1),
		vsep(whole, idx(2), idx(4)),
		frame(quarter, whole, 3),
		vsep(whole, idx(4), idx(6)),
		frame(quarter, whole, 5),
	}
}

// Four rows: 0, 2, 4, 6 separated by handles 1, 3, 5.
func quadHoriz() []Section {
	return []Section{
		frame(whole, quarter),
		hsep(whole, idx(0), idx(2)),
		frame(whole, quarter, 1),
		hsep(whole, idx(2), idx(4)),
		frame(whole, quarter, 3),
		hsep(whole, idx(4), idx(6)),
		frame(whole, quarter, 5),
	}
}

// ┌───┬───┐
// │   │ 2 │
// │   ├─3─┤
// │ 0 1 4 │
// │   ├─5─┤
// │   │ 6 │
// └───┴───┘
func quadLeft() []Section {
	return []Section{
		frame(half, whole),
		vsep(whole, idx(0), idx(2, 3, 4, 5, 6)),
		frame(half, third, 1),
		hsep(half, idx(2), idx(4)),
		frame(half, third, 1, 3),
		hsep(half, idx(4), idx(6)),
		frame(half, third, 1, 5),
	}
}

// ┌───┬───┐
// │ 0 │   │
// ├─1─┤   │
// │ 2 5 6 │
// ├─3─┤   │
// │ 4 │   │
// └───┴───┘
func quadRight() []Section {
	return []Section{
		frame(half, third),
		hsep(half, idx(0), idx(2)),
		frame(half, third, 1),
		hsep(half, idx(2), idx(4)),
		frame(half, third, 3),
		vsep(whole, idx(0, 1, 2, 3, 4), idx(6)),
		frame(half, whole, 5),
	}
}

// ┌───────────┐
// │     0     │
// ├─────1─────┤
// │ 2 3 4 5 6 │
// └───┴───┴───┘
func quadTop() []Section {
	return []Section{
		frame(whole, half),
		hsep(whole, idx(0), idx(2, 3, 4, 5, 6)),
		frame(third, half, 1),
		vsep(half, idx(2), idx(4)),
		frame(third, half, 1, 3),
		vsep(half, idx(4), idx(6)),
		frame(third, half, 1, 5),
	}
}

// ┌───┬───┬───┐
// │ 0 1 2 3 4 │
// ├─────5─────┤
// │     6     │
// └───────────┘
func quadBottom() []Section {
	return []Section{
		frame(third, half),
		vsep(half, idx(0), idx(2)),
		frame(third, half, 1),
		vsep(half, idx(2), idx(4)),
		frame(third, half, 3),
		hsep(whole, idx(0, 1, 2, 3, 4), idx(6)),
		frame(whole, half, 5),
	}
}
