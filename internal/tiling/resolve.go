package tiling

// Resolve computes every section's Rect for a width x height container.
// Sections are visited in list order and only read rects of sections already
// visited, so a single forward pass settles the whole layout. Non-positive
// dimensions leave the previous rects untouched.
func Resolve(width, height int, t *Topology) {
	if width <= 0 || height <= 0 || t == nil {
		return
	}

	t.width, t.height = width, height
	ox, oy := origins(t)
	th := t.Thickness

	for i := range t.Sections {
		s := &t.Sections[i]

		if s.IsFrame() {
			left, top := 0, 0
			for _, ref := range s.ResizePos {
				r := t.Sections[ref].Rect
				if t.Sections[ref].Orientation == Vertical {
					left = r.Right()
				} else {
					top = r.Bottom()
				}
			}
			right := edge(width, ox[i]+s.FlexWidth, th)
			bottom := edge(height, oy[i]+s.FlexHeight, th)
			s.Rect = span(left, top, right, bottom, width, height)
			continue
		}

		p := t.Sections[s.ResizePos[0]].Rect
		if s.Orientation == Vertical {
			left := p.Right()
			bottom := edge(height, oy[i]+s.FlexHeight, th)
			s.Rect = span(left, p.Top, left+th, bottom, width, height)
		} else {
			top := p.Bottom()
			right := edge(width, ox[i]+s.FlexWidth, th)
			s.Rect = span(p.Left, top, right, top+th, width, height)
		}
	}
}

// origins returns each section's top-left corner in flex space. A separator
// sits on the trailing flex edge of its ResizePos[0]; a frame starts where
// its referenced separators sit.
func origins(t *Topology) (ox, oy []float64) {
	ox = make([]float64, len(t.Sections))
	oy = make([]float64, len(t.Sections))

	for i := range t.Sections {
		s := &t.Sections[i]

		if s.IsFrame() {
			for _, ref := range s.ResizePos {
				if t.Sections[ref].Orientation == Vertical {
					ox[i] = ox[ref]
				} else {
					oy[i] = oy[ref]
				}
			}
			continue
		}

		p0 := s.ResizePos[0]
		p := &t.Sections[p0]
		if s.Orientation == Vertical {
			ox[i] = ox[p0] + p.FlexWidth
			oy[i] = oy[p0]
		} else {
			ox[i] = ox[p0]
			oy[i] = oy[p0] + p.FlexHeight
		}
	}
	return ox, oy
}
