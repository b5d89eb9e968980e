// Package tiling implements the multi-pane layout engine: a catalog of preset
// topologies made of frames and separators, a resolver turning flex
// proportions into rectangles, and a resize controller driven by pointer drags.
package tiling

import "math"

// Minimum flex sizes a frame can be dragged down to.
const (
	MinFrameWidth  = 0.15
	MinFrameHeight = 0.10
)

// DefaultSeparatorThickness is the handle thickness in pixels used by Build.
const DefaultSeparatorThickness = 4

// flexEpsilon absorbs float drift when deciding whether an edge reaches the container.
const flexEpsilon = 1e-9

// Rect is an absolute rectangle in container pixels.
type Rect struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Overlaps reports whether two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Within reports whether the rectangle lies inside a width x height container.
func (r Rect) Within(width, height int) bool {
	return r.Left >= 0 && r.Top >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.Right() <= width && r.Bottom() <= height
}

// edge converts a flex position to a pixel edge. Edges short of the container
// leave half a separator of room so the handle can center on the boundary.
func edge(total int, flex float64, thickness int) int {
	if flex >= 1-flexEpsilon {
		return total
	}
	return int(math.Round(float64(total)*flex)) - thickness/2
}

// span builds a rect from edges, clamped to the container.
func span(left, top, right, bottom, width, height int) Rect {
	left = clamp(left, 0, width)
	top = clamp(top, 0, height)
	right = clamp(right, left, width)
	bottom = clamp(bottom, top, height)
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
