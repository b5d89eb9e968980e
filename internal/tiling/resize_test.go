package tiling_test

import (
	"math"
	"testing"

	"github.com/nikbrunner/tiles/internal/tiling"
	"gotest.tools/v3/assert"
)

// harness wires a topology, document and resizer the way a host does.
type harness struct {
	doc      *tiling.Document
	resizer  *tiling.Resizer
	topo     *tiling.Topology
	w, h     int
	resolves int
}

func newHarness(p tiling.Preset, w, h int) *harness {
	hs := &harness{doc: tiling.NewDocument(), w: w, h: h}
	hs.resizer = tiling.NewResizer(hs.doc, func(t *tiling.Topology) {
		hs.resolves++
		tiling.Resolve(hs.w, hs.h, t)
	})
	hs.topo = tiling.Build(p, hs.resizer.Begin)
	tiling.Resolve(w, h, hs.topo)
	return hs
}

func (hs *harness) press(x, y int) bool {
	return hs.topo.PointerDown(tiling.PointerEvent{Type: tiling.PointerPress, X: x, Y: y})
}

func (hs *harness) move(x, y int) {
	hs.doc.Dispatch(tiling.PointerEvent{Type: tiling.PointerMove, X: x, Y: y})
}

func (hs *harness) release(x, y int) {
	hs.doc.Dispatch(tiling.PointerEvent{Type: tiling.PointerRelease, X: x, Y: y})
}

// handle returns the centre of separator i.
func (hs *harness) handle(i int) (int, int) {
	r := hs.topo.Sections[i].Rect
	return r.Left + r.Width/2, r.Top + r.Height/2
}

func TestDrag_QuadSqVCentralSeparator(t *testing.T) {
	hs := newHarness(tiling.QuadSqV, 800, 600)
	before := frameRects(hs.topo)
	hsepLeft := hs.topo.Sections[1].Rect
	hsepRight := hs.topo.Sections[5].Rect

	x, y := hs.handle(3)
	assert.Assert(t, hs.press(x, y))
	hs.move(x+100, y)
	hs.release(x+100, y)

	after := frameRects(hs.topo)
	// Frames 0 and 1 form the left column, 2 and 3 the right one.
	for _, i := range []int{0, 1} {
		assert.Equal(t, after[i].Width, before[i].Width+100, "left frame %d", i)
		assert.Equal(t, after[i].Height, before[i].Height)
	}
	for _, i := range []int{2, 3} {
		assert.Equal(t, after[i].Width, before[i].Width-100, "right frame %d", i)
		assert.Equal(t, after[i].Height, before[i].Height)
	}
	assert.Equal(t, hs.topo.Sections[1].Rect.Top, hsepLeft.Top)
	assert.Equal(t, hs.topo.Sections[5].Rect.Top, hsepRight.Top)
	assert.Equal(t, hs.resolves, 1)
}

func TestDrag_MidpointSplitsInHalf(t *testing.T) {
	hs := newHarness(tiling.DoubleVert, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	hs.move(600, y)
	hs.move(400, y)

	assert.Equal(t, hs.topo.Sections[0].FlexWidth, 0.5)
	assert.Equal(t, hs.topo.Sections[2].FlexWidth, 0.5)
}

func TestDrag_InnerBandMidpointSplitsInHalf(t *testing.T) {
	tests := []struct {
		name   string
		preset tiling.Preset
		sep    int
		mid    int // band midpoint in pixels on a 900x600 container
	}{
		{name: "triple-vert leading band", preset: tiling.TripleVert, sep: 1, mid: 300},
		{name: "triple-vert trailing band", preset: tiling.TripleVert, sep: 3, mid: 600},
		{name: "quad-vert leading band", preset: tiling.QuadVert, sep: 1, mid: 225},
		{name: "quad-top lower row", preset: tiling.QuadTop, sep: 3, mid: 300},
		{name: "quad-horiz middle band", preset: tiling.QuadHoriz, sep: 3, mid: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newHarness(tt.preset, 900, 600)
			s := hs.topo.Sections[tt.sep]
			pos, neg := s.ResizePos[0], s.ResizeNeg[0]

			x, y := hs.handle(tt.sep)
			assert.Assert(t, hs.press(x, y))
			if s.Orientation == tiling.Vertical {
				hs.move(tt.mid, y)
			} else {
				hs.move(x, tt.mid)
			}

			a, b := hs.topo.Sections[pos].FlexWidth, hs.topo.Sections[neg].FlexWidth
			if s.Orientation == tiling.Horizontal {
				a, b = hs.topo.Sections[pos].FlexHeight, hs.topo.Sections[neg].FlexHeight
			}
			if math.Abs(a-b) > 1e-9 {
				t.Errorf("split %v / %v, want equal halves", a, b)
			}
		})
	}
}

func TestResizer_PressWithoutMovingKeepsHandle(t *testing.T) {
	tests := []struct {
		preset tiling.Preset
		sep    int
	}{
		{tiling.DoubleVert, 1},
		{tiling.TripleVert, 1},
		{tiling.TripleVert, 3},
		{tiling.QuadVert, 1},
		{tiling.QuadVert, 3},
		{tiling.QuadTop, 3},
		{tiling.QuadHoriz, 1},
		{tiling.QuadSqV, 3},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			hs := newHarness(tt.preset, 800, 600)
			before := hs.topo.Sections[tt.sep].Rect
			pos := hs.topo.Sections[tt.sep].ResizePos[0]
			flexBefore := hs.topo.Sections[pos].FlexWidth
			flexAfter := func() float64 { return hs.topo.Sections[pos].FlexWidth }
			tolerance := 1.0 / 800
			if hs.topo.Sections[tt.sep].Orientation == tiling.Horizontal {
				flexBefore = hs.topo.Sections[pos].FlexHeight
				flexAfter = func() float64 { return hs.topo.Sections[pos].FlexHeight }
				tolerance = 1.0 / 600
			}

			x, y := hs.handle(tt.sep)
			assert.Assert(t, hs.press(x, y))
			for i := 0; i < 5; i++ {
				hs.move(x, y)
			}

			assert.Equal(t, hs.topo.Sections[tt.sep].Rect, before)
			if d := math.Abs(flexAfter() - flexBefore); d > tolerance {
				t.Errorf("flex moved by %v", d)
			}
		})
	}
}

func TestDrag_ClampPinsAtMinimumWithoutOscillation(t *testing.T) {
	hs := newHarness(tiling.DoubleVert, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	for _, px := range []int{700, 760, 900, 2000, 100000} {
		hs.move(px, y)
		assert.Equal(t, hs.topo.Sections[2].FlexWidth, tiling.MinFrameWidth, "pointer at %d", px)
		if got := hs.topo.Sections[0].FlexWidth; math.Abs(got-(1-tiling.MinFrameWidth)) > 1e-12 {
			t.Errorf("left flex = %v, want %v", got, 1-tiling.MinFrameWidth)
		}
	}

	for _, px := range []int{50, 0, -300, -100000} {
		hs.move(px, y)
		assert.Equal(t, hs.topo.Sections[0].FlexWidth, tiling.MinFrameWidth, "pointer at %d", px)
	}
}

func TestDrag_HorizontalClampUsesMinimumHeight(t *testing.T) {
	hs := newHarness(tiling.TripleHoriz, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	hs.move(x, -5000)

	assert.Equal(t, hs.topo.Sections[0].FlexHeight, tiling.MinFrameHeight)
	assert.Assert(t, hs.topo.Sections[2].FlexHeight > tiling.MinFrameHeight)
	// The third row is outside the dragged band.
	assert.Equal(t, hs.topo.Sections[4].FlexHeight, 1.0/3)
}

func TestDrag_CascadesToWholeBand(t *testing.T) {
	hs := newHarness(tiling.QuadLeft, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	hs.move(x-200, y)
	hs.release(x-200, y)

	right := hs.topo.Sections[2].FlexWidth
	for _, i := range []int{2, 3, 4, 5, 6} {
		assert.Equal(t, hs.topo.Sections[i].FlexWidth, right, "section %d", i)
	}
	assertGeometry(t, hs.topo, 800, 600)
	assert.NilError(t, tiling.Validate(hs.topo))
}

func TestDrag_NeverBelowMinimumForAnySeparator(t *testing.T) {
	targets := []struct{ x, y int }{{-10000, -10000}, {10000, 10000}, {0, 0}, {800, 600}, {400, 300}}

	for _, p := range tiling.Presets() {
		t.Run(p.String(), func(t *testing.T) {
			hs := newHarness(p, 800, 600)
			for _, sep := range hs.topo.Separators() {
				for _, target := range targets {
					x, y := hs.handle(sep)
					hs.press(x, y)
					hs.move(target.x, target.y)
					hs.release(target.x, target.y)

					for _, f := range hs.topo.Frames() {
						s := hs.topo.Sections[f]
						assert.Check(t, s.FlexWidth >= tiling.MinFrameWidth-1e-12, "frame %d width %f", f, s.FlexWidth)
						assert.Check(t, s.FlexHeight >= tiling.MinFrameHeight-1e-12, "frame %d height %f", f, s.FlexHeight)
					}
					assertGeometry(t, hs.topo, 800, 600)
				}
			}
			assert.NilError(t, tiling.Validate(hs.topo))
		})
	}
}

func TestResizer_ReleaseDetachesListeners(t *testing.T) {
	hs := newHarness(tiling.DoubleVert, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	assert.Assert(t, hs.resizer.Dragging())
	assert.Equal(t, hs.resizer.Separator(), 1)
	assert.Equal(t, hs.doc.Listeners(tiling.PointerMove), 1)
	assert.Equal(t, hs.doc.Listeners(tiling.PointerRelease), 1)

	// Release far away from the handle still ends the drag.
	hs.release(5, 5)
	assert.Assert(t, !hs.resizer.Dragging())
	assert.Equal(t, hs.doc.Listeners(tiling.PointerMove), 0)
	assert.Equal(t, hs.doc.Listeners(tiling.PointerRelease), 0)

	flex := hs.topo.Sections[0].FlexWidth
	hs.move(700, y)
	assert.Equal(t, hs.topo.Sections[0].FlexWidth, flex)
	assert.Equal(t, hs.resolves, 0)
}

func TestResizer_NewDragReplacesStaleOne(t *testing.T) {
	hs := newHarness(tiling.TripleVert, 900, 600)

	x1, y1 := hs.handle(1)
	hs.press(x1, y1)
	// No release: a second press must tear down the first drag's listeners.
	x2, y2 := hs.handle(3)
	hs.press(x2, y2)

	assert.Equal(t, hs.doc.Listeners(tiling.PointerMove), 1)
	assert.Equal(t, hs.resizer.Separator(), 3)

	hs.move(x2+50, y2)
	assert.Equal(t, hs.topo.Sections[0].FlexWidth, 1.0/3)
	assert.Assert(t, hs.topo.Sections[2].FlexWidth > 1.0/3)
}

func TestResizer_GrabOffsetTracksPointer(t *testing.T) {
	hs := newHarness(tiling.DoubleVert, 800, 600)
	sep := hs.topo.Sections[1].Rect

	// Grab at the handle's left pixel rather than its centre.
	hs.press(sep.Left, 300)
	hs.move(sep.Left, 300)

	assert.Equal(t, hs.topo.Sections[0].FlexWidth, 0.5)
}

func TestResizer_EachMoveResolvesOnce(t *testing.T) {
	hs := newHarness(tiling.DoubleHoriz, 800, 600)

	x, y := hs.handle(1)
	hs.press(x, y)
	for i := 1; i <= 5; i++ {
		hs.move(x, y+i*10)
	}

	assert.Equal(t, hs.resolves, 5)
}

func TestDrag_EmptyNeighboursPanics(t *testing.T) {
	topo := &tiling.Topology{
		Thickness: 4,
		Sections: []tiling.Section{
			{Kind: tiling.KindFrame, FlexWidth: 1, FlexHeight: 1},
			{Kind: tiling.KindSeparator, Orientation: tiling.Vertical, FlexHeight: 1, ResizePos: []int{0}},
		},
	}
	r := tiling.NewResizer(tiling.NewDocument(), nil)

	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	r.Begin(topo, 1, tiling.PointerEvent{Type: tiling.PointerPress})
}
