package tiling

import (
	"fmt"
	"strings"
)

// Describe renders the topology as stable text, one section per line.
func Describe(t *Topology) string {
	var b strings.Builder
	fmt.Fprintf(&b, "preset %s thickness %d\n", t.Preset, t.Thickness)
	for i, s := range t.Sections {
		r := s.Rect
		fmt.Fprintf(&b, "%2d %-5s flex %.4f x %.4f  top=%d left=%d width=%d height=%d\n",
			i, s.Label(), s.FlexWidth, s.FlexHeight, r.Top, r.Left, r.Width, r.Height)
	}
	return b.String()
}
