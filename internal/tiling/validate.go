package tiling

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the structural invariants of a topology: index bounds,
// dependency order, acyclicity, separator neighbour sets and flex sums.
// It returns every violation found, joined.
func Validate(t *Topology) error {
	var errs []error
	n := len(t.Sections)

	for i := range t.Sections {
		s := &t.Sections[i]
		for _, ref := range s.ResizePos {
			if ref < 0 || ref >= n {
				errs = append(errs, fmt.Errorf("section %d: resize_pos %d out of range", i, ref))
			} else if ref >= i {
				errs = append(errs, fmt.Errorf("section %d: resize_pos %d does not precede it", i, ref))
			}
		}
		for _, ref := range s.ResizeNeg {
			if ref < 0 || ref >= n {
				errs = append(errs, fmt.Errorf("section %d: resize_neg %d out of range", i, ref))
			}
		}
		if s.IsFrame() {
			errs = append(errs, validateFrame(t, i)...)
		} else {
			errs = append(errs, validateSeparator(t, i)...)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if cycle := findCycle(t); cycle >= 0 {
		return fmt.Errorf("section %d depends on itself", cycle)
	}

	return errors.Join(validateFlexSums(t)...)
}

func validateFrame(t *Topology, i int) []error {
	s := &t.Sections[i]
	var errs []error
	if s.FlexWidth <= 0 || s.FlexWidth > 1 || s.FlexHeight <= 0 || s.FlexHeight > 1 {
		errs = append(errs, fmt.Errorf("frame %d: flex %.4fx%.4f outside (0,1]", i, s.FlexWidth, s.FlexHeight))
	}
	if len(s.ResizeNeg) > 0 {
		errs = append(errs, fmt.Errorf("frame %d: frames have no resize_neg", i))
	}
	seen := map[Orientation]bool{}
	for _, ref := range s.ResizePos {
		if ref < 0 || ref >= len(t.Sections) {
			continue
		}
		r := &t.Sections[ref]
		if !r.IsSeparator() {
			errs = append(errs, fmt.Errorf("frame %d: reference %d is not a separator", i, ref))
			continue
		}
		if seen[r.Orientation] {
			errs = append(errs, fmt.Errorf("frame %d: more than one %s reference", i, r.Label()))
		}
		seen[r.Orientation] = true
	}
	return errs
}

func validateSeparator(t *Topology, i int) []error {
	s := &t.Sections[i]
	var errs []error
	if len(s.ResizePos) == 0 || len(s.ResizeNeg) == 0 {
		return append(errs, fmt.Errorf("separator %d: resize_pos and resize_neg must be non-empty", i))
	}
	if p := s.ResizePos[0]; p >= 0 && p < len(t.Sections) && !t.Sections[p].IsFrame() {
		errs = append(errs, fmt.Errorf("separator %d: resize_pos[0] %d is not a frame", i, p))
	}
	if nb := s.ResizeNeg[0]; nb >= 0 && nb < len(t.Sections) && !t.Sections[nb].IsFrame() {
		errs = append(errs, fmt.Errorf("separator %d: resize_neg[0] %d is not a frame", i, nb))
	}
	pos := map[int]bool{}
	for _, p := range s.ResizePos {
		pos[p] = true
	}
	for _, nb := range s.ResizeNeg {
		if pos[nb] {
			errs = append(errs, fmt.Errorf("separator %d: section %d is on both sides", i, nb))
		}
		if nb == i {
			errs = append(errs, fmt.Errorf("separator %d: lists itself in resize_neg", i))
		}
	}
	return errs
}

// findCycle runs a DFS over ResizePos edges and returns a section on a
// cycle, or -1.
func findCycle(t *Topology) int {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(t.Sections))

	var visit func(i int) int
	visit = func(i int) int {
		switch state[i] {
		case visiting:
			return i
		case done:
			return -1
		}
		state[i] = visiting
		for _, ref := range t.Sections[i].ResizePos {
			if c := visit(ref); c >= 0 {
				return c
			}
		}
		state[i] = done
		return -1
	}

	for i := range t.Sections {
		if c := visit(i); c >= 0 {
			return c
		}
	}
	return -1
}

// validateFlexSums checks that frames crossing any frame's centre line fill
// the container along that line.
func validateFlexSums(t *Topology) []error {
	ox, oy := origins(t)
	frames := t.Frames()
	var errs []error

	for _, f := range frames {
		s := &t.Sections[f]
		y := oy[f] + s.FlexHeight/2
		x := ox[f] + s.FlexWidth/2

		row, col := 0.0, 0.0
		for _, g := range frames {
			o := &t.Sections[g]
			if oy[g] <= y && y < oy[g]+o.FlexHeight {
				row += o.FlexWidth
			}
			if ox[g] <= x && x < ox[g]+o.FlexWidth {
				col += o.FlexHeight
			}
		}
		if math.Abs(row-1) > flexEpsilon {
			errs = append(errs, fmt.Errorf("frame %d: row flex sums to %.12f", f, row))
		}
		if math.Abs(col-1) > flexEpsilon {
			errs = append(errs, fmt.Errorf("frame %d: column flex sums to %.12f", f, col))
		}
	}
	return errs
}
