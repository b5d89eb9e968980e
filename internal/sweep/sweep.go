// Package sweep resolves catalog presets across many container sizes and
// reports any that break the topology or geometry invariants.
package sweep

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nikbrunner/tiles/internal/tiling"
)

// Status represents the health of one preset at one size.
type Status int

const (
	Healthy    Status = iota // structure valid, frames inside and disjoint
	Broken                   // topology fails Validate
	Degenerate               // geometry leaves the container or frames overlap
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "ok"
	case Broken:
		return "broken"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Size is a container to resolve against.
type Size struct {
	Width  int
	Height int
}

// Result holds the check result for a single preset and size.
type Result struct {
	Preset tiling.Preset
	Size   Size
	Status Status
	Error  string
}

// ProgressFunc is called after each check.
// completed is the number of checks done so far, total is the total count.
type ProgressFunc func(completed, total int)

// DefaultSizes covers degenerate, terminal and pixel containers.
var DefaultSizes = []Size{
	{1, 1}, {3, 2}, {7, 5}, {12, 4}, {80, 24}, {123, 45},
	{800, 600}, {1280, 800}, {1920, 1080}, {333, 1001},
}

// CheckPresets resolves every preset at every size concurrently and returns
// results in preset-major order. thickness <= 0 uses the catalog default.
func CheckPresets(presets []tiling.Preset, sizes []Size, thickness, concurrency int, onProgress ProgressFunc) []Result {
	total := len(presets) * len(sizes)
	if total == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, total)
	jobs := make(chan int, total)
	var wg sync.WaitGroup

	// Progress tracking
	var progressMu sync.Mutex
	completed := 0

	// Start workers
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				p := presets[idx/len(sizes)]
				size := sizes[idx%len(sizes)]
				results[idx] = check(p, size, thickness)

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, total)
					progressMu.Unlock()
				}
			}
		}()
	}

	// Send jobs
	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// Failures returns the results that are not Healthy.
func Failures(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Status != Healthy {
			out = append(out, r)
		}
	}
	return out
}

// check builds a fresh topology and resolves it at size.
func check(p tiling.Preset, size Size, thickness int) Result {
	result := Result{Preset: p, Size: size}

	topo := tiling.Build(p, nil)
	if thickness > 0 {
		topo.Thickness = thickness
	}
	if err := tiling.Validate(topo); err != nil {
		result.Status = Broken
		result.Error = err.Error()
		return result
	}

	tiling.Resolve(size.Width, size.Height, topo)
	if err := checkGeometry(topo, size); err != nil {
		result.Status = Degenerate
		result.Error = err.Error()
	}
	return result
}

func checkGeometry(t *tiling.Topology, size Size) error {
	var errs []error
	for i, s := range t.Sections {
		if !s.Rect.Within(size.Width, size.Height) {
			errs = append(errs, fmt.Errorf("section %d %+v outside %dx%d", i, s.Rect, size.Width, size.Height))
		}
	}

	frames := t.Frames()
	for a := range frames {
		for b := a + 1; b < len(frames); b++ {
			ra, rb := t.Sections[frames[a]].Rect, t.Sections[frames[b]].Rect
			if ra.Overlaps(rb) {
				errs = append(errs, fmt.Errorf("frames %d and %d overlap", frames[a], frames[b]))
			}
		}
	}
	return errors.Join(errs...)
}
