package sweep

import (
	"sync/atomic"
	"testing"

	"github.com/nikbrunner/tiles/internal/tiling"
	"gotest.tools/v3/assert"
)

func TestCheckPresets_CatalogIsHealthy(t *testing.T) {
	for _, thickness := range []int{0, 1, 4} {
		results := CheckPresets(tiling.Presets(), DefaultSizes, thickness, 4, nil)

		assert.Equal(t, len(results), len(tiling.Presets())*len(DefaultSizes))
		for _, r := range Failures(results) {
			t.Errorf("thickness %d: %s at %dx%d is %s: %s", thickness, r.Preset, r.Size.Width, r.Size.Height, r.Status, r.Error)
		}
	}
}

func TestCheckPresets_ResultOrder(t *testing.T) {
	presets := []tiling.Preset{tiling.QuadTop, tiling.Single}
	sizes := []Size{{10, 10}, {20, 20}}

	results := CheckPresets(presets, sizes, 1, 3, nil)

	want := []struct {
		preset tiling.Preset
		size   Size
	}{
		{tiling.QuadTop, Size{10, 10}},
		{tiling.QuadTop, Size{20, 20}},
		{tiling.Single, Size{10, 10}},
		{tiling.Single, Size{20, 20}},
	}
	for i, w := range want {
		assert.Equal(t, results[i].Preset, w.preset)
		assert.Equal(t, results[i].Size, w.size)
	}
}

func TestCheckPresets_Progress(t *testing.T) {
	var calls atomic.Int32
	last := 0

	CheckPresets(tiling.Presets(), []Size{{80, 24}}, 1, 8, func(completed, total int) {
		calls.Add(1)
		// Calls are serialised, so completed only grows.
		if completed <= last {
			t.Errorf("progress went from %d to %d", last, completed)
		}
		last = completed
		assert.Check(t, total == len(tiling.Presets()))
	})

	assert.Equal(t, int(calls.Load()), len(tiling.Presets()))
}

func TestCheckPresets_Empty(t *testing.T) {
	assert.Assert(t, CheckPresets(nil, DefaultSizes, 1, 2, nil) == nil)
	assert.Assert(t, CheckPresets(tiling.Presets(), nil, 1, 2, nil) == nil)
}

func TestCheckPresets_ZeroConcurrencyStillRuns(t *testing.T) {
	results := CheckPresets([]tiling.Preset{tiling.DoubleVert}, []Size{{80, 24}}, 1, 0, nil)

	assert.Equal(t, len(results), 1)
	assert.Equal(t, results[0].Status, Healthy)
}

func TestCheckGeometry_DetectsOverlap(t *testing.T) {
	topo := tiling.Build(tiling.DoubleVert, nil)
	tiling.Resolve(80, 24, topo)
	topo.Sections[2].Rect.Left = 10

	err := checkGeometry(topo, Size{80, 24})

	assert.ErrorContains(t, err, "frames 0 and 2 overlap")
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Healthy, "ok"},
		{Broken, "broken"},
		{Degenerate, "degenerate"},
		{Status(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
