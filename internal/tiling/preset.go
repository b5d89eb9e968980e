package tiling

import "strings"

// Preset names one of the fixed layout arrangements.
type Preset int

const (
	Single Preset = iota
	DoubleVert
	DoubleHoriz
	TripleVert
	TripleVertLeft
	TripleVertRight
	TripleHoriz
	TripleHorizTop
	TripleHorizBottom
	QuadSqV
	QuadSqH
	QuadVert
	QuadHoriz
	QuadLeft
	QuadRight
	QuadTop
	QuadBottom

	presetCount
)

var presetNames = [presetCount]string{
	Single:            "single",
	DoubleVert:        "double-vert",
	DoubleHoriz:       "double-horiz",
	TripleVert:        "triple-vert",
	TripleVertLeft:    "triple-vert-left",
	TripleVertRight:   "triple-vert-right",
	TripleHoriz:       "triple-horiz",
	TripleHorizTop:    "triple-horiz-top",
	TripleHorizBottom: "triple-horiz-bottom",
	QuadSqV:           "quad-sq-v",
	QuadSqH:           "quad-sq-h",
	QuadVert:          "quad-vert",
	QuadHoriz:         "quad-horiz",
	QuadLeft:          "quad-left",
	QuadRight:         "quad-right",
	QuadTop:           "quad-top",
	QuadBottom:        "quad-bottom",
}

var presetDescriptions = [presetCount]string{
	Single:            "one pane",
	DoubleVert:        "two columns",
	DoubleHoriz:       "two rows",
	TripleVert:        "three columns",
	TripleVertLeft:    "large left, two stacked right",
	TripleVertRight:   "two stacked left, large right",
	TripleHoriz:       "three rows",
	TripleHorizTop:    "large top, two side by side below",
	TripleHorizBottom: "two side by side above, large bottom",
	QuadSqV:           "2x2 grid, full-height divider",
	QuadSqH:           "2x2 grid, full-width divider",
	QuadVert:          "four columns",
	QuadHoriz:         "four rows",
	QuadLeft:          "large left, three stacked right",
	QuadRight:         "three stacked left, large right",
	QuadTop:           "large top, three columns below",
	QuadBottom:        "three columns above, large bottom",
}

// presetAliases are short forms accepted by ParsePreset.
var presetAliases = map[string]Preset{
	"1":   Single,
	"2v":  DoubleVert,
	"2h":  DoubleHoriz,
	"3v":  TripleVert,
	"3h":  TripleHoriz,
	"4v":  QuadVert,
	"4h":  QuadHoriz,
	"4sq": QuadSqV,
}

// Presets returns every preset in catalog order.
func Presets() []Preset {
	all := make([]Preset, presetCount)
	for i := range all {
		all[i] = Preset(i)
	}
	return all
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p >= 0 && p < presetCount
}

// String returns the preset's canonical name.
func (p Preset) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return presetNames[p]
}

// Description returns a short human description of the arrangement.
func (p Preset) Description() string {
	if !p.Valid() {
		return ""
	}
	return presetDescriptions[p]
}

// ParsePreset looks up a preset by name. Case, dashes, underscores and spaces
// are ignored, so "TripleVertLeft" and "triple-vert-left" are equivalent.
func ParsePreset(name string) (Preset, bool) {
	key := normalizeName(name)
	if p, ok := presetAliases[key]; ok {
		return p, true
	}
	for i, n := range presetNames {
		if normalizeName(n) == key {
			return Preset(i), true
		}
	}
	return Single, false
}

// NumFrames returns how many frame slots the preset needs. Unknown presets
// count as Single.
func NumFrames(p Preset) int {
	return len(Build(p, nil).Frames())
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
