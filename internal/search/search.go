package search

import (
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Preset         tiling.Preset
	MatchedIndexes []int
	Score          int
}

// presetNames implements fuzzy.Source over preset names.
type presetNames []tiling.Preset

func (pn presetNames) String(i int) string {
	return pn[i].String()
}

func (pn presetNames) Len() int {
	return len(pn)
}

// FuzzySearchPresets searches all preset names using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchPresets(query string) []SearchResult {
	if query == "" {
		return nil
	}

	presets := presetNames(tiling.Presets())
	matches := fuzzy.FindFrom(query, presets)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Preset:         presets[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Resolve turns user input into a preset: an exact name or alias wins,
// otherwise the best fuzzy match. It reports false when nothing matches.
func Resolve(query string) (tiling.Preset, bool) {
	if p, ok := tiling.ParsePreset(query); ok {
		return p, true
	}
	results := FuzzySearchPresets(query)
	if len(results) == 0 {
		return tiling.Single, false
	}
	return results[0].Preset, true
}
