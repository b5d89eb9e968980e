package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal cells a string occupies,
// excluding ANSI codes. Wide runes count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text, false
	}

	ellipsisWidth := runewidth.StringWidth(cfg.Ellipsis)
	if maxWidth <= ellipsisWidth {
		return takeCells(cfg.Ellipsis, maxWidth), true
	}

	return takeCells(text, maxWidth-ellipsisWidth) + cfg.Ellipsis, true
}

// TruncateWithPrefixSuffix truncates text while preserving prefix and suffix.
// Example: TruncateWithPrefixSuffix("BTCUSD-PERP", 10, "* ", "", cfg) -> "* BTCUS..."
// Returns the truncated text and whether truncation occurred.
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	combined := prefix + text + suffix
	if runewidth.StringWidth(combined) <= maxWidth {
		return combined, false
	}

	overhead := runewidth.StringWidth(prefix) + runewidth.StringWidth(suffix) + runewidth.StringWidth(cfg.Ellipsis)
	if overhead >= maxWidth {
		// Not enough room even for prefix + ellipsis + suffix
		return TruncateText(combined, maxWidth, cfg)
	}

	return prefix + takeCells(text, maxWidth-overhead) + cfg.Ellipsis + suffix, true
}

// CenterText fits text into exactly width cells, truncating if needed and
// padding both sides with spaces otherwise.
func CenterText(text string, width int, cfg TextConfig) string {
	if width <= 0 {
		return ""
	}
	text, _ = TruncateText(text, width, cfg)
	gap := width - runewidth.StringWidth(text)
	left := gap / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
}

// takeCells returns the longest prefix of s that fits in n cells.
func takeCells(s string, n int) string {
	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > n {
			return s[:i]
		}
		used += w
	}
	return s
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// Used for picker rows where fuzzy matches are highlighted.
// The result will have a reset code appended to prevent style bleed.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	if VisibleWidth(styledText) <= maxWidth {
		return styledText
	}

	targetWidth := maxWidth - runewidth.StringWidth(cfg.Ellipsis)
	if targetWidth < 0 {
		targetWidth = 0
	}

	// Walk through preserving ANSI codes
	var result []byte
	var visibleWidth int
	input := []byte(styledText)
	resetCode := []byte("\x1b[0m")

	i := 0
	for i < len(input) {
		if input[i] == '\x1b' && i+1 < len(input) && input[i+1] == '[' {
			j := i + 2
			for j < len(input) && input[j] != 'm' {
				j++
			}
			if j < len(input) {
				result = append(result, input[i:j+1]...)
				i = j + 1
				continue
			}
		}

		r, size := utf8.DecodeRune(input[i:])
		if r != utf8.RuneError {
			w := runewidth.RuneWidth(r)
			if visibleWidth+w > targetWidth {
				break
			}
			result = append(result, input[i:i+size]...)
			visibleWidth += w
		}
		i += size
	}

	result = append(result, []byte(cfg.Ellipsis)...)
	result = append(result, resetCode...)

	return string(result)
}
