package layout

// overlayChrome counts the picker rows around its list (title, filter, two
// spacers, footer) plus the overlay border.
const overlayChrome = 7

// Size fits the overlay into a terminal. The width is WidthPercent of the
// terminal clamped to [MinWidth, MaxWidth] and kept clear of the border and
// padding; rows is how many list entries show before the list scrolls.
func (c OverlayConfig) Size(termWidth, termHeight int) (width, rows int) {
	width = termWidth * c.WidthPercent / 100
	width = max(width, c.MinWidth)
	width = min(width, c.MaxWidth, termWidth-4)
	width = max(width, 1)

	rows = min(c.MaxVisible, termHeight-overlayChrome)
	rows = max(rows, 1)
	return width, rows
}

// CalculateVisibleListItems computes the start and end indices for a scrollable list.
// Returns (start, end) where items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
