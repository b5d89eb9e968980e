package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Chrome  ChromeConfig
	Overlay OverlayConfig
	Input   InputConfig
	Text    TextConfig
}

// ChromeConfig holds the rows the host reserves around the tiling canvas.
type ChromeConfig struct {
	// HeaderHeight is the title line above the canvas.
	HeaderHeight int

	// StatusHeight is the message line below the canvas.
	StatusHeight int

	// HelpHeight is the short help bar.
	HelpHeight int

	// HelpFullHeight replaces HelpHeight while full help is shown.
	HelpFullHeight int

	// MinCanvasWidth and MinCanvasHeight are the smallest canvas the host
	// will tile; below that it shows a notice instead.
	MinCanvasWidth  int
	MinCanvasHeight int
}

// OverlayConfig holds the preset picker overlay configuration.
type OverlayConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// MaxVisible: max presets listed at once.
	MaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	FilterCharLimit int
	FilterWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Chrome: ChromeConfig{
			HeaderHeight:    1,
			StatusHeight:    1,
			HelpHeight:      1,
			HelpFullHeight:  4,
			MinCanvasWidth:  12,
			MinCanvasHeight: 4,
		},
		Overlay: OverlayConfig{
			WidthPercent: 40,
			MinWidth:     36,
			MaxWidth:     60,
			MaxVisible:   10,
		},
		Input: InputConfig{
			FilterCharLimit: 40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
