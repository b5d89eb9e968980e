package layout

// CanvasSize is the container handed to the tiling resolver, in cells.
type CanvasSize struct {
	Width  int
	Height int
}

// CalculateCanvasSize computes the canvas left over once the header, status
// line and help bar are drawn. Dimensions never go below zero.
func CalculateCanvasSize(terminalWidth, terminalHeight int, fullHelp bool, cfg ChromeConfig) CanvasSize {
	help := cfg.HelpHeight
	if fullHelp {
		help = cfg.HelpFullHeight
	}

	height := terminalHeight - cfg.HeaderHeight - cfg.StatusHeight - help
	if height < 0 {
		height = 0
	}
	width := terminalWidth
	if width < 0 {
		width = 0
	}

	return CanvasSize{Width: width, Height: height}
}

// Fits reports whether the canvas is large enough to tile.
func (c CanvasSize) Fits(cfg ChromeConfig) bool {
	return c.Width >= cfg.MinCanvasWidth && c.Height >= cfg.MinCanvasHeight
}

// ToCanvas converts terminal coordinates to canvas coordinates.
func ToCanvas(x, y int, cfg ChromeConfig) (int, int) {
	return x, y - cfg.HeaderHeight
}
