package layout

import "testing"

func TestCalculateCanvasSize(t *testing.T) {
	cfg := DefaultConfig().Chrome

	tests := []struct {
		name       string
		width      int
		height     int
		fullHelp   bool
		wantWidth  int
		wantHeight int
	}{
		{"standard terminal", 80, 24, false, 80, 21}, // 24 - header(1) - status(1) - help(1)
		{"full help", 80, 24, true, 80, 18},          // 24 - 1 - 1 - 4
		{"wide terminal", 200, 50, false, 200, 47},   // 50 - 3
		{"shorter than chrome", 10, 2, false, 10, 0}, // clamps to 0
		{"negative width clamps", -1, 24, false, 0, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCanvasSize(tt.width, tt.height, tt.fullHelp, cfg)
			if got.Width != tt.wantWidth || got.Height != tt.wantHeight {
				t.Errorf("CalculateCanvasSize(%d, %d, %v) = %dx%d, want %dx%d",
					tt.width, tt.height, tt.fullHelp, got.Width, got.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCanvasSize_Fits(t *testing.T) {
	cfg := DefaultConfig().Chrome

	tests := []struct {
		name string
		size CanvasSize
		want bool
	}{
		{"roomy", CanvasSize{Width: 80, Height: 21}, true},
		{"exact minimum", CanvasSize{Width: 12, Height: 4}, true},
		{"too narrow", CanvasSize{Width: 11, Height: 21}, false},
		{"too short", CanvasSize{Width: 80, Height: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Fits(cfg); got != tt.want {
				t.Errorf("%+v.Fits() = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestToCanvas(t *testing.T) {
	cfg := DefaultConfig().Chrome

	x, y := ToCanvas(5, 1, cfg)
	if x != 5 || y != 0 {
		t.Errorf("ToCanvas(5, 1) = (%d, %d), want (5, 0)", x, y)
	}

	// Header row maps above the canvas.
	_, y = ToCanvas(0, 0, cfg)
	if y != -1 {
		t.Errorf("expected header row at y=-1, got %d", y)
	}
}
