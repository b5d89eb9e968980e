package tui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/nikbrunner/tiles/internal/config"
	"github.com/nikbrunner/tiles/internal/exporter"
	"github.com/nikbrunner/tiles/internal/model"
	"github.com/nikbrunner/tiles/internal/picker"
	"github.com/nikbrunner/tiles/internal/tiling"
	"github.com/nikbrunner/tiles/internal/tui/layout"
)

// host is the engine state shared by every copy of App. The resizer's
// resolve callback reads size from here, so it must outlive value copies.
type host struct {
	doc     *tiling.Document
	resizer *tiling.Resizer
	topo    *tiling.Topology
	size    layout.CanvasSize
}

func (h *host) resolve(t *tiling.Topology) {
	tiling.Resolve(h.size.Width, h.size.Height, t)
}

// App is the main bubbletea model for the layout host.
type App struct {
	cfg          config.Config
	logger       *log.Logger
	workspace    *model.Workspace
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	help         help.Model
	host         *host

	preset tiling.Preset
	mode   Mode
	picker picker.Picker

	messageText string
	messageType MessageType

	clipboardWrite func(string) error
	exportPath     func(tiling.Preset) (string, error)

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Config       config.Config
	Preset       *tiling.Preset                      // optional, uses Config.DefaultPreset if nil
	Workspace    *model.Workspace                    // optional, built from Config.Panes if nil
	Logger       *log.Logger                         // optional, discards if nil
	Keys         *KeyMap                             // optional, uses default if nil
	Styles       *Styles                             // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig                // optional, uses default if nil
	Clipboard    func(string) error                  // optional, system clipboard if nil
	ExportPath   func(tiling.Preset) (string, error) // optional, ~/Downloads if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	workspace := params.Workspace
	if workspace == nil {
		workspace = model.NewWorkspace(params.Config.Panes)
	}

	preset := params.Config.Preset()
	if params.Preset != nil {
		preset = *params.Preset
	}
	var warning string
	if !preset.Valid() {
		logger.Warn("unknown preset, using single", "preset", int(preset))
		warning = fmt.Sprintf("unknown preset %d, using single", int(preset))
		preset = tiling.Single
	}

	clip := params.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	exportPath := params.ExportPath
	if exportPath == nil {
		exportPath = exporter.DefaultExportPath
	}

	h := &host{doc: tiling.NewDocument()}
	h.resizer = tiling.NewResizer(h.doc, h.resolve)

	app := App{
		cfg:            params.Config,
		logger:         logger,
		workspace:      workspace,
		keys:           keys,
		styles:         styles,
		layoutConfig:   layoutConfig,
		help:           help.New(),
		host:           h,
		clipboardWrite: clip,
		exportPath:     exportPath,
		width:          80,
		height:         24,
	}

	app.applyPreset(preset)
	app.resize()
	if warning != "" {
		app.setMessage(MessageWarning, warning)
	}
	return app
}

// WithDimensions returns a copy of the app sized to width x height, as if a
// tea.WindowSizeMsg had arrived.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.resize()
	return a
}

// thickness returns the configured separator thickness in cells.
func (a App) thickness() int {
	if a.cfg.SeparatorThickness > 0 {
		return a.cfg.SeparatorThickness
	}
	return 1
}

// applyPreset replaces the topology, re-homing panes into the new frame
// slots by index. An in-flight drag belongs to the old sections and is
// dropped.
func (a *App) applyPreset(p tiling.Preset) {
	a.host.resizer.Cancel()

	topo := tiling.Build(p, a.host.resizer.Begin)
	topo.Thickness = a.thickness()
	frames := len(topo.Frames())

	if added := a.workspace.EnsurePanes(frames); added > 0 {
		a.logger.Debug("allocated placeholder panes", "count", added)
	}
	a.workspace.Clamp(frames)

	a.host.topo = topo
	a.preset = topo.Preset
	a.host.resolve(topo)
	a.logger.Debug("preset applied", "preset", a.preset, "frames", frames)
}

// resize recomputes the canvas from the window and re-resolves.
func (a *App) resize() {
	a.help.Width = a.width
	a.host.size = layout.CalculateCanvasSize(a.width, a.height, a.help.ShowAll, a.layoutConfig.Chrome)
	a.host.resolve(a.host.topo)
}

// Preset returns the active preset.
func (a App) Preset() tiling.Preset {
	return a.preset
}

// Topology returns the live topology.
func (a App) Topology() *tiling.Topology {
	return a.host.topo
}

// ActiveFrame returns the active frame slot.
func (a App) ActiveFrame() int {
	return a.workspace.Active
}

// Workspace returns the panes homed in the host.
func (a App) Workspace() *model.Workspace {
	return a.workspace
}

// Dragging reports whether a separator drag is in progress.
func (a App) Dragging() bool {
	return a.host.resizer.Dragging()
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the message line text.
func (a App) Message() string {
	return a.messageText
}

// CanvasSize returns the container the topology is resolved against.
func (a App) CanvasSize() layout.CanvasSize {
	return a.host.size
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		if a.mode == ModePicker {
			m, _ := a.picker.Update(msg)
			a.picker = m.(picker.Picker)
		}
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case picker.SelectedMsg:
		a.mode = ModeNormal
		a.applyPreset(msg.Preset)
		a.setMessage(MessageInfo, "preset "+msg.Preset.String())
		return a, nil

	case picker.CancelledMsg:
		a.mode = ModeNormal
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.logger.Error("export failed", "err", msg.err)
			a.setMessage(MessageError, "export failed: "+msg.err.Error())
			return a, nil
		}
		a.logger.Info("exported snapshot", "path", msg.path)
		a.setMessage(MessageSuccess, "exported "+msg.path)
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModePicker {
			m, cmd := a.picker.Update(msg)
			a.picker = m.(picker.Picker)
			return a, cmd
		}
		return a.handleKey(msg)
	}

	if a.mode == ModePicker {
		m, cmd := a.picker.Update(msg)
		a.picker = m.(picker.Picker)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.messageText = ""
	frames := len(a.host.topo.Frames())

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.host.resizer.Cancel()
		return a, tea.Quit

	case key.Matches(msg, a.keys.NextPreset):
		a.applyPreset(cyclePreset(a.preset, 1))

	case key.Matches(msg, a.keys.PrevPreset):
		a.applyPreset(cyclePreset(a.preset, -1))

	case key.Matches(msg, a.keys.Picker):
		a.host.resizer.Cancel()
		a.mode = ModePicker
		a.picker = picker.NewEmbedded("")
		m, _ := a.picker.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.picker = m.(picker.Picker)
		return a, a.picker.Init()

	case key.Matches(msg, a.keys.NextFrame):
		a.workspace.CycleActive(1, frames)

	case key.Matches(msg, a.keys.PrevFrame):
		a.workspace.CycleActive(-1, frames)

	case key.Matches(msg, a.keys.Yank):
		if err := a.clipboardWrite(tiling.Describe(a.host.topo)); err != nil {
			a.logger.Error("clipboard write failed", "err", err)
			a.setMessage(MessageError, "clipboard: "+err.Error())
		} else {
			a.setMessage(MessageSuccess, "geometry yanked")
		}

	case key.Matches(msg, a.keys.Export):
		a.setMessage(MessageInfo, "exporting...")
		return a, a.exportCmd()

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.resize()
	}

	return a, nil
}

// handleMouse routes terminal mouse events into the engine. Presses go to
// the topology's separators and otherwise activate the frame underneath;
// motion and release go to the document so a drag keeps tracking outside
// the thin handle. Releases reach the document in every mode.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := layout.ToCanvas(msg.X, msg.Y, a.layoutConfig.Chrome)

	if a.mode != ModeNormal {
		if msg.Action == tea.MouseActionRelease {
			a.host.doc.Dispatch(tiling.PointerEvent{Type: tiling.PointerRelease, X: x, Y: y})
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		ev := tiling.PointerEvent{Type: tiling.PointerPress, X: x, Y: y}
		if a.host.topo.PointerDown(ev) {
			a.logger.Debug("drag started", "separator", a.host.resizer.Separator(), "x", x, "y", y)
			return a, nil
		}
		if slot := a.host.topo.FrameAt(x, y); slot >= 0 {
			a.workspace.SetActive(slot, len(a.host.topo.Frames()))
		}

	case tea.MouseActionMotion:
		a.host.doc.Dispatch(tiling.PointerEvent{Type: tiling.PointerMove, X: x, Y: y})

	case tea.MouseActionRelease:
		wasDragging := a.host.resizer.Dragging()
		a.host.doc.Dispatch(tiling.PointerEvent{Type: tiling.PointerRelease, X: x, Y: y})
		if wasDragging {
			a.logger.Debug("drag committed", "x", x, "y", y)
		}
	}

	return a, nil
}

// exportCmd snapshots the current flex at the configured export size and
// writes it off the update loop.
func (a App) exportCmd() tea.Cmd {
	snapshot := a.host.topo.Clone()
	snapshot.Thickness = tiling.DefaultSeparatorThickness
	width, height := a.cfg.Export.Width, a.cfg.Export.Height
	tiling.Resolve(width, height, snapshot)

	params := exporter.ExportParams{
		Topology: snapshot,
		Width:    width,
		Height:   height,
		Panes:    append([]model.Pane(nil), a.workspace.Visible(len(snapshot.Frames()))...),
		Active:   a.workspace.Active,
	}
	pathFor := a.exportPath

	return func() tea.Msg {
		path, err := pathFor(snapshot.Preset)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, err: exporter.WriteFile(path, params)}
	}
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func cyclePreset(p tiling.Preset, delta int) tiling.Preset {
	n := len(tiling.Presets())
	return tiling.Preset(((int(p)+delta)%n + n) % n)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
