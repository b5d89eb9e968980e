// Package exporter writes resolved layouts as standalone HTML snapshots and
// reads them back.
package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/tiles/internal/model"
	"github.com/nikbrunner/tiles/internal/tiling"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const stylesheet = `
body { margin: 0; padding: 16px; font-family: sans-serif; background: #1e1e2e; color: #cdd6f4; }
.container { position: relative; background: #11111b; }
.frame { position: absolute; box-sizing: border-box; border: 1px solid #45475a; display: flex; align-items: center; justify-content: center; }
.frame.active { border-color: #f5c2e7; }
.vsep, .hsep { position: absolute; background: #585b70; }
.vsep { cursor: col-resize; }
.hsep { cursor: row-resize; }
`

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/tiles-PRESET-YYYY-MM-DD.html
func DefaultExportPath(preset tiling.Preset) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tiles-%s-%s.html", preset, time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportParams holds what a snapshot shows.
type ExportParams struct {
	Topology *tiling.Topology // already resolved at Width x Height
	Width    int
	Height   int
	Panes    []model.Pane // homed into frame slots by index
	Active   int          // active frame slot, or -1
}

// ExportHTML renders the topology as an HTML document with one absolutely
// positioned element per section.
func ExportHTML(params ExportParams) string {
	var b strings.Builder
	// Writing to a strings.Builder cannot fail.
	_ = WriteHTML(&b, params)
	return b.String()
}

// WriteHTML renders the snapshot to w.
func WriteHTML(w io.Writer, params ExportParams) error {
	t := params.Topology
	title := fmt.Sprintf("tiles: %s", t.Preset)

	container := element(atom.Div,
		attr("class", "container"),
		attr("data-preset", t.Preset.String()),
		attr("data-width", strconv.Itoa(params.Width)),
		attr("data-height", strconv.Itoa(params.Height)),
		attr("data-thickness", strconv.Itoa(t.Thickness)),
		attr("style", fmt.Sprintf("width:%dpx;height:%dpx", params.Width, params.Height)),
	)

	slot := 0
	for i, s := range t.Sections {
		r := s.Rect
		class := s.Label()
		var label string
		if s.IsFrame() {
			if slot == params.Active {
				class += " active"
			}
			if slot < len(params.Panes) {
				label = params.Panes[slot].Title()
			}
			slot++
		}

		n := element(atom.Div,
			attr("class", class),
			attr("data-index", strconv.Itoa(i)),
			attr("data-kind", s.Label()),
			attr("data-flex-width", strconv.FormatFloat(s.FlexWidth, 'f', -1, 64)),
			attr("data-flex-height", strconv.FormatFloat(s.FlexHeight, 'f', -1, 64)),
			attr("style", fmt.Sprintf("top:%dpx;left:%dpx;width:%dpx;height:%dpx", r.Top, r.Left, r.Width, r.Height)),
		)
		if label != "" {
			n.AppendChild(text(label))
		}
		container.AppendChild(n)
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	titleNode := element(atom.Title)
	titleNode.AppendChild(text(title))
	head.AppendChild(titleNode)
	style := element(atom.Style)
	style.AppendChild(text(stylesheet))
	head.AppendChild(style)

	body := element(atom.Body)
	h1 := element(atom.H1)
	h1.AppendChild(text(title))
	body.AppendChild(h1)
	body.AppendChild(container)

	root := element(atom.Html, attr("lang", "en"))
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	return nil
}

// WriteFile renders the snapshot to path, creating the parent directory.
func WriteFile(path string, params ExportParams) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(ExportHTML(params)), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
