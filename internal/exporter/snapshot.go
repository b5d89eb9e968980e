package exporter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikbrunner/tiles/internal/tiling"
	"golang.org/x/net/html"
)

// ErrNoContainer is returned when a document has no snapshot container.
var ErrNoContainer = errors.New("no tiles snapshot container found")

// Snapshot is the geometry recovered from an exported document.
type Snapshot struct {
	Preset    string
	Width     int
	Height    int
	Thickness int
	Sections  []SnapshotSection
}

// SnapshotSection is one positioned element of a snapshot.
type SnapshotSection struct {
	Index      int
	Kind       string // frame, vsep or hsep
	FlexWidth  float64
	FlexHeight float64
	Rect       tiling.Rect
	Title      string
	Active     bool
}

// ReadSnapshot parses an HTML snapshot written by WriteHTML.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	container := findContainer(doc)
	if container == nil {
		return nil, ErrNoContainer
	}

	snap := &Snapshot{Preset: getAttr(container, "data-preset")}
	var errs []error
	snap.Width = atoi(getAttr(container, "data-width"), "data-width", &errs)
	snap.Height = atoi(getAttr(container, "data-height"), "data-height", &errs)
	snap.Thickness = atoi(getAttr(container, "data-thickness"), "data-thickness", &errs)

	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || getAttr(c, "data-kind") == "" {
			continue
		}
		s := SnapshotSection{
			Index:  atoi(getAttr(c, "data-index"), "data-index", &errs),
			Kind:   getAttr(c, "data-kind"),
			Title:  getTextContent(c),
			Active: hasClass(c, "active"),
		}
		s.FlexWidth = atof(getAttr(c, "data-flex-width"), "data-flex-width", &errs)
		s.FlexHeight = atof(getAttr(c, "data-flex-height"), "data-flex-height", &errs)
		s.Rect, err = parseRect(getAttr(c, "style"))
		if err != nil {
			errs = append(errs, fmt.Errorf("section %d: %w", s.Index, err))
		}
		snap.Sections = append(snap.Sections, s)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return snap, nil
}

// Frames returns the frame sections in slot order.
func (s *Snapshot) Frames() []SnapshotSection {
	var frames []SnapshotSection
	for _, sec := range s.Sections {
		if sec.Kind == "frame" {
			frames = append(frames, sec)
		}
	}
	return frames
}

func findContainer(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, "container") && getAttr(n, "data-preset") != "" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findContainer(c); found != nil {
			return found
		}
	}
	return nil
}

// parseRect reads top/left/width/height pixel values from an inline style.
func parseRect(style string) (tiling.Rect, error) {
	var r tiling.Rect
	seen := 0
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(val), "px"))
		if err != nil {
			return r, fmt.Errorf("style %q: %w", decl, err)
		}
		switch strings.TrimSpace(key) {
		case "top":
			r.Top = n
		case "left":
			r.Left = n
		case "width":
			r.Width = n
		case "height":
			r.Height = n
		default:
			continue
		}
		seen++
	}
	if seen != 4 {
		return r, fmt.Errorf("style %q: missing position", style)
	}
	return r, nil
}

func atoi(s, name string, errs *[]error) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", name, err))
	}
	return n
}

func atof(s, name string, errs *[]error) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", name, err))
	}
	return f
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
