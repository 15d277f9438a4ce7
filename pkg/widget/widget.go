// Package widget defines the capability protocol shared by renderable
// terminal widgets.
//
// Every widget implements [Widget]. Optional behaviors are expressed as small
// capability interfaces ([FlowWidget], [FixedWidget], [CursorWidget],
// [KeyHandler], [MouseHandler], [PreferredColumner], [Decorator],
// [Scrollable]) that callers discover with type assertions, or through the
// helper functions in this package, which turn a missing capability into a
// typed "not supported" result.
//
// Widgets are not safe for concurrent use.
package widget

import (
	"fmt"
	"strings"

	"github.com/macropower/scrollview/pkg/canvas"
)

// Sizing is a set of sizing modes a widget supports.
type Sizing uint8

const (
	// SizingFixed widgets choose both their columns and rows.
	SizingFixed Sizing = 1 << iota
	// SizingFlow widgets are given columns and choose their rows.
	SizingFlow
	// SizingBox widgets are given both columns and rows.
	SizingBox
)

// Has reports whether all modes in m are in s.
func (s Sizing) Has(m Sizing) bool {
	return m != 0 && s&m == m
}

func (s Sizing) String() string {
	var modes []string
	if s.Has(SizingFixed) {
		modes = append(modes, "fixed")
	}
	if s.Has(SizingFlow) {
		modes = append(modes, "flow")
	}
	if s.Has(SizingBox) {
		modes = append(modes, "box")
	}
	if len(modes) == 0 {
		return "none"
	}

	return strings.Join(modes, "|")
}

// Size is the size a widget is asked to render at. Which fields are
// meaningful depends on Mode.
type Size struct {
	Cols int
	Rows int
	Mode Sizing
}

// Box returns a box size.
func Box(cols, rows int) Size {
	return Size{Cols: max(0, cols), Rows: max(0, rows), Mode: SizingBox}
}

// Flow returns a flow size; the widget chooses its rows.
func Flow(cols int) Size {
	return Size{Cols: max(0, cols), Mode: SizingFlow}
}

// Fixed returns a fixed size; the widget chooses its columns and rows.
func Fixed() Size {
	return Size{Mode: SizingFixed}
}

func (s Size) String() string {
	switch s.Mode {
	case SizingBox:
		return fmt.Sprintf("box(%d,%d)", s.Cols, s.Rows)
	case SizingFlow:
		return fmt.Sprintf("flow(%d)", s.Cols)
	case SizingFixed:
		return "fixed()"
	}

	return "size(?)"
}

// Widget is the base capability every widget implements.
type Widget interface {
	// Sizing returns the sizing modes the widget supports.
	Sizing() Sizing
	// Render renders the widget. The returned canvas must match size on every
	// axis the size mode constrains.
	Render(size Size, focus bool) (*canvas.Canvas, error)
}

// FlowWidget is a widget that can report its rows for a given width.
// Required for widgets supporting [SizingFlow].
type FlowWidget interface {
	Widget
	Rows(size Size, focus bool) int
}

// FixedWidget is a widget that can report its natural size.
// Required for widgets supporting [SizingFixed].
type FixedWidget interface {
	Widget
	Pack(size Size, focus bool) (cols, rows int)
}

// CursorWidget exposes the cursor position without rendering.
type CursorWidget interface {
	CursorCoords(size Size) (canvas.Cursor, bool)
}

// KeyHandler handles key presses. It returns true when the key was consumed.
type KeyHandler interface {
	Keypress(size Size, key string) bool
}

// MouseHandler handles pointer input. It returns true when the event was
// consumed. Coordinates are relative to the widget.
type MouseHandler interface {
	MouseEvent(size Size, ev MouseEvent, focus bool) bool
}

// PreferredColumner reports the column a cursor would like to stay in when
// moving between rows.
type PreferredColumner interface {
	PreferredColumn(size Size) (int, bool)
}

// Pager is implemented by widgets that move by pages. A viewport reports the
// rows it displays through SetPageRows before each render.
type Pager interface {
	SetPageRows(rows int)
}

// Decorator is implemented by widgets that wrap another widget.
type Decorator interface {
	Inner() Widget
}

// Scrollable is implemented by widgets that own a vertical scroll offset.
type Scrollable interface {
	// ScrollPosition returns the number of rows hidden above the window.
	ScrollPosition() int
	// SetScrollPosition sets the scroll offset. Out of range values are
	// clamped.
	SetScrollPosition(pos int)
	// RowsMax returns the total number of content rows at size.
	RowsMax(size Size, focus bool) int
	// ScrollRatio returns total rows divided by displayed rows.
	ScrollRatio() float64
}
