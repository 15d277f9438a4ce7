package scroll

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/macropower/scrollview/pkg/canvas"
	"github.com/macropower/scrollview/pkg/widget"
)

// Side is the side of the content a [ScrollBar] is drawn on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide parses a [Side].
func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToLower(strings.TrimSpace(s))); side {
	case SideLeft, SideRight:
		return side, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Glyphs are the cells a [ScrollBar] is drawn with. Each must be exactly one
// cell wide, and may carry ANSI styling.
type Glyphs struct {
	Thumb  string
	Trough string
}

// DefaultGlyphs returns the default [Glyphs].
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Thumb:  "█",
		Trough: " ",
	}
}

// Validate returns an [ErrInvalidGlyph] error for a glyph that is not one
// cell wide.
func (g Glyphs) Validate() error {
	for name, glyph := range map[string]string{"thumb": g.Thumb, "trough": g.Trough} {
		if ansi.StringWidth(glyph) != 1 {
			return fmt.Errorf("%w: %s %q is %d cells wide", ErrInvalidGlyph, name, glyph, ansi.StringWidth(glyph))
		}
	}

	return nil
}

// ScrollBar decorates a box widget containing a [widget.Scrollable] with a
// vertical bar showing the visible part of the content. The bar is only
// drawn when the content does not fit.
type ScrollBar struct {
	inner           widget.Widget
	scrollable      widget.Scrollable
	glyphs          Glyphs
	side            Side
	lastContentSize widget.Size
	width           int
	barShown        bool
	dragging        bool
}

// BarOpt configures a [ScrollBar].
type BarOpt func(sb *ScrollBar)

// WithSide sets the side the bar is drawn on.
func WithSide(side Side) BarOpt {
	return func(sb *ScrollBar) {
		sb.side = side
	}
}

// WithWidth sets the width of the bar. Values below 1 are clamped to 1.
func WithWidth(width int) BarOpt {
	return func(sb *ScrollBar) {
		sb.width = width
	}
}

// WithGlyphs sets the glyphs the bar is drawn with.
func WithGlyphs(g Glyphs) BarOpt {
	return func(sb *ScrollBar) {
		sb.glyphs = g
	}
}

// NewScrollBar wraps w with a [ScrollBar]. w must be a box widget with a
// [widget.Scrollable] at or below it.
func NewScrollBar(w widget.Widget, opts ...BarOpt) (*ScrollBar, error) {
	sb := &ScrollBar{
		side:   SideRight,
		width:  1,
		glyphs: DefaultGlyphs(),
	}
	for _, opt := range opts {
		opt(sb)
	}

	if sb.side != SideLeft && sb.side != SideRight {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSide, sb.side)
	}

	if sb.width < 1 {
		slog.Debug("clamping scroll bar width", slog.Int("width", sb.width))
		sb.width = 1
	}

	err := sb.glyphs.Validate()
	if err != nil {
		return nil, err
	}

	err = sb.SetWrapped(w)
	if err != nil {
		return nil, err
	}

	return sb, nil
}

// SetWrapped replaces the wrapped widget and resets the bar state.
func (sb *ScrollBar) SetWrapped(w widget.Widget) error {
	if w == nil {
		return fmt.Errorf("%w: nothing to wrap", widget.ErrCapabilityMissing)
	}

	if !w.Sizing().Has(widget.SizingBox) {
		return fmt.Errorf("%w: scroll bar needs a box widget, %T supports %s",
			widget.ErrUnsupportedSizing, w, w.Sizing())
	}

	prev := sb.inner
	sb.inner = w

	s, err := widget.FindScrollable(sb)
	if err != nil {
		sb.inner = prev
		return fmt.Errorf("wrap %T: %w", w, err)
	}

	sb.scrollable = s
	sb.lastContentSize = widget.Size{}
	sb.barShown = false
	sb.dragging = false

	return nil
}

// Inner implements [widget.Decorator].
func (sb *ScrollBar) Inner() widget.Widget {
	return sb.inner
}

// Scrollable returns the widget the bar scrolls.
func (sb *ScrollBar) Scrollable() widget.Scrollable {
	return sb.scrollable
}

// Sizing implements [widget.Widget].
func (sb *ScrollBar) Sizing() widget.Sizing {
	return widget.SizingBox
}

// Render implements [widget.Widget].
func (sb *ScrollBar) Render(size widget.Size, focus bool) (*canvas.Canvas, error) {
	rowsMax := sb.scrollable.RowsMax(size, focus)
	if rowsMax <= size.Rows || size.Cols <= sb.width {
		sb.barShown = false
		sb.lastContentSize = size

		c, err := sb.inner.Render(size, focus)
		if err != nil {
			return nil, err
		}

		err = widget.CheckSize(sb.inner, size, c)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	csize := widget.Box(size.Cols-sb.width, size.Rows)
	sb.barShown = true
	sb.lastContentSize = csize

	c, err := sb.inner.Render(csize, focus)
	if err != nil {
		return nil, err
	}

	err = widget.CheckSize(sb.inner, csize, c)
	if err != nil {
		return nil, err
	}

	rowsMax = sb.scrollable.RowsMax(csize, focus)
	part := Thumb(size.Rows, rowsMax, sb.scrollable.ScrollPosition())

	slog.Debug("render scroll bar",
		slog.Int("rows", rowsMax),
		slog.Int("top", part.Top),
		slog.Int("thumb", part.Thumb),
		slog.Int("bottom", part.Bottom),
	)

	bar := sb.renderBar(part)
	if sb.side == SideLeft {
		return canvas.JoinHorizontal(
			canvas.Part{Canvas: bar, Width: sb.width},
			canvas.Part{Canvas: c, Width: csize.Cols},
		), nil
	}

	return canvas.JoinHorizontal(
		canvas.Part{Canvas: c, Width: csize.Cols},
		canvas.Part{Canvas: bar, Width: sb.width},
	), nil
}

func (sb *ScrollBar) renderBar(part Partition) *canvas.Canvas {
	trough := strings.Repeat(sb.glyphs.Trough, sb.width)
	thumb := strings.Repeat(sb.glyphs.Thumb, sb.width)

	lines := make([]string, 0, part.Top+part.Thumb+part.Bottom)
	for range part.Top {
		lines = append(lines, trough)
	}
	for range part.Thumb {
		lines = append(lines, thumb)
	}
	for range part.Bottom {
		lines = append(lines, trough)
	}

	return canvas.New(lines, canvas.WithCols(sb.width))
}

// barColumns returns the first and last column of the bar for size.
func (sb *ScrollBar) barColumns(size widget.Size) (int, int) {
	if sb.side == SideLeft {
		return 0, sb.width - 1
	}

	return size.Cols - sb.width, size.Cols - 1
}

// contentSize returns the size the wrapped widget was last given for size.
func (sb *ScrollBar) contentSize(size widget.Size) widget.Size {
	if sb.barShown {
		return widget.Box(size.Cols-sb.width, size.Rows)
	}

	return size
}

// MouseEvent implements [widget.MouseHandler]. Presses and drags on the bar
// move the content to the matching position; wheel events always scroll by
// one row, after the wrapped widget has seen them.
func (sb *ScrollBar) MouseEvent(size widget.Size, ev widget.MouseEvent, focus bool) bool {
	first, last := sb.barColumns(size)
	onBar := sb.barShown && ev.Col >= first && ev.Col <= last

	if ev.Button.IsWheel() {
		sb.forwardMouse(size, ev, focus)

		delta := 1
		if ev.Button == widget.ButtonWheelUp {
			delta = -1
		}

		sb.scrollable.SetScrollPosition(max(0, sb.scrollable.ScrollPosition()+delta))

		return true
	}

	tracking := sb.dragging && (ev.Action == widget.MouseDrag || ev.Action == widget.MouseRelease)
	if !onBar && !tracking {
		return sb.forwardMouse(size, ev, focus)
	}

	switch ev.Action {
	case widget.MousePress:
		if ev.Button != widget.ButtonLeft {
			return false
		}

		sb.dragging = true

	case widget.MouseRelease:
		sb.dragging = false

	case widget.MouseDrag:
	}

	row := max(0, min(ev.Row, size.Rows-1))
	pos := int(math.Round(float64(row) * sb.scrollable.ScrollRatio()))
	sb.scrollable.SetScrollPosition(pos)

	return true
}

func (sb *ScrollBar) forwardMouse(size widget.Size, ev widget.MouseEvent, focus bool) bool {
	csize := sb.contentSize(size)
	if sb.barShown && sb.side == SideLeft {
		ev.Col -= sb.width
	}

	ev.Col = max(0, min(ev.Col, csize.Cols-1))

	return widget.HandleMouse(sb.inner, csize, ev, focus)
}

// Keypress implements [widget.KeyHandler]. Keys are passed to the wrapped
// widget at the size it was last rendered at.
func (sb *ScrollBar) Keypress(size widget.Size, key string) bool {
	csize := sb.lastContentSize
	if csize.Mode != widget.SizingBox || csize.Rows != size.Rows {
		csize = sb.contentSize(size)
	}

	return widget.HandleKey(sb.inner, csize, key)
}

// CursorCoords implements [widget.CursorWidget].
func (sb *ScrollBar) CursorCoords(size widget.Size) (canvas.Cursor, bool) {
	cur, ok := widget.CursorOf(sb.inner, sb.contentSize(size))
	if !ok {
		return canvas.Cursor{}, false
	}

	if sb.barShown && sb.side == SideLeft {
		cur.Col += sb.width
	}

	return cur, true
}
