// Package scroll provides the scrolling widgets: [Viewport], which shows a
// window onto content taller than the space it is given, and [ScrollBar],
// which decorates a viewport with a proportional thumb.
package scroll

import (
	"fmt"
	"log/slog"

	"github.com/macropower/scrollview/pkg/canvas"
	"github.com/macropower/scrollview/pkg/keys"
	"github.com/macropower/scrollview/pkg/widget"
)

// Viewport shows a window of a content widget and owns its vertical scroll
// offset. It is a box widget.
type Viewport struct {
	content    widget.Widget
	commands   *keys.CommandMap
	invalidate func()
	state      State
	dirty      bool
}

// Opt configures a [Viewport].
type Opt func(v *Viewport)

// WithCommandMap sets the command map used to interpret keys the content
// does not consume.
func WithCommandMap(cm *keys.CommandMap) Opt {
	return func(v *Viewport) {
		v.commands = cm
	}
}

// WithInvalidateFunc sets a function called whenever the viewport needs to
// be rendered again.
func WithInvalidateFunc(fn func()) Opt {
	return func(v *Viewport) {
		v.invalidate = fn
	}
}

// NewViewport creates a [Viewport] showing content.
func NewViewport(content widget.Widget, opts ...Opt) *Viewport {
	v := &Viewport{
		content:  content,
		commands: keys.DefaultCommandMap(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// SetContent replaces the content widget and resets the scroll state.
func (v *Viewport) SetContent(w widget.Widget) {
	v.content = w
	v.state = State{}
	v.markDirty()
}

// Content returns the content widget.
func (v *Viewport) Content() widget.Widget {
	return v.content
}

// Inner implements [widget.Decorator].
func (v *Viewport) Inner() widget.Widget {
	return v.content
}

// State returns a copy of the scroll state.
func (v *Viewport) State() State {
	return v.state
}

// Dirty reports whether the viewport changed since it was last rendered.
func (v *Viewport) Dirty() bool {
	return v.dirty
}

func (v *Viewport) markDirty() {
	v.dirty = true
	if v.invalidate != nil {
		v.invalidate()
	}
}

// Sizing implements [widget.Widget].
func (v *Viewport) Sizing() widget.Sizing {
	return widget.SizingBox
}

// contentSize returns the size to render the content at for a window of
// size. Flow is preferred over fixed, and fixed over box.
func (v *Viewport) contentSize(size widget.Size) (widget.Size, error) {
	sizing := v.content.Sizing()

	switch {
	case sizing.Has(widget.SizingFlow):
		return widget.Flow(size.Cols), nil
	case sizing.Has(widget.SizingFixed):
		return widget.Fixed(), nil
	case sizing.Has(widget.SizingBox):
		return size, nil
	}

	return widget.Size{}, fmt.Errorf("%w: %T supports %s", widget.ErrUnsupportedSizing, v.content, sizing)
}

// Render implements [widget.Widget].
func (v *Viewport) Render(size widget.Size, focus bool) (*canvas.Canvas, error) {
	csize, err := v.contentSize(size)
	if err != nil {
		return nil, err
	}

	widget.SetPageRows(v.content, size.Rows)

	full, err := v.content.Render(csize, focus)
	if err != nil {
		return nil, fmt.Errorf("render content: %w", err)
	}

	err = widget.CheckSize(v.content, csize, full)
	if err != nil {
		return nil, err
	}

	v.dirty = false
	v.state.RowsMax = full.Rows()
	v.state.RowsDisplayable = size.Rows

	var cursor *canvas.Cursor
	if cur, ok := full.Cursor(); ok {
		cursor = &cur
	}

	if full.Cols() <= size.Cols && full.Rows() <= size.Rows {
		v.state.TrimTop = 0
		v.state.Pending = ActionNone
		v.state.LastCursor = cursor
		v.state.ForwardKeypress = cursor != nil

		return full.PadTo(size.Cols, size.Rows), nil
	}

	prev := v.state.TrimTop
	action := v.state.Pending
	v.state = Resolve(v.state, full.Rows(), size.Rows, cursor)

	if action != ActionNone || prev != v.state.TrimTop {
		slog.Debug("resolved scroll",
			slog.String("action", action.String()),
			slog.Int("from", prev),
			slog.Int("to", v.state.TrimTop),
			slog.Int("rows", full.Rows()),
			slog.Int("display", size.Rows),
		)
	}

	trim := v.state.TrimTop
	out := full.CropTop(trim)
	if bottom := full.Rows() - size.Rows - trim; bottom > 0 {
		out = out.CropBottom(bottom)
	}

	out = out.PadTrimLeftRight(0, size.Cols-out.Cols()).PadTo(size.Cols, size.Rows)

	_, visible := out.Cursor()
	v.state.LastCursor = cursor
	v.state.ForwardKeypress = visible

	return out, nil
}

// Keypress implements [widget.KeyHandler]. When the last render showed a
// cursor the content sees the key first. Otherwise, and for keys the content
// does not consume, scroll commands are queued for the next render.
func (v *Viewport) Keypress(size widget.Size, key string) bool {
	if v.state.ForwardKeypress {
		csize, err := v.contentSize(size)
		if err != nil {
			slog.Debug("skip forwarding key",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return false
		}

		if cur, ok := widget.CursorOf(v.content, csize); ok {
			v.state.LastCursor = &cur
		}

		if widget.HandleKey(v.content, csize, key) {
			v.markDirty()
			return true
		}
	}

	cmd, ok := v.commands.Lookup(key)
	if !ok {
		return false
	}

	action, ok := ActionFor(cmd)
	if !ok {
		return false
	}

	v.state.Pending = action
	v.markDirty()

	return true
}

// MouseEvent implements [widget.MouseHandler]. The event row is translated
// into content coordinates.
func (v *Viewport) MouseEvent(size widget.Size, ev widget.MouseEvent, focus bool) bool {
	if !widget.AcceptsMouse(v.content) {
		return false
	}

	csize, err := v.contentSize(size)
	if err != nil {
		return false
	}

	ev.Row += v.ScrollPosition()
	if !widget.HandleMouse(v.content, csize, ev, focus) {
		return false
	}

	v.markDirty()

	return true
}

// CursorCoords implements [widget.CursorWidget]. It reports the content
// cursor in window coordinates, when it is inside the window.
func (v *Viewport) CursorCoords(size widget.Size) (canvas.Cursor, bool) {
	csize, err := v.contentSize(size)
	if err != nil {
		return canvas.Cursor{}, false
	}

	cur, ok := widget.CursorOf(v.content, csize)
	if !ok {
		return canvas.Cursor{}, false
	}

	cur.Row -= v.ScrollPosition()
	if cur.Row < 0 || cur.Row >= size.Rows || cur.Col < 0 || cur.Col >= size.Cols {
		return canvas.Cursor{}, false
	}

	return cur, true
}

// PreferredColumn implements [widget.PreferredColumner].
func (v *Viewport) PreferredColumn(size widget.Size) (int, bool) {
	csize, err := v.contentSize(size)
	if err != nil {
		return 0, false
	}

	return widget.PreferredColumnOf(v.content, csize)
}

// ScrollPosition implements [widget.Scrollable].
func (v *Viewport) ScrollPosition() int {
	trim := normalizeTrim(v.state.TrimTop, v.state.RowsMax, v.state.RowsDisplayable)
	return max(0, trim)
}

// SetScrollPosition implements [widget.Scrollable]. Positions past the end
// are clamped once the content size is known. A negative position counts
// from the bottom, so -1 scrolls to the end.
func (v *Viewport) SetScrollPosition(pos int) {
	if pos >= 0 && v.state.RowsDisplayable > 0 {
		pos = min(pos, max(0, v.state.RowsMax-v.state.RowsDisplayable))
	}

	v.state.TrimTop = pos
	v.markDirty()
}

// RowsMax implements [widget.Scrollable]. It measures the content without
// rendering the window.
func (v *Viewport) RowsMax(size widget.Size, focus bool) int {
	csize, err := v.contentSize(size)
	if err != nil {
		return 0
	}

	v.state.RowsMax = v.measure(csize, focus)

	return v.state.RowsMax
}

// measure returns the rows of the content at csize, rendering it only when
// the content cannot report its rows directly.
func (v *Viewport) measure(csize widget.Size, focus bool) int {
	switch csize.Mode {
	case widget.SizingFlow:
		if fw, ok := v.content.(widget.FlowWidget); ok {
			return fw.Rows(csize, focus)
		}

	case widget.SizingFixed:
		if fw, ok := v.content.(widget.FixedWidget); ok {
			_, rows := fw.Pack(csize, focus)
			return rows
		}

	case widget.SizingBox:
		return csize.Rows
	}

	c, err := v.content.Render(csize, focus)
	if err != nil {
		return 0
	}

	return c.Rows()
}

// ScrollRatio implements [widget.Scrollable]. It is 0 before the first
// render.
func (v *Viewport) ScrollRatio() float64 {
	if v.state.RowsDisplayable == 0 {
		return 0
	}

	return float64(v.state.RowsMax) / float64(v.state.RowsDisplayable)
}
