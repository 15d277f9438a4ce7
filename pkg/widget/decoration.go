package widget

import "github.com/macropower/scrollview/pkg/canvas"

// Decoration is a transparent wrapper around another widget. Every call is
// passed through unchanged. Embed it to build decorators that only override
// some behavior.
type Decoration struct {
	inner Widget
}

// NewDecoration wraps w.
func NewDecoration(w Widget) *Decoration {
	return &Decoration{inner: w}
}

// Inner implements [Decorator].
func (d *Decoration) Inner() Widget {
	return d.inner
}

// Sizing implements [Widget].
func (d *Decoration) Sizing() Sizing {
	return d.inner.Sizing()
}

// Render implements [Widget].
func (d *Decoration) Render(size Size, focus bool) (*canvas.Canvas, error) {
	return d.inner.Render(size, focus)
}

// Rows implements [FlowWidget]. It returns 0 when the inner widget is not a
// [FlowWidget].
func (d *Decoration) Rows(size Size, focus bool) int {
	if fw, ok := d.inner.(FlowWidget); ok {
		return fw.Rows(size, focus)
	}

	return 0
}

// Pack implements [FixedWidget]. It returns 0, 0 when the inner widget is not
// a [FixedWidget].
func (d *Decoration) Pack(size Size, focus bool) (int, int) {
	if fw, ok := d.inner.(FixedWidget); ok {
		return fw.Pack(size, focus)
	}

	return 0, 0
}

// CursorCoords implements [CursorWidget].
func (d *Decoration) CursorCoords(size Size) (canvas.Cursor, bool) {
	return CursorOf(d.inner, size)
}

// Keypress implements [KeyHandler].
func (d *Decoration) Keypress(size Size, key string) bool {
	return HandleKey(d.inner, size, key)
}

// MouseEvent implements [MouseHandler].
func (d *Decoration) MouseEvent(size Size, ev MouseEvent, focus bool) bool {
	return HandleMouse(d.inner, size, ev, focus)
}

// PreferredColumn implements [PreferredColumner].
func (d *Decoration) PreferredColumn(size Size) (int, bool) {
	return PreferredColumnOf(d.inner, size)
}
