package widget

import "github.com/macropower/scrollview/pkg/canvas"

// Padding adds blank columns on the left and right of another widget.
type Padding struct {
	inner Widget
	left  int
	right int
}

// NewPadding wraps w with left and right blank columns. Negative values are
// treated as zero.
func NewPadding(w Widget, left, right int) *Padding {
	return &Padding{
		inner: w,
		left:  max(0, left),
		right: max(0, right),
	}
}

// Inner implements [Decorator].
func (p *Padding) Inner() Widget {
	return p.inner
}

// Sizing implements [Widget].
func (p *Padding) Sizing() Sizing {
	return p.inner.Sizing()
}

// innerSize returns the size given to the inner widget.
func (p *Padding) innerSize(size Size) Size {
	if size.Mode == SizingFixed {
		return size
	}

	size.Cols = max(0, size.Cols-p.left-p.right)

	return size
}

// Render implements [Widget].
func (p *Padding) Render(size Size, focus bool) (*canvas.Canvas, error) {
	c, err := p.inner.Render(p.innerSize(size), focus)
	if err != nil {
		return nil, err
	}

	if size.Mode == SizingFixed {
		return c.PadTrimLeftRight(p.left, p.right), nil
	}

	// The inner width may have been clamped to zero; pad to the outer width.
	left := min(p.left, size.Cols)
	right := size.Cols - left - c.Cols()

	return c.PadTrimLeftRight(left, right), nil
}

// Rows implements [FlowWidget].
func (p *Padding) Rows(size Size, focus bool) int {
	if fw, ok := p.inner.(FlowWidget); ok {
		return fw.Rows(p.innerSize(size), focus)
	}

	return 0
}

// Pack implements [FixedWidget].
func (p *Padding) Pack(size Size, focus bool) (int, int) {
	if fw, ok := p.inner.(FixedWidget); ok {
		cols, rows := fw.Pack(p.innerSize(size), focus)
		return cols + p.left + p.right, rows
	}

	return 0, 0
}

// CursorCoords implements [CursorWidget].
func (p *Padding) CursorCoords(size Size) (canvas.Cursor, bool) {
	cur, ok := CursorOf(p.inner, p.innerSize(size))
	if !ok {
		return canvas.Cursor{}, false
	}

	cur.Col += p.left

	return cur, true
}

// Keypress implements [KeyHandler].
func (p *Padding) Keypress(size Size, key string) bool {
	return HandleKey(p.inner, p.innerSize(size), key)
}

// MouseEvent implements [MouseHandler]. Events over the padding are not
// handled.
func (p *Padding) MouseEvent(size Size, ev MouseEvent, focus bool) bool {
	inner := p.innerSize(size)

	ev.Col -= p.left
	if ev.Col < 0 || (inner.Mode != SizingFixed && ev.Col >= inner.Cols) {
		return false
	}

	return HandleMouse(p.inner, inner, ev, focus)
}

// PreferredColumn implements [PreferredColumner].
func (p *Padding) PreferredColumn(size Size) (int, bool) {
	col, ok := PreferredColumnOf(p.inner, p.innerSize(size))
	if !ok {
		return 0, false
	}

	return col + p.left, true
}
