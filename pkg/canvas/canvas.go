// Package canvas provides an immutable rectangular grid of terminal cells.
//
// A [Canvas] is stored as lines of (possibly ANSI styled) text, each exactly
// [Canvas.Cols] cells wide. Every operation returns a new canvas; the
// receiver is never modified.
package canvas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Cursor is a cell coordinate within a canvas.
type Cursor struct {
	Col int
	Row int
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Canvas is an immutable grid of cells with an optional cursor.
type Canvas struct {
	cursor *Cursor
	lines  []string
	cols   int
}

// Opt configures a [Canvas] created by [New].
type Opt func(c *Canvas)

// WithCursor sets the cursor position of the canvas.
func WithCursor(cur Cursor) Opt {
	return func(c *Canvas) {
		c.cursor = &cur
	}
}

// WithCols forces the canvas width. Lines are padded or truncated to fit.
func WithCols(cols int) Opt {
	return func(c *Canvas) {
		c.cols = max(0, cols)
	}
}

// New creates a [Canvas] from the given lines. Unless [WithCols] is set, the
// width is the width of the widest line. Lines are padded to the canvas width.
func New(lines []string, opts ...Opt) *Canvas {
	c := &Canvas{cols: -1}
	for _, opt := range opts {
		opt(c)
	}

	if c.cols < 0 {
		c.cols = 0
		for _, l := range lines {
			c.cols = max(c.cols, ansi.StringWidth(l))
		}
	}

	c.lines = make([]string, len(lines))
	for i, l := range lines {
		c.lines[i] = fit(l, c.cols)
	}

	return c
}

// FromString creates a [Canvas] by splitting s on newlines.
func FromString(s string, opts ...Opt) *Canvas {
	if s == "" {
		return New(nil, opts...)
	}

	return New(strings.Split(s, "\n"), opts...)
}

// Blank creates a canvas of the given size filled with spaces.
func Blank(cols, rows int) *Canvas {
	return Solid(" ", cols, rows)
}

// Solid creates a canvas of the given size filled with a single-cell glyph.
// The glyph may carry ANSI styling.
func Solid(glyph string, cols, rows int) *Canvas {
	cols = max(0, cols)
	rows = max(0, rows)

	line := strings.Repeat(glyph, cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}

	return &Canvas{lines: lines, cols: cols}
}

// Cols returns the number of columns.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the number of rows.
func (c *Canvas) Rows() int { return len(c.lines) }

// Cursor returns the cursor position, if the canvas has one.
func (c *Canvas) Cursor() (Cursor, bool) {
	if c.cursor == nil {
		return Cursor{}, false
	}

	return *c.cursor, true
}

// Lines returns a copy of the canvas lines.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)

	return out
}

// String joins the canvas lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// WithCursor returns a copy of the canvas with the cursor set.
func (c *Canvas) WithCursor(cur Cursor) *Canvas {
	out := c.clone()
	out.cursor = &cur

	return out
}

// WithoutCursor returns a copy of the canvas with no cursor.
func (c *Canvas) WithoutCursor() *Canvas {
	out := c.clone()
	out.cursor = nil

	return out
}

// CropTop removes n rows from the top. The cursor moves up with the content.
func (c *Canvas) CropTop(n int) *Canvas {
	n = min(max(0, n), len(c.lines))
	out := c.clone()
	out.lines = out.lines[n:]
	out.shiftCursor(0, -n)

	return out
}

// CropBottom removes n rows from the bottom. A cursor in the removed rows is
// dropped.
func (c *Canvas) CropBottom(n int) *Canvas {
	n = min(max(0, n), len(c.lines))
	out := c.clone()
	out.lines = out.lines[:len(out.lines)-n]
	out.shiftCursor(0, 0)

	return out
}

// PadTrimLeftRight pads (positive) or trims (negative) columns on each side.
func (c *Canvas) PadTrimLeftRight(left, right int) *Canvas {
	out := c.clone()

	if left < 0 {
		n := min(-left, out.cols)
		for i, l := range out.lines {
			out.lines[i] = ansi.TruncateLeft(l, n, "")
		}
		out.cols -= n
	} else if left > 0 {
		pad := strings.Repeat(" ", left)
		for i, l := range out.lines {
			out.lines[i] = pad + l
		}
		out.cols += left
	}

	if right < 0 {
		n := min(-right, out.cols)
		out.cols -= n
		for i, l := range out.lines {
			out.lines[i] = ansi.Truncate(l, out.cols, "")
		}
	} else if right > 0 {
		pad := strings.Repeat(" ", right)
		for i, l := range out.lines {
			out.lines[i] = l + pad
		}
		out.cols += right
	}

	out.shiftCursor(left, 0)

	return out
}

// PadTrimTopBottom pads (positive) or trims (negative) rows on each side.
func (c *Canvas) PadTrimTopBottom(top, bottom int) *Canvas {
	out := c
	if top < 0 {
		out = out.CropTop(-top)
	} else if top > 0 {
		out = out.clone()
		out.lines = append(blankLines(out.cols, top), out.lines...)
		out.shiftCursor(0, top)
	}

	if bottom < 0 {
		out = out.CropBottom(-bottom)
	} else if bottom > 0 {
		out = out.clone()
		out.lines = append(out.lines, blankLines(out.cols, bottom)...)
	}

	return out
}

// PadTo pads the canvas on the right and bottom to at least cols x rows.
// It never crops.
func (c *Canvas) PadTo(cols, rows int) *Canvas {
	return c.
		PadTrimLeftRight(0, max(0, cols-c.cols)).
		PadTrimTopBottom(0, max(0, rows-c.Rows()))
}

func (c *Canvas) clone() *Canvas {
	out := &Canvas{cols: c.cols}
	out.lines = make([]string, len(c.lines))
	copy(out.lines, c.lines)
	if c.cursor != nil {
		cur := *c.cursor
		out.cursor = &cur
	}

	return out
}

// shiftCursor moves the cursor with the content, dropping it when it leaves
// the canvas.
func (c *Canvas) shiftCursor(dCol, dRow int) {
	if c.cursor == nil {
		return
	}

	c.cursor.Col += dCol
	c.cursor.Row += dRow
	if c.cursor.Col < 0 || c.cursor.Col >= c.cols ||
		c.cursor.Row < 0 || c.cursor.Row >= len(c.lines) {
		c.cursor = nil
	}
}

func blankLines(cols, rows int) []string {
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}

	return lines
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}

	return s + strings.Repeat(" ", width-w)
}
