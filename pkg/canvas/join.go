package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Part is one column block of a horizontal join.
type Part struct {
	Canvas *Canvas
	// Width the canvas is padded to. Zero or less uses the canvas width.
	Width int
}

// JoinHorizontal places canvases side by side, left to right. Each part is
// padded on the right to its requested width, and on the bottom to the height
// of the tallest part. The cursor of the first part that has one is kept.
func JoinHorizontal(parts ...Part) *Canvas {
	rows := 0
	for _, p := range parts {
		rows = max(rows, p.Canvas.Rows())
	}

	var (
		blocks = make([]string, 0, len(parts))
		cursor *Cursor
		offset int
	)

	for _, p := range parts {
		width := p.Width
		if width <= 0 {
			width = p.Canvas.Cols()
		}

		c := p.Canvas.PadTo(width, rows)
		if cur, ok := c.Cursor(); ok && cursor == nil {
			cursor = &Cursor{Col: cur.Col + offset, Row: cur.Row}
		}

		blocks = append(blocks, c.String())
		offset += c.Cols()
	}

	if rows == 0 {
		return Blank(offset, 0)
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	out := New(strings.Split(joined, "\n"), WithCols(offset))
	if cursor != nil {
		out = out.WithCursor(*cursor)
	}

	return out
}
