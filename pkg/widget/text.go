package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/macropower/scrollview/pkg/canvas"
)

// Text displays lines of text. Lines are never wrapped; anything past the
// right edge is clipped.
type Text struct {
	lines []string
}

// NewText creates a [Text] from s, split on newlines. A single trailing
// newline does not produce an empty last line.
func NewText(s string) *Text {
	t := &Text{}
	t.SetText(s)

	return t
}

// SetText replaces the displayed text.
func (t *Text) SetText(s string) {
	t.lines = splitLines(s)
}

// Lines returns the displayed lines.
func (t *Text) Lines() []string {
	return t.lines
}

// Sizing implements [Widget].
func (t *Text) Sizing() Sizing {
	return SizingFlow | SizingFixed
}

// Rows implements [FlowWidget].
func (t *Text) Rows(_ Size, _ bool) int {
	return len(t.lines)
}

// Pack implements [FixedWidget].
func (t *Text) Pack(_ Size, _ bool) (int, int) {
	return maxWidth(t.lines), len(t.lines)
}

// Render implements [Widget].
func (t *Text) Render(size Size, _ bool) (*canvas.Canvas, error) {
	switch size.Mode {
	case SizingFlow:
		return canvas.New(t.lines, canvas.WithCols(size.Cols)), nil
	case SizingBox:
		c := canvas.New(t.lines, canvas.WithCols(size.Cols))
		return c.PadTrimTopBottom(0, size.Rows-c.Rows()), nil
	}

	return canvas.New(t.lines), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}

	return w
}
