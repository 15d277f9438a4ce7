package widget

import (
	"github.com/macropower/scrollview/pkg/canvas"
	"github.com/macropower/scrollview/pkg/keys"
)

// List displays lines with one focused line. The focused line is exposed as
// the cursor, so a wrapping viewport follows it.
type List struct {
	commands   *keys.CommandMap
	focusStyle func(string) string
	lines      []string
	focus      int
	pageRows   int
}

// ListOpt configures a [List].
type ListOpt func(l *List)

// WithFocusStyle renders the focused line through fn.
func WithFocusStyle(fn func(string) string) ListOpt {
	return func(l *List) {
		l.focusStyle = fn
	}
}

// WithListCommands sets the command map used to interpret keys.
func WithListCommands(cm *keys.CommandMap) ListOpt {
	return func(l *List) {
		l.commands = cm
	}
}

// WithPageSize sets the rows shown per page. Page keys are left unhandled
// until a page size is known.
func WithPageSize(rows int) ListOpt {
	return func(l *List) {
		l.pageRows = rows
	}
}

// NewList creates a [List] from s, split on newlines. The first line is
// focused.
func NewList(s string, opts ...ListOpt) *List {
	l := &List{
		commands: keys.DefaultCommandMap(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.SetText(s)

	return l
}

// SetText replaces the lines. The focus is kept when still in range.
func (l *List) SetText(s string) {
	l.lines = splitLines(s)
	l.SetFocus(l.focus)
}

// Lines returns the displayed lines.
func (l *List) Lines() []string {
	return l.lines
}

// Focus returns the index of the focused line.
func (l *List) Focus() int {
	return l.focus
}

// SetFocus focuses line i, clamped to the available lines.
func (l *List) SetFocus(i int) {
	l.focus = max(0, min(i, len(l.lines)-1))
}

// SetPageRows implements [Pager].
func (l *List) SetPageRows(rows int) {
	l.pageRows = rows
}

// Sizing implements [Widget].
func (l *List) Sizing() Sizing {
	return SizingFlow
}

// Rows implements [FlowWidget].
func (l *List) Rows(_ Size, _ bool) int {
	return len(l.lines)
}

// Render implements [Widget].
func (l *List) Render(size Size, focus bool) (*canvas.Canvas, error) {
	lines := l.lines
	if focus && l.focusStyle != nil && len(lines) > 0 {
		lines = make([]string, len(l.lines))
		copy(lines, l.lines)

		// Fit before styling so the style covers the whole row.
		lines[l.focus] = l.focusStyle(canvas.New(lines[l.focus:l.focus+1], canvas.WithCols(size.Cols)).String())
	}

	opts := []canvas.Opt{canvas.WithCols(size.Cols)}
	if cur, ok := l.CursorCoords(size); ok {
		opts = append(opts, canvas.WithCursor(cur))
	}

	return canvas.New(lines, opts...), nil
}

// CursorCoords implements [CursorWidget].
func (l *List) CursorCoords(size Size) (canvas.Cursor, bool) {
	if len(l.lines) == 0 || size.Cols == 0 {
		return canvas.Cursor{}, false
	}

	return canvas.Cursor{Col: 0, Row: l.focus}, true
}

// Keypress implements [KeyHandler]. Moving past either end is left
// unhandled. Page keys move the focus by one row less than the page size.
func (l *List) Keypress(_ Size, key string) bool {
	cmd, ok := l.commands.Lookup(key)
	if !ok {
		return false
	}

	last := len(l.lines) - 1

	switch cmd {
	case keys.CommandUp:
		if l.focus <= 0 {
			return false
		}

		l.focus--

	case keys.CommandDown:
		if l.focus >= last {
			return false
		}

		l.focus++

	case keys.CommandPageUp:
		if l.focus <= 0 || l.pageRows <= 0 {
			return false
		}

		l.focus = max(0, l.focus-l.pageStep())

	case keys.CommandPageDown:
		if l.focus >= last || l.pageRows <= 0 {
			return false
		}

		l.focus = min(last, l.focus+l.pageStep())

	case keys.CommandHome:
		if l.focus <= 0 {
			return false
		}

		l.focus = 0

	case keys.CommandEnd:
		if l.focus >= last {
			return false
		}

		l.focus = last

	default:
		return false
	}

	return true
}

func (l *List) pageStep() int {
	return max(1, l.pageRows-1)
}

// MouseEvent implements [MouseHandler]. A left press focuses the row under
// the pointer.
func (l *List) MouseEvent(_ Size, ev MouseEvent, _ bool) bool {
	if ev.Action != MousePress || ev.Button != ButtonLeft {
		return false
	}

	if ev.Row < 0 || ev.Row >= len(l.lines) {
		return false
	}

	l.focus = ev.Row

	return true
}
