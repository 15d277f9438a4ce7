package uitest

import (
	"io"
	"testing"

	"github.com/charmbracelet/x/exp/teatest"

	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	" ":      tea.KeySpace,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+z": tea.KeyCtrlZ,
}

// Key returns the [tea.KeyMsg] whose String method returns key.
func Key(key string) tea.KeyMsg {
	if kt, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: kt}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Mouse returns a [tea.MouseMsg] at the given cell.
func Mouse(x, y int, button tea.MouseButton, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: action}
}

// NewTestModel creates a new test model with the given terminal size.
func NewTestModel(tb testing.TB, m tea.Model, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(
		tb, m,
		teatest.WithInitialTermSize(size.Width, size.Height),
	)
}

// WaitFor waits for a condition to be met in the output.
func WaitFor(
	tb testing.TB,
	r io.Reader,
	condition func([]byte) bool,
	opts ...teatest.WaitForOption,
) {
	tb.Helper()
	teatest.WaitFor(tb, r, condition, opts...)
}
