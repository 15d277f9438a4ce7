package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/scrollview/pkg/ui/theme"
)

type KeyBindRenderer interface {
	Render(width int) string
}

// HelpRenderer renders the key help shown below the status bar.
type HelpRenderer struct {
	theme    *theme.Theme
	keyBinds KeyBindRenderer
}

func NewHelpRenderer(t *theme.Theme, keyBinds KeyBindRenderer) *HelpRenderer {
	return &HelpRenderer{theme: t, keyBinds: keyBinds}
}

func (r *HelpRenderer) Render(width int) string {
	content := lipgloss.NewStyle().
		Padding(1).
		Render(r.keyBinds.Render(max(0, width-2)))

	return r.theme.HelpStyle.Width(max(0, width)).Render(content)
}

// Height returns the number of rows [HelpRenderer.Render] produces at width.
func (r *HelpRenderer) Height(width int) int {
	return lipgloss.Height(r.Render(width))
}
