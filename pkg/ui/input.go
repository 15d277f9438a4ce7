package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/scrollview/pkg/widget"
)

// mouseEvent converts a [tea.MouseMsg] to a [widget.MouseEvent]. Motion
// without a pressed button is dropped.
func mouseEvent(msg tea.MouseMsg) (widget.MouseEvent, bool) {
	ev := widget.MouseEvent{Col: msg.X, Row: msg.Y}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = widget.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = widget.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = widget.ButtonRight
	case tea.MouseButtonWheelUp:
		ev.Button = widget.ButtonWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = widget.ButtonWheelDown
	case tea.MouseButtonNone:
		ev.Button = widget.ButtonNone
	default:
		return widget.MouseEvent{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = widget.MousePress
	case tea.MouseActionRelease:
		ev.Action = widget.MouseRelease
	case tea.MouseActionMotion:
		if ev.Button == widget.ButtonNone {
			return widget.MouseEvent{}, false
		}

		ev.Action = widget.MouseDrag
	default:
		return widget.MouseEvent{}, false
	}

	return ev, true
}
