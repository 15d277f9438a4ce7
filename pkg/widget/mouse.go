package widget

import "fmt"

// MouseAction is the kind of pointer event.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseDrag:
		return "drag"
	case MouseRelease:
		return "release"
	}

	return "unknown"
}

// MouseButton identifies the button of a pointer event.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel up"
	case ButtonWheelDown:
		return "wheel down"
	}

	return "unknown"
}

// IsWheel reports whether the button is a scroll wheel direction.
func (b MouseButton) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown
}

// MouseEvent is a pointer event at a widget-relative cell.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
	Col    int
	Row    int
}

func (ev MouseEvent) String() string {
	return fmt.Sprintf("%s %s at (%d,%d)", ev.Button, ev.Action, ev.Col, ev.Row)
}
