package scroll

import (
	"github.com/macropower/scrollview/pkg/canvas"
	"github.com/macropower/scrollview/pkg/keys"
)

// Action is a queued request to change the scroll offset.
type Action uint8

const (
	ActionNone Action = iota
	ActionLineUp
	ActionLineDown
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionEnd
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLineUp:
		return "line up"
	case ActionLineDown:
		return "line down"
	case ActionPageUp:
		return "page up"
	case ActionPageDown:
		return "page down"
	case ActionTop:
		return "top"
	case ActionEnd:
		return "end"
	}

	return "unknown"
}

// ActionFor returns the [Action] for a key command.
func ActionFor(cmd keys.Command) (Action, bool) {
	switch cmd {
	case keys.CommandUp:
		return ActionLineUp, true
	case keys.CommandDown:
		return ActionLineDown, true
	case keys.CommandPageUp:
		return ActionPageUp, true
	case keys.CommandPageDown:
		return ActionPageDown, true
	case keys.CommandHome:
		return ActionTop, true
	case keys.CommandEnd:
		return ActionEnd, true
	}

	return ActionNone, false
}

// State is the scroll state of a [Viewport].
type State struct {
	// LastCursor is the content cursor as of the last render or forwarded
	// key, in content coordinates.
	LastCursor *canvas.Cursor
	// TrimTop is the number of content rows hidden above the window.
	// A negative value counts from the bottom: -1 shows the last rows.
	TrimTop int
	// RowsMax is the total number of content rows.
	RowsMax int
	// RowsDisplayable is the height of the window.
	RowsDisplayable int
	// Pending is applied and cleared by the next render.
	Pending Action
	// ForwardKeypress is set when the last render showed a cursor.
	ForwardKeypress bool
}

// normalizeTrim converts a from-bottom trim into a from-top trim.
func normalizeTrim(trim, contentRows, displayRows int) int {
	if trim < 0 {
		return contentRows - displayRows + trim + 1
	}

	return trim
}

// Resolve applies the pending action and cursor movement of st to content
// of contentRows rows shown in a window of displayRows rows. cursor is the
// content cursor of the current render, if any. The returned state has no
// pending action and satisfies 0 <= TrimTop <= max(0, contentRows-displayRows).
func Resolve(st State, contentRows, displayRows int, cursor *canvas.Cursor) State {
	maxTrim := max(0, contentRows-displayRows)
	clamp := func(n int) int {
		return max(0, min(n, maxTrim))
	}

	trim := normalizeTrim(st.TrimTop, contentRows, displayRows)
	action := st.Pending
	st.Pending = ActionNone

	if contentRows <= displayRows {
		st.TrimTop = 0
		return st
	}

	page := max(1, displayRows-1)

	switch action {
	case ActionLineUp:
		trim--
	case ActionLineDown:
		trim++
	case ActionPageUp:
		trim -= page
	case ActionPageDown:
		trim += page
	case ActionTop:
		trim = 0
	case ActionEnd:
		trim = maxTrim
	case ActionNone:
	}

	trim = clamp(trim)

	if cursor != nil && st.LastCursor != nil && *cursor != *st.LastCursor {
		switch {
		case cursor.Row < trim:
			trim = clamp(cursor.Row)
		case cursor.Row >= trim+displayRows:
			trim = clamp(cursor.Row - displayRows + 1)
		}
	}

	st.TrimTop = trim

	return st
}
