package scroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/scrollview/pkg/canvas"
	"github.com/macropower/scrollview/pkg/keys"
	"github.com/macropower/scrollview/pkg/scroll"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		cursor   *canvas.Cursor
		state    scroll.State
		content  int
		display  int
		expected int
	}{
		"to end": {
			state:    scroll.State{Pending: scroll.ActionEnd},
			content:  100,
			display:  20,
			expected: 80,
		},
		"to top": {
			state:    scroll.State{TrimTop: 30, Pending: scroll.ActionTop},
			content:  100,
			display:  20,
			expected: 0,
		},
		"line down": {
			state:    scroll.State{TrimTop: 3, Pending: scroll.ActionLineDown},
			content:  50,
			display:  10,
			expected: 4,
		},
		"line up at top": {
			state:    scroll.State{Pending: scroll.ActionLineUp},
			content:  50,
			display:  10,
			expected: 0,
		},
		"line down at end": {
			state:    scroll.State{TrimTop: 40, Pending: scroll.ActionLineDown},
			content:  50,
			display:  10,
			expected: 40,
		},
		"page down": {
			state:    scroll.State{TrimTop: 9, Pending: scroll.ActionPageDown},
			content:  50,
			display:  10,
			expected: 18,
		},
		"page up past top": {
			state:    scroll.State{TrimTop: 5, Pending: scroll.ActionPageUp},
			content:  50,
			display:  10,
			expected: 0,
		},
		"page of one row": {
			state:    scroll.State{Pending: scroll.ActionPageDown},
			content:  5,
			display:  1,
			expected: 1,
		},
		"no action reclamps": {
			state:    scroll.State{TrimTop: 90},
			content:  50,
			display:  10,
			expected: 40,
		},
		"from bottom": {
			state:    scroll.State{TrimTop: -1},
			content:  100,
			display:  20,
			expected: 80,
		},
		"from bottom with offset": {
			state:    scroll.State{TrimTop: -6},
			content:  100,
			display:  20,
			expected: 75,
		},
		"content fits": {
			state:    scroll.State{TrimTop: 7, Pending: scroll.ActionEnd},
			content:  10,
			display:  20,
			expected: 0,
		},
		"cursor moved above window": {
			state:    scroll.State{TrimTop: 20, LastCursor: &canvas.Cursor{Row: 20}},
			cursor:   &canvas.Cursor{Row: 12},
			content:  100,
			display:  10,
			expected: 12,
		},
		"cursor moved below window": {
			state:    scroll.State{TrimTop: 20, LastCursor: &canvas.Cursor{Row: 29}},
			cursor:   &canvas.Cursor{Row: 35},
			content:  100,
			display:  10,
			expected: 26,
		},
		"cursor wins over action": {
			state: scroll.State{
				TrimTop:    0,
				Pending:    scroll.ActionEnd,
				LastCursor: &canvas.Cursor{Row: 0},
			},
			cursor:   &canvas.Cursor{Row: 1},
			content:  100,
			display:  10,
			expected: 1,
		},
		"cursor unchanged": {
			state: scroll.State{
				TrimTop:    0,
				Pending:    scroll.ActionPageDown,
				LastCursor: &canvas.Cursor{Row: 2},
			},
			cursor:   &canvas.Cursor{Row: 2},
			content:  100,
			display:  10,
			expected: 9,
		},
		"no previous cursor": {
			state:    scroll.State{TrimTop: 50},
			cursor:   &canvas.Cursor{Row: 0},
			content:  100,
			display:  10,
			expected: 50,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := scroll.Resolve(tc.state, tc.content, tc.display, tc.cursor)
			assert.Equal(t, tc.expected, got.TrimTop)
			assert.Equal(t, scroll.ActionNone, got.Pending)
		})
	}
}

func TestResolve_Bounds(t *testing.T) {
	t.Parallel()

	for display := 1; display <= 12; display++ {
		for content := display + 1; content <= 40; content++ {
			st := scroll.State{}
			for range content + 2 {
				st.Pending = scroll.ActionLineDown
				st = scroll.Resolve(st, content, display, nil)
				assert.LessOrEqual(t, st.TrimTop, content-display)
			}

			assert.Equal(t, content-display, st.TrimTop)

			for range content + 2 {
				st.Pending = scroll.ActionLineUp
				st = scroll.Resolve(st, content, display, nil)
				assert.GreaterOrEqual(t, st.TrimTop, 0)
			}

			assert.Equal(t, 0, st.TrimTop)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	st := scroll.Resolve(scroll.State{TrimTop: 13}, 60, 15, nil)
	again := scroll.Resolve(st, 60, 15, nil)

	assert.Equal(t, st, again)
}

func TestActionFor(t *testing.T) {
	t.Parallel()

	for _, cmd := range keys.ScrollCommands {
		action, ok := scroll.ActionFor(cmd)
		assert.True(t, ok, cmd)
		assert.NotEqual(t, scroll.ActionNone, action, cmd)
	}

	_, ok := scroll.ActionFor(keys.Command("quit"))
	assert.False(t, ok)
	assert.Equal(t, "page down", scroll.ActionPageDown.String())
}
