package ui_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/scrollview/pkg/ui"
	"github.com/macropower/scrollview/pkg/uitest"
	"github.com/macropower/scrollview/pkg/watch"
)

const (
	testWidth  = 100
	testHeight = 10
	// Rows left for the document once the status bar is drawn.
	testBodyRows = testHeight - 1
)

func numberedBody(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	return strings.Join(lines, "\n")
}

func newModel(t *testing.T, cfg *ui.Config, body string, opts ...ui.Opt) *ui.Model {
	t.Helper()

	m, err := ui.NewModel(cfg, ui.NewDocument("test.txt", "", body), opts...)
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m.View()

	return m
}

func update(t *testing.T, m *ui.Model, msgs ...tea.Msg) string {
	t.Helper()

	for _, msg := range msgs {
		m.Update(msg)
	}

	return m.View()
}

func TestModel_ScrollKeys(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		keys    []string
		want    int
		visible string
	}{
		"line down": {
			keys:    []string{"j"},
			want:    1,
			visible: "line 10",
		},
		"line up at top": {
			keys:    []string{"k"},
			want:    0,
			visible: "line 1",
		},
		"page down": {
			keys:    []string{"pgdown"},
			want:    testBodyRows - 1,
			visible: "line 9",
		},
		"space pages down": {
			keys:    []string{" "},
			want:    testBodyRows - 1,
			visible: "line 9",
		},
		"end": {
			keys:    []string{"G"},
			want:    100 - testBodyRows,
			visible: "line 100",
		},
		"end then home": {
			keys:    []string{"G", "g"},
			want:    0,
			visible: "line 1",
		},
		"end then page up": {
			keys:    []string{"end", "b"},
			want:    100 - testBodyRows - (testBodyRows - 1),
			visible: "line 84",
		},
		"unbound key": {
			keys:    []string{"x"},
			want:    0,
			visible: "line 1",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := newModel(t, nil, numberedBody(100))

			var view string
			for _, key := range tc.keys {
				view = update(t, m, uitest.Key(key))
			}

			assert.Equal(t, tc.want, m.ScrollPosition())
			uitest.NewANSIVerifier(view).ContainsPlainText(t, tc.visible)
		})
	}
}

func TestModel_StatusPercent(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(100))
	assert.InDelta(t, 0.0, m.ScrollPercent(), 0.001)

	view := update(t, m, uitest.Key("G"))
	assert.InDelta(t, 1.0, m.ScrollPercent(), 0.001)

	v := uitest.NewANSIVerifier(view)
	v.ContainsPlainText(t, "100%")
	v.ContainsPlainText(t, "test.txt")
}

func TestModel_ShortDocument(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, "only line")
	view := update(t, m, uitest.Key("G"))

	assert.Equal(t, 0, m.ScrollPosition())
	assert.InDelta(t, 1.0, m.ScrollPercent(), 0.001)

	v := uitest.NewANSIVerifier(view)
	v.ContainsPlainText(t, "only line")
	assert.Len(t, v.Lines(), testHeight)
}

func TestModel_HelpToggle(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(100))

	view := update(t, m, uitest.Key("?"))
	uitest.NewANSIVerifier(view).ContainsPlainText(t, "toggle help")
	assert.Len(t, uitest.NewANSIVerifier(view).Lines(), testHeight)

	view = update(t, m, uitest.Key("?"))
	assert.NotContains(t, uitest.NewANSIVerifier(view).PlainText(), "toggle help")
}

func TestModel_Reload(t *testing.T) {
	t.Parallel()

	var reloaded *ui.Document

	m := newModel(t, nil, numberedBody(100), ui.WithReloadFunc(func(doc *ui.Document) (*ui.Document, error) {
		reloaded = doc
		return ui.NewDocument("next.txt", "", numberedBody(200)), nil
	}))

	update(t, m, uitest.Key("j"), uitest.Key("j"), uitest.Key("j"))
	require.Equal(t, 3, m.ScrollPosition())

	_, cmd := m.Update(uitest.Key("r"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, ui.DocumentMsg{}, msg)
	require.NotNil(t, reloaded)
	assert.Equal(t, "test.txt", reloaded.Title)

	view := update(t, m, msg)

	assert.Equal(t, "next.txt", m.Document().Title)
	assert.Equal(t, 3, m.ScrollPosition())

	v := uitest.NewANSIVerifier(view)
	v.ContainsPlainText(t, "reloaded next.txt")
	v.ContainsPlainText(t, "line 4")
}

func TestModel_ReloadStdin(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(5))

	_, cmd := m.Update(uitest.Key("r"))
	require.NotNil(t, cmd)

	msg := cmd()
	errMsg, ok := msg.(ui.ErrMsg)
	require.True(t, ok, "got %T", msg)
	require.ErrorIs(t, errMsg.Err, ui.ErrNotReloadable)

	view := update(t, m, errMsg)
	uitest.NewANSIVerifier(view).ContainsPlainText(t, "cannot be reloaded")
}

func TestModel_DocumentMsgClampsPosition(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(100))
	update(t, m, uitest.Key("G"))
	require.Equal(t, 100-testBodyRows, m.ScrollPosition())

	update(t, m, ui.DocumentMsg{Document: ui.NewDocument("short", "", numberedBody(20))})

	assert.Equal(t, 20-testBodyRows, m.ScrollPosition())
}

func TestModel_ErrMsg(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(10))
	view := update(t, m, ui.ErrMsg{Err: errors.New("boom")})

	uitest.NewANSIVerifier(view).ContainsPlainText(t, "boom")
}

func TestModel_Mouse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		mouse bool
		msgs  []tea.Msg
		want  int
	}{
		"wheel down": {
			mouse: true,
			msgs: []tea.Msg{
				uitest.Mouse(2, 2, tea.MouseButtonWheelDown, tea.MouseActionPress),
				uitest.Mouse(2, 2, tea.MouseButtonWheelDown, tea.MouseActionPress),
			},
			want: 2,
		},
		"wheel up at top": {
			mouse: true,
			msgs: []tea.Msg{
				uitest.Mouse(2, 2, tea.MouseButtonWheelUp, tea.MouseActionPress),
			},
			want: 0,
		},
		"press on bar": {
			mouse: true,
			msgs: []tea.Msg{
				uitest.Mouse(testWidth-1, 4, tea.MouseButtonLeft, tea.MouseActionPress),
			},
			// round(4 * 100/9)
			want: 44,
		},
		"drag on bar": {
			mouse: true,
			msgs: []tea.Msg{
				uitest.Mouse(testWidth-1, 0, tea.MouseButtonLeft, tea.MouseActionPress),
				uitest.Mouse(10, 1, tea.MouseButtonLeft, tea.MouseActionMotion),
				uitest.Mouse(10, 1, tea.MouseButtonLeft, tea.MouseActionRelease),
			},
			// round(1 * 100/9)
			want: 11,
		},
		"status bar row ignored": {
			mouse: true,
			msgs: []tea.Msg{
				uitest.Mouse(2, testHeight-1, tea.MouseButtonWheelDown, tea.MouseActionPress),
			},
			want: 0,
		},
		"mouse disabled": {
			mouse: false,
			msgs: []tea.Msg{
				uitest.Mouse(2, 2, tea.MouseButtonWheelDown, tea.MouseActionPress),
			},
			want: 0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := ui.NewConfig()
			cfg.Mouse = &tc.mouse

			m := newModel(t, cfg, numberedBody(100))
			update(t, m, tc.msgs...)

			assert.Equal(t, tc.want, m.ScrollPosition())
		})
	}
}

func TestModel_Cursor(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, numberedBody(100), ui.WithCursor(true))

	update(t, m, uitest.Key("j"))
	assert.Equal(t, 0, m.ScrollPosition(), "cursor moves inside the window first")

	var view string
	for range 15 {
		view = update(t, m, uitest.Key("j"))
	}

	assert.Positive(t, m.ScrollPosition())
	uitest.NewANSIVerifier(view).ContainsPlainText(t, "line 17")
}

func TestModel_LineNumbers(t *testing.T) {
	t.Parallel()

	cfg := ui.NewConfig()
	lineNumbers := true
	cfg.LineNumbers = &lineNumbers

	m := newModel(t, cfg, numberedBody(12))

	v := uitest.NewANSIVerifier(m.View())
	v.ContainsPlainText(t, " 1 line 1")
	v.ContainsPlainText(t, " 9 line 9")
}

func TestModel_Watch(t *testing.T) {
	t.Parallel()

	events := make(chan watch.Event, 1)
	events <- watch.Event{Path: "watched.txt", Op: fsnotify.Write}
	close(events)

	m := newModel(t, nil, numberedBody(5),
		ui.WithEvents(events),
		ui.WithReloadFunc(func(*ui.Document) (*ui.Document, error) {
			return ui.NewDocument("watched.txt", "", "changed"), nil
		}),
	)

	initCmd := m.Init()
	require.NotNil(t, initCmd)

	_, cmd := m.Update(initCmd())
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	for _, c := range batch {
		if c == nil {
			continue
		}

		if doc, ok := c().(ui.DocumentMsg); ok {
			update(t, m, doc)
		}
	}

	assert.Equal(t, "watched.txt", m.Document().Title)
	uitest.NewANSIVerifier(m.View()).ContainsPlainText(t, "changed")
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	copied := make(chan string, 1)

	m, err := ui.NewModel(nil, ui.NewDocument("test.txt", "", "hello\nworld"),
		ui.WithCopyFunc(func(s string) error {
			copied <- s
			return nil
		}),
	)
	require.NoError(t, err)

	tm := uitest.NewTestModel(t, m, uitest.Compact)

	tm.Send(uitest.Key("c"))
	uitest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "copied contents")
	}, teatest.WithDuration(3*time.Second))

	tm.Send(uitest.Key("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	select {
	case s := <-copied:
		assert.Equal(t, "hello\nworld", s)
	default:
		t.Fatal("document was not copied")
	}

	fm, ok := tm.FinalModel(t).(*ui.Model)
	require.True(t, ok)
	assert.Equal(t, "test.txt", fm.Document().Title)
}
