// Package ui provides the terminal pager for scrollview.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/scrollview/pkg/keys"
	"github.com/macropower/scrollview/pkg/scroll"
	"github.com/macropower/scrollview/pkg/ui/statusbar"
	"github.com/macropower/scrollview/pkg/ui/theme"
	"github.com/macropower/scrollview/pkg/watch"
	"github.com/macropower/scrollview/pkg/widget"
)

// ErrNotReloadable indicates that a document has no file to reload from.
var ErrNotReloadable = errors.New("document cannot be reloaded")

type (
	// DocumentMsg replaces the shown document, keeping the scroll position.
	DocumentMsg struct{ Document *Document }

	// ErrMsg shows an error in the status bar.
	ErrMsg struct{ Err error }

	statusMessageTimeoutMsg struct{ id int }

	fileEventMsg watch.Event
)

// ReloadFunc loads the current version of a document.
type ReloadFunc func(doc *Document) (*Document, error)

// CopyFunc copies text to the clipboard.
type CopyFunc func(s string) error

// Model is the pager. It shows a [Document] inside a scroll bar and viewport
// and routes terminal input to them.
type Model struct {
	renderErr     error
	cfg           *Config
	theme         *theme.Theme
	doc           *Document
	root          *scroll.ScrollBar
	viewport      *scroll.Viewport
	text          *widget.Text
	list          *widget.List
	keyHelp       *keys.KeyBindRenderer
	events        <-chan watch.Event
	reload        ReloadFunc
	copyText      CopyFunc
	statusMessage string
	width         int
	height        int
	statusID      int
	statusStyle   statusbar.Style
	showHelp      bool
	cursor        bool
}

// Opt configures a [Model].
type Opt func(m *Model)

// WithCursor shows a line cursor that the viewport follows.
func WithCursor(enabled bool) Opt {
	return func(m *Model) {
		m.cursor = enabled
	}
}

// WithEvents reloads the document whenever an event is received on ch.
func WithEvents(ch <-chan watch.Event) Opt {
	return func(m *Model) {
		m.events = ch
	}
}

// WithReloadFunc sets how documents are reloaded.
func WithReloadFunc(fn ReloadFunc) Opt {
	return func(m *Model) {
		m.reload = fn
	}
}

// WithCopyFunc sets how text is copied to the clipboard.
func WithCopyFunc(fn CopyFunc) Opt {
	return func(m *Model) {
		m.copyText = fn
	}
}

// WithTheme overrides the theme named in the configuration.
func WithTheme(t *theme.Theme) Opt {
	return func(m *Model) {
		m.theme = t
	}
}

// NewModel creates a [Model] showing doc.
func NewModel(cfg *Config, doc *Document, opts ...Opt) (*Model, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	cfg.EnsureDefaults()

	m := &Model{
		cfg:      cfg,
		doc:      doc,
		reload:   (*Document).Reload,
		copyText: copyToClipboard,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.theme == nil {
		m.theme = theme.New(cfg.Theme)
	}

	commands := cfg.KeyBinds.CommandMap()

	var content widget.Widget
	if m.cursor {
		m.list = widget.NewList("",
			widget.WithListCommands(commands),
			widget.WithFocusStyle(func(s string) string { return m.theme.CursorStyle.Render(s) }),
		)
		content = m.list
	} else {
		m.text = widget.NewText("")
		content = m.text
	}

	m.viewport = scroll.NewViewport(content, scroll.WithCommandMap(commands))

	glyphs := cfg.Scrollbar.Glyphs()
	barOpts := append(cfg.Scrollbar.Options(), scroll.WithGlyphs(scroll.Glyphs{
		Thumb:  m.theme.ScrollbarThumbStyle.Render(glyphs.Thumb),
		Trough: m.theme.ScrollbarTroughStyle.Render(glyphs.Trough),
	}))

	var err error

	m.root, err = scroll.NewScrollBar(widget.NewPadding(m.viewport, 1, 0), barOpts...)
	if err != nil {
		return nil, fmt.Errorf("create scroll bar: %w", err)
	}

	m.keyHelp = &keys.KeyBindRenderer{}
	m.keyHelp.AddColumn(cfg.KeyBinds.Scroll.GetKeyBinds()...)
	m.keyHelp.AddColumn(cfg.KeyBinds.Common.GetKeyBinds()...)

	m.setDocument(doc)

	return m, nil
}

// NewProgram returns a new Tea program showing doc.
func NewProgram(cfg *Config, doc *Document, opts ...Opt) (*tea.Program, error) {
	slog.Debug("starting scrollview ui")

	m, err := NewModel(cfg, doc, opts...)
	if err != nil {
		return nil, err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if *m.cfg.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	return tea.NewProgram(m, progOpts...), nil
}

func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd, handled := m.handleGlobalKeys(msg)
		if handled {
			return m, cmd
		}

		key := msg.String()
		if m.root.Keypress(m.bodySize(), key) {
			slog.Debug("key handled", slog.String("key", key))
		}

	case tea.MouseMsg:
		if !*m.cfg.Mouse {
			break
		}

		ev, ok := mouseEvent(msg)
		if !ok || ev.Row >= m.bodySize().Rows {
			break
		}

		m.root.MouseEvent(m.bodySize(), ev, true)

	case DocumentMsg:
		pos := m.viewport.ScrollPosition()
		m.setDocument(msg.Document)
		m.viewport.SetScrollPosition(pos)

		cmds = append(cmds, m.sendStatusMessage("reloaded "+msg.Document.Title, statusbar.StyleSuccess))

	case fileEventMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.sendStatusMessage("watch: "+msg.Err.Error(), statusbar.StyleError))
		} else {
			cmds = append(cmds, m.reloadDocument())
		}

		cmds = append(cmds, m.waitForEvent())

	case ErrMsg:
		slog.Error("ui error", slog.Any("err", msg.Err))
		cmds = append(cmds, m.sendStatusMessage(msg.Err.Error(), statusbar.StyleError))

	case statusMessageTimeoutMsg:
		if msg.id == m.statusID {
			m.statusMessage = ""
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	parts := []string{}
	if body := m.bodyView(); body != "" {
		parts = append(parts, body)
	}

	parts = append(parts, m.statusBarView())
	if m.showHelp {
		parts = append(parts, m.helpView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Document returns the shown document.
func (m *Model) Document() *Document {
	return m.doc
}

// ScrollPosition returns the number of document rows above the window.
func (m *Model) ScrollPosition() int {
	return m.viewport.ScrollPosition()
}

// ScrollPercent returns how far the window is through the document, in
// [0, 1]. It is 1 when the document fits.
func (m *Model) ScrollPercent() float64 {
	st := m.viewport.State()

	hidden := st.RowsMax - st.RowsDisplayable
	if hidden <= 0 {
		return 1
	}

	return float64(m.viewport.ScrollPosition()) / float64(hidden)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	kb := m.cfg.KeyBinds.Common
	key := msg.String()

	switch {
	case kb.Suspend.Match(key):
		return tea.Suspend, true

	case kb.Quit.Match(key):
		return tea.Quit, true

	case kb.Help.Match(key):
		m.showHelp = !m.showHelp
		return nil, true

	case kb.Copy.Match(key):
		return m.copyDocument(), true

	case kb.Reload.Match(key):
		return m.reloadDocument(), true
	}

	return nil, false
}

func (m *Model) setDocument(doc *Document) {
	if doc == nil {
		doc = NewDocument("", "", "")
	}

	m.doc = doc
	m.renderErr = nil

	body := doc.Body
	if *m.cfg.LineNumbers {
		body = numberLines(body, m.theme.LineNumberStyle)
	}

	if m.list != nil {
		m.list.SetText(body)
	} else {
		m.text.SetText(body)
	}
}

func (m *Model) reloadDocument() tea.Cmd {
	doc := m.doc
	reload := m.reload

	return func() tea.Msg {
		next, err := reload(doc)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reload: %w", err)}
		}

		return DocumentMsg{Document: next}
	}
}

func (m *Model) copyDocument() tea.Cmd {
	body := m.doc.Body
	copyText := m.copyText

	return tea.Sequence(
		func() tea.Msg {
			err := copyText(body)
			if err != nil {
				return ErrMsg{Err: fmt.Errorf("copy: %w", err)}
			}

			return nil
		},
		m.sendStatusMessage("copied contents", statusbar.StyleSuccess),
	)
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}

	events := m.events

	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return nil
		}

		return fileEventMsg(evt)
	}
}

func (m *Model) sendStatusMessage(msg string, style statusbar.Style) tea.Cmd {
	m.statusID++
	m.statusMessage = msg
	m.statusStyle = style

	id := m.statusID

	return tea.Tick(*m.cfg.MinimumDelay, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg{id: id}
	})
}

func (m *Model) bodySize() widget.Size {
	rows := m.height - 1
	if m.showHelp {
		rows -= m.helpHeight()
	}

	return widget.Box(m.width, rows)
}

func (m *Model) bodyView() string {
	size := m.bodySize()
	if size.Rows <= 0 {
		return ""
	}

	c, err := m.root.Render(size, true)
	if err != nil {
		if m.renderErr == nil || m.renderErr.Error() != err.Error() {
			slog.Error("render document", slog.Any("err", err))
		}

		m.renderErr = err

		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", size.Cols)+"\n", size.Rows), "\n")
	}

	m.renderErr = nil

	return c.String()
}

func (m *Model) statusBarView() string {
	var opts []statusbar.Opt

	switch {
	case m.statusMessage != "":
		opts = append(opts, statusbar.WithMessage(m.statusMessage, m.statusStyle))
	case m.renderErr != nil:
		opts = append(opts, statusbar.WithMessage(m.renderErr.Error(), statusbar.StyleError))
	}

	return statusbar.NewRenderer(m.theme, m.width, opts...).
		Render(m.doc.Title, m.doc.Size(), m.ScrollPercent())
}

func (m *Model) helpView() string {
	return statusbar.NewHelpRenderer(m.theme, m.keyHelp).Render(m.width)
}

func (m *Model) helpHeight() int {
	return statusbar.NewHelpRenderer(m.theme, m.keyHelp).Height(m.width)
}

// numberLines prefixes each line of body with its line number.
func numberLines(body string, style lipgloss.Style) string {
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(style.Render(fmt.Sprintf("%*d ", width, i+1)))
		sb.WriteString(line)
	}

	return sb.String()
}

func copyToClipboard(s string) error {
	// OSC52 works over SSH; the native clipboard is best effort.
	termenv.Copy(s)

	err := clipboard.WriteAll(s)
	if err != nil {
		slog.Debug("write native clipboard", slog.Any("err", err))
	}

	return nil
}
