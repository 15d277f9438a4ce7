// Package statusbar renders the status line and key help of the pager.
package statusbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/scrollview/pkg/ui/theme"
	"github.com/macropower/scrollview/pkg/version"
)

const helpText = " ? Help "

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// Renderer renders the status bar.
type Renderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

type Opt func(*Renderer)

// WithMessage replaces the document title with message.
func WithMessage(message string, style Style) Opt {
	return func(r *Renderer) {
		if message == "" {
			return
		}

		r.style = style
		r.message = message
	}
}

// NewRenderer creates a new [Renderer].
func NewRenderer(t *theme.Theme, width int, opts ...Opt) *Renderer {
	r := &Renderer{theme: t, width: max(0, width), style: StyleNormal}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render renders the complete status bar. size is the document size in bytes
// and is omitted when negative.
func (r *Renderer) Render(title string, size int64, scrollPercent float64) string {
	logo := r.logoView()
	sizeNote := ""
	if size >= 0 {
		//nolint:gosec // G115: size is not negative.
		sizeNote = r.renderPosNote(humanize.Bytes(uint64(size)))
	}

	scrollPercentText := r.renderScrollPercent(scrollPercent)
	helpNote := r.renderHelpNote()
	note := r.renderNote(title, logo, sizeNote, scrollPercentText, helpNote)
	emptySpace := r.renderEmptySpace(logo, note, sizeNote, scrollPercentText, helpNote)

	return fmt.Sprintf("%s%s%s%s%s%s", logo, note, emptySpace, sizeNote, scrollPercentText, helpNote)
}

func (r *Renderer) renderScrollPercent(scrollPercent float64) string {
	percent := math.Max(0.0, math.Min(1.0, scrollPercent))

	return r.renderPosNote(fmt.Sprintf("%3.f%%", percent*100.0))
}

func (r *Renderer) renderPosNote(note string) string {
	note = " " + note + " "

	switch r.style {
	case StyleError, StyleSuccess:
		return r.theme.StatusBarMessagePosStyle.Render(note)
	default:
		return r.theme.StatusBarPosStyle.Render(note)
	}
}

func (r *Renderer) renderHelpNote() string {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(helpText)
	case StyleSuccess:
		return r.theme.StatusBarMessageHelpStyle.Render(helpText)
	default:
		return r.theme.StatusBarHelpStyle.Render(helpText)
	}
}

func (r *Renderer) renderNote(title string, others ...string) string {
	note := title
	if r.message != "" {
		note = r.message
	}

	note = strings.ReplaceAll(note, "\n", " ")
	note = strings.TrimSpace(note)

	availableWidth := r.width
	for _, o := range others {
		availableWidth -= ansi.PrintableRuneWidth(o)
	}

	availableWidth = max(0, availableWidth)

	//nolint:gosec // G115: availableWidth is not negative.
	note = truncate.StringWithTail(" "+note+" ", uint(availableWidth), r.theme.Ellipsis)

	return r.style.render(r.theme, note)
}

func (r *Renderer) renderEmptySpace(components ...string) string {
	padding := r.width
	for _, comp := range components {
		padding -= ansi.PrintableRuneWidth(comp)
	}

	return r.style.render(r.theme, strings.Repeat(" ", max(0, padding)))
}

func (r *Renderer) logoView() string {
	return r.theme.LogoStyle.Render(fmt.Sprintf(" scrollview %s ", version.GetVersion()))
}

func (s Style) render(t *theme.Theme, str string) string {
	var style lipgloss.Style

	switch s {
	case StyleError:
		style = t.StatusBarErrorStyle
	case StyleSuccess:
		style = t.StatusBarMessageStyle
	default:
		style = t.StatusBarStyle
	}

	return style.Render(str)
}
