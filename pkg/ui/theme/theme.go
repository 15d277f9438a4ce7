// Package theme derives the program's lipgloss styles from a chroma style.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

var (
	ErrInvalidName    = errors.New("invalid theme name")
	ErrRegisterStyles = errors.New("register styles")
)

// Default is the theme used when no configuration selects one.
var Default = New("github")

type Theme struct {
	CursorStyle               lipgloss.Style
	ErrorTitleStyle           lipgloss.Style
	GenericTextStyle          lipgloss.Style
	HelpStyle                 lipgloss.Style
	LineNumberStyle           lipgloss.Style
	LogoStyle                 lipgloss.Style
	ScrollbarThumbStyle       lipgloss.Style
	ScrollbarTroughStyle      lipgloss.Style
	StatusBarErrorStyle       lipgloss.Style
	StatusBarHelpStyle        lipgloss.Style
	StatusBarMessageHelpStyle lipgloss.Style
	StatusBarMessagePosStyle  lipgloss.Style
	StatusBarMessageStyle     lipgloss.Style
	StatusBarPosStyle         lipgloss.Style
	StatusBarStyle            lipgloss.Style
	SubtleStyle               lipgloss.Style

	ChromaStyle *chroma.Style
	Palette     Palette
	Ellipsis    string
}

// Palette holds the theme's base colors as hex strings, for consumers that
// do not use lipgloss v1 styles.
type Palette struct {
	Text         string
	Background   string
	Accent       string
	AccentSubtle string
	Subtle       string
	Error        string
}

// New builds a [Theme] from the named chroma style. "dark", "light" and
// "auto" are accepted as shorthands; unknown names use chroma's fallback.
func New(name string) *Theme {
	cs := lookupStyle(name)

	var (
		text   = cs.fg(chroma.Background, 0)
		bg     = cs.bg(chroma.Background, 0)
		accent = cs.fg(chroma.NameTag, 0)
		subtle = cs.fg(chroma.Comment, 0)
		danger = cs.fg(chroma.GenericDeleted, 0)
	)

	onAccent := func(factor float64) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(bg).Background(cs.fg(chroma.NameTag, factor))
	}

	onBar := func(factor float64) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(text).Background(cs.bg(chroma.Background, factor))
	}

	generic := lipgloss.NewStyle().Foreground(text)
	help := lipgloss.NewStyle().
		Foreground(cs.fg(chroma.Background, 0.2)).
		Background(cs.bg(chroma.Background, 0.2))
	subtleStyle := lipgloss.NewStyle().Foreground(subtle)

	return &Theme{
		CursorStyle:               onAccent(0.3),
		ErrorTitleStyle:           generic.Background(danger),
		GenericTextStyle:          generic,
		HelpStyle:                 help,
		LineNumberStyle:           subtleStyle,
		LogoStyle:                 onAccent(0).Bold(true),
		ScrollbarThumbStyle:       lipgloss.NewStyle().Foreground(cs.fg(chroma.NameTag, 0.1)),
		ScrollbarTroughStyle:      lipgloss.NewStyle().Background(cs.bg(chroma.Background, 0.05)),
		StatusBarErrorStyle:       lipgloss.NewStyle().Foreground(bg).Background(danger),
		StatusBarHelpStyle:        help,
		StatusBarMessageHelpStyle: onAccent(0),
		StatusBarMessagePosStyle:  onAccent(0.1),
		StatusBarMessageStyle:     onAccent(0.15),
		StatusBarPosStyle:         onBar(0.15),
		StatusBarStyle:            onBar(0.1),
		SubtleStyle:               subtleStyle,

		ChromaStyle: cs.style,
		Palette: Palette{
			Text:         string(text),
			Background:   string(bg),
			Accent:       string(accent),
			AccentSubtle: string(cs.fg(chroma.NameTag, 0.3)),
			Subtle:       string(subtle),
			Error:        string(danger),
		},
		Ellipsis: Ellipsis,
	}
}

// Register registers a chroma style that [New] can then select by name.
func Register(name string, entries chroma.StyleEntries) error {
	if name == "" {
		return ErrInvalidName
	}

	s, err := chroma.NewStyle(name, entries)
	if err != nil {
		return fmt.Errorf("%w: create chroma style: %w", ErrRegisterStyles, err)
	}

	styles.Register(s)

	return nil
}

type chromaStyle struct {
	style *chroma.Style
}

func lookupStyle(name string) chromaStyle {
	s := styles.Get(resolveName(name))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

// fg returns the token's foreground, brightened or darkened by factor.
func (cs chromaStyle) fg(tt chroma.TokenType, factor float64) lipgloss.Color {
	c := cs.style.Get(tt).Colour //nolint:misspell // Chroma naming.
	if factor != 0 {
		c = c.BrightenOrDarken(factor)
	}

	return lipgloss.Color(c.String())
}

// bg returns the token's background, brightened or darkened by factor.
func (cs chromaStyle) bg(tt chroma.TokenType, factor float64) lipgloss.Color {
	c := cs.style.Get(tt).Background
	if factor != 0 {
		c = c.BrightenOrDarken(factor)
	}

	return lipgloss.Color(c.String())
}

func resolveName(name string) string {
	switch name {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return detectStyle()
	default:
		return name
	}
}

func detectStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}

	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
