package cli

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/scrollview/pkg/config"
	"github.com/macropower/scrollview/pkg/ui/theme"
)

// ColorSchemeFunc tries to get the theme from the config, otherwise it uses
// the default theme.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	cl, err := config.NewLoaderFromFile(config.GetPath(), config.WithThemeFromData())
	if err != nil {
		return ThemeColorScheme(theme.Default, c)
	}

	return ThemeColorScheme(cl.Theme(), c)
}

func ThemeColorScheme(t *theme.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	var (
		text         = hexColor(t.Palette.Text)
		accent       = hexColor(t.Palette.Accent)
		accentSubtle = hexColor(t.Palette.AccentSubtle)
		subtle       = hexColor(t.Palette.Subtle)
	)

	return fang.ColorScheme{
		Base:           text,
		Title:          accent,
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        accent,
		Command:        accent,
		DimmedArgument: subtle,
		Comment:        subtle,
		Flag:           accent,
		Argument:       text,
		Description:    text,
		FlagDefault:    accentSubtle,
		QuotedString:   text,
		ErrorHeader: [2]color.Color{
			hexColor(t.Palette.Background),
			hexColor(t.Palette.Error),
		},
	}
}

func hexColor(hex string) color.Color {
	if hex == "" {
		return charmtone.Charcoal
	}

	return lipgloss.Color(hex)
}
