package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/macropower/scrollview/pkg/keys"
	"github.com/macropower/scrollview/pkg/scroll"
)

var ErrInvalidScrollbar = errors.New("invalid scrollbar configuration")

// Config contains TUI-specific configuration.
type Config struct {
	// MinimumDelay is how long status messages stay visible.
	MinimumDelay *time.Duration `json:"minimumDelay,omitempty" jsonschema:"type=string,title=Minimum Delay" yaml:"minimumDelay,omitempty"`
	// Mouse enables pointer input.
	Mouse *bool `json:"mouse,omitempty" jsonschema:"title=Enable Mouse" yaml:"mouse,omitempty"`
	// LineNumbers prefixes every line with its number.
	LineNumbers *bool `json:"lineNumbers,omitempty" jsonschema:"title=Show Line Numbers" yaml:"lineNumbers,omitempty"`
	// Scrollbar configures the scroll bar.
	Scrollbar *ScrollbarConfig `json:"scrollbar,omitempty" jsonschema:"title=Scrollbar" yaml:"scrollbar,omitempty"`
	// KeyBinds contains key binding configuration.
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Bindings" yaml:"keybinds,omitempty"`
	// Theme is the name of a chroma style, or one of "auto", "dark", "light".
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme" yaml:"theme,omitempty"`
}

// NewConfig returns a [Config] with every field set to its default.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.MinimumDelay == nil {
		defaultDelay := 2 * time.Second
		c.MinimumDelay = &defaultDelay
	}

	if c.Mouse == nil {
		c.Mouse = boolPtr(true)
	}

	if c.LineNumbers == nil {
		c.LineNumbers = boolPtr(false)
	}

	if c.Theme == "" {
		c.Theme = "auto"
	}

	if c.Scrollbar == nil {
		c.Scrollbar = &ScrollbarConfig{}
	}

	c.Scrollbar.EnsureDefaults()

	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()
}

// Validate checks the configuration for problems the schema cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Scrollbar != nil {
		errs = append(errs, c.Scrollbar.Validate())
	}

	if c.KeyBinds != nil {
		errs = append(errs, c.KeyBinds.Validate())
	}

	return errors.Join(errs...)
}

// ScrollbarConfig configures the scroll bar.
type ScrollbarConfig struct {
	// Width is the number of columns the bar takes. Values below 1 are
	// treated as 1.
	Width *int `json:"width,omitempty" jsonschema:"title=Width,minimum=1" yaml:"width,omitempty"`
	// Side is the side of the content the bar is drawn on.
	Side string `json:"side,omitempty" jsonschema:"title=Side,enum=left,enum=right" yaml:"side,omitempty"`
	// Thumb is the glyph the thumb is drawn with.
	Thumb string `json:"thumb,omitempty" jsonschema:"title=Thumb Glyph" yaml:"thumb,omitempty"`
	// Trough is the glyph the rest of the bar is drawn with.
	Trough string `json:"trough,omitempty" jsonschema:"title=Trough Glyph" yaml:"trough,omitempty"`
}

func (sc *ScrollbarConfig) EnsureDefaults() {
	glyphs := scroll.DefaultGlyphs()

	if sc.Width == nil {
		sc.Width = intPtr(1)
	}

	if sc.Side == "" {
		sc.Side = string(scroll.SideRight)
	}

	if sc.Thumb == "" {
		sc.Thumb = glyphs.Thumb
	}

	if sc.Trough == "" {
		sc.Trough = glyphs.Trough
	}
}

func (sc *ScrollbarConfig) Validate() error {
	_, err := scroll.ParseSide(sc.Side)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScrollbar, err)
	}

	err = sc.Glyphs().Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScrollbar, err)
	}

	return nil
}

// Glyphs returns the configured [scroll.Glyphs].
func (sc *ScrollbarConfig) Glyphs() scroll.Glyphs {
	return scroll.Glyphs{Thumb: sc.Thumb, Trough: sc.Trough}
}

// Options returns the [scroll.BarOpt]s for the configuration. It assumes
// [ScrollbarConfig.Validate] passed.
func (sc *ScrollbarConfig) Options() []scroll.BarOpt {
	side, _ := scroll.ParseSide(sc.Side) //nolint:errcheck // Validated.

	opts := []scroll.BarOpt{
		scroll.WithSide(side),
		scroll.WithGlyphs(sc.Glyphs()),
	}
	if sc.Width != nil {
		opts = append(opts, scroll.WithWidth(*sc.Width))
	}

	return opts
}

// KeyBinds contains the key bindings of the pager.
type KeyBinds struct {
	Common *CommonKeyBinds   `json:"common,omitempty" jsonschema:"title=Common Key Bindings" yaml:"common,omitempty"`
	Scroll *keys.ScrollBinds  `json:"scroll,omitempty" jsonschema:"title=Scroll Key Bindings" yaml:"scroll,omitempty"`
}

func (kb *KeyBinds) EnsureDefaults() {
	if kb.Common == nil {
		kb.Common = &CommonKeyBinds{}
	}

	if kb.Scroll == nil {
		kb.Scroll = &keys.ScrollBinds{}
	}

	kb.Common.EnsureDefaults()
	kb.Scroll.EnsureDefaults()
}

// Validate returns an error for every key bound to more than one action.
func (kb *KeyBinds) Validate() error {
	err := keys.ValidateBinds(kb.Common.GetKeyBinds(), kb.Scroll.GetKeyBinds())
	if err != nil {
		return fmt.Errorf("keybinds: %w", err)
	}

	return nil
}

// CommandMap returns a [keys.CommandMap] for the scroll bindings.
func (kb *KeyBinds) CommandMap() *keys.CommandMap {
	return keys.NewCommandMap(kb.Scroll.Map())
}

// CommonKeyBinds are the bindings handled by the program itself.
type CommonKeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"    yaml:"quit,omitempty"`
	Suspend *keys.KeyBind `json:"suspend,omitempty" yaml:"suspend,omitempty"`
	Reload  *keys.KeyBind `json:"reload,omitempty"  yaml:"reload,omitempty"`
	Help    *keys.KeyBind `json:"help,omitempty"    yaml:"help,omitempty"`
	Copy    *keys.KeyBind `json:"copy,omitempty"    yaml:"copy,omitempty"`
}

func (kb *CommonKeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// Always ensure that ctrl+c is bound to quit.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Suspend,
		keys.NewBind("suspend",
			keys.New("ctrl+z", keys.WithAlias("⌃z"), keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Reload,
		keys.NewBind("reload",
			keys.New("r"),
		))
	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy contents",
			keys.New("c"),
		))
}

func (kb *CommonKeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Quit,
		*kb.Suspend,
		*kb.Reload,
		*kb.Help,
		*kb.Copy,
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
