package config

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/macropower/scrollview/pkg/ui/theme"
	"github.com/macropower/scrollview/pkg/yaml"
)

var (
	uiSectionRe = regexp.MustCompile(`(?m)^ui:\s*$((?:\n[ \t]+.*)*)`)
	uiThemeRe   = regexp.MustCompile(`\n[ \t]+theme:\s*(?:"([^"#\n]+)"|'([^'#\n]+)'|([^\s#\n]+))`)
)

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// Loader validates and decodes configuration data. Errors it returns point
// into the source document.
type Loader struct {
	validator Validator
	theme     *theme.Theme
	data      []byte
	color     bool
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator sets a custom validator.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithThemeFromData extracts the theme from the config data, so that errors
// in the config itself can be styled with it.
func WithThemeFromData() LoaderOpt {
	return func(l *Loader) {
		l.theme = getTheme(l.data)
	}
}

// WithColor enables colors in annotated error source.
func WithColor(color bool) LoaderOpt {
	return func(l *Loader) {
		l.color = color
	}
}

// NewLoaderFromBytes creates a [Loader] from byte data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		validator: DefaultValidator,
		theme:     theme.Default,
		data:      data,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate validates the configuration data against the schema without
// loading it into a [Config].
func (l *Loader) Validate() error {
	var anyConfig any

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(&anyConfig)
	if errors.Is(err, yaml.ErrEmptyDocument) {
		return nil
	}

	if err != nil {
		return l.annotate(err)
	}

	if l.validator != nil {
		err = l.validator.Validate(anyConfig)
		if err != nil {
			return l.annotate(err)
		}
	}

	return nil
}

// Load decodes the configuration, fills in defaults and runs the checks the
// schema cannot express.
func (l *Loader) Load() (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(cfg)
	if errors.Is(err, yaml.ErrEmptyDocument) {
		return NewConfig(), nil
	}

	if err != nil {
		return nil, l.annotate(err)
	}

	cfg.EnsureDefaults()

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Theme returns the theme for error formatting.
func (l *Loader) Theme() *theme.Theme {
	return l.theme
}

func (l *Loader) annotate(err error) error {
	return yaml.Annotate(err, yaml.WithSource(l.data), yaml.WithColor(l.color))
}

func getTheme(data []byte) *theme.Theme {
	var themeName string

	path := yaml.NewPathBuilder().Root().Child("ui").Child("theme").Build()

	err := path.Read(bytes.NewReader(data), &themeName)
	if err == nil && themeName != "" {
		return theme.New(themeName)
	}

	slog.Debug("could not read theme, config might be invalid")

	// Fall back to a regex for configs that are not valid YAML.
	themeName = extractThemeWithRegex(data)
	if themeName != "" {
		slog.Debug("extracted theme using regex fallback", slog.String("theme", themeName))
		return theme.New(themeName)
	}

	return theme.Default
}

// extractThemeWithRegex extracts the theme from YAML data that may not parse.
// It looks for the pattern:
//
//	ui:
//	  foo: bar
//	  # ...
//	  theme: <value>
func extractThemeWithRegex(data []byte) string {
	uiMatches := uiSectionRe.FindStringSubmatch(string(data))
	if len(uiMatches) < 2 {
		return ""
	}

	themeMatches := uiThemeRe.FindStringSubmatch(uiMatches[1])
	if len(themeMatches) < 4 {
		return ""
	}

	// Double quoted, single quoted, or unquoted.
	for i := 1; i < 4; i++ {
		if themeMatches[i] != "" {
			return strings.TrimSpace(themeMatches[i])
		}
	}

	return ""
}
