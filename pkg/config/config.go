package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/scrollview/pkg/ui"
	"github.com/macropower/scrollview/pkg/yaml"
)

//go:generate go run ../../internal/schemagen -o config.v1beta1.json

const (
	APIVersion = "scrollview.jacobcolvin.com/v1beta1"
	Kind       = "Configuration"

	schemaFile = "config.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed config.v1beta1.json
	schemaJSON []byte

	ValidAPIVersions = []string{
		APIVersion,
	}
	ValidKinds = []string{
		Kind,
	}

	DefaultValidator = yaml.MustNewValidator("/"+schemaFile, schemaJSON)
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// UI contains the pager configuration.
	UI *ui.Config `json:"ui,omitempty" jsonschema:"title=UI" yaml:"ui,omitempty"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version" yaml:"apiVersion"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind" yaml:"kind"`
}

func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.UI == nil {
		c.UI = ui.NewConfig()
		return
	}

	c.UI.EnsureDefaults()
}

// Validate runs the checks that cannot be represented in the schema.
func (c *Config) Validate() error {
	if c.UI == nil {
		return nil
	}

	err := c.UI.Validate()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	apiVersion, ok := jss.Properties.Get("apiVersion")
	if !ok {
		panic("apiVersion property not found in schema")
	}

	for _, version := range ValidAPIVersions {
		apiVersion.OneOf = append(apiVersion.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: version,
			Title: "API Version",
		})
	}

	_, _ = jss.Properties.Set("apiVersion", apiVersion)

	kind, ok := jss.Properties.Get("kind")
	if !ok {
		panic("kind property not found in schema")
	}

	for _, kindValue := range ValidKinds {
		kind.OneOf = append(kind.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: kindValue,
			Title: "Kind",
		})
	}

	_, _ = jss.Properties.Set("kind", kind)
}

func (c *Config) MarshalYAML() ([]byte, error) {
	b, err := yaml.Marshal(*c)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return b, nil
}

// WriteDefaultConfig writes the embedded default config.yaml and JSON schema
// to the specified path. An existing config is kept, unless force is set, in
// which case it is moved to a backup first.
func WriteDefaultConfig(path string, force bool) error {
	configExists := false

	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case err == nil && pathInfo.Mode().IsRegular():
			configExists = true
		case pathInfo.IsDir():
			return fmt.Errorf("%s: %w", path, ErrPathIsDirectory)
		default:
			return fmt.Errorf("%s: %w", path, ErrUnknownFileState)
		}
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if configExists && force {
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)
		slog.Info("backing up existing config file",
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return fmt.Errorf("rename existing config file to backup: %w", err)
		}

		configExists = false
	}

	if configExists {
		slog.Debug("configuration file already exists, skipping write",
			slog.String("path", path),
		)
	} else {
		slog.Info("write default configuration",
			slog.String("path", path),
		)

		err = os.WriteFile(path, defaultConfigYAML, 0o600)
		if err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	schemaPath := filepath.Join(filepath.Dir(path), schemaFile)
	slog.Debug("write JSON schema",
		slog.String("path", schemaPath),
	)

	err = os.WriteFile(schemaPath, schemaJSON, 0o600)
	if err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	return nil
}

// DefaultConfigYAML returns the embedded default configuration.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), defaultConfigYAML...)
}
