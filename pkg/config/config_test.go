package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scrollview/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, config.APIVersion, cfg.APIVersion)
	assert.Equal(t, config.Kind, cfg.Kind)
	require.NotNil(t, cfg.UI)
	require.NotNil(t, cfg.UI.Scrollbar)
	assert.Equal(t, "right", cfg.UI.Scrollbar.Side)
	assert.Equal(t, 1, *cfg.UI.Scrollbar.Width)
	require.NoError(t, cfg.Validate())
}

func TestConfig_EnsureDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		APIVersion: config.APIVersion,
		Kind:       config.Kind,
	}

	assert.Nil(t, cfg.UI)

	cfg.EnsureDefaults()

	require.NotNil(t, cfg.UI)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, *cfg.UI.Mouse)
	require.NotNil(t, cfg.UI.KeyBinds)
	assert.True(t, cfg.UI.KeyBinds.Common.Quit.Match("ctrl+c"))
}

func TestConfig_MarshalYAML(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	b, err := cfg.MarshalYAML()
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "apiVersion: "+config.APIVersion)
	assert.Contains(t, out, "kind: Configuration")
	assert.Contains(t, out, "side: right")

	// The marshaled config loads back and validates.
	l := config.NewLoaderFromBytes(b)
	require.NoError(t, l.Validate())

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.UI.Scrollbar, got.UI.Scrollbar)
}

func TestDefaultConfigYAML(t *testing.T) {
	t.Parallel()

	l := config.NewLoaderFromBytes(config.DefaultConfigYAML())
	require.NoError(t, l.Validate())

	got, err := l.Load()
	require.NoError(t, err)

	want := config.NewConfig()
	assert.Equal(t, want.UI.Theme, got.UI.Theme)
	assert.Equal(t, *want.UI.MinimumDelay, *got.UI.MinimumDelay)
	assert.Equal(t, want.UI.Scrollbar, got.UI.Scrollbar)
	assert.Equal(t, want.UI.KeyBinds.Scroll.GetKeyBinds(), got.UI.KeyBinds.Scroll.GetKeyBinds())
	assert.Equal(t, want.UI.KeyBinds.Common.GetKeyBinds(), got.UI.KeyBinds.Common.GetKeyBinds())
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setupPath   func(t *testing.T) string
		err         error
		wantContent string
		force       bool
		wantBackup  bool
	}{
		"new file": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "config.yaml")
			},
			wantContent: "kind: Configuration",
		},
		"existing file": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return writeFile(t, "existing")
			},
			wantContent: "existing",
		},
		"create parent directories": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "nested", "deep", "config.yaml")
			},
			wantContent: "kind: Configuration",
		},
		"path is directory": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			err: config.ErrPathIsDirectory,
		},
		"force existing file creates backup": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return writeFile(t, "existing content")
			},
			force:       true,
			wantBackup:  true,
			wantContent: "kind: Configuration",
		},
		"force with path is directory": {
			setupPath: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			force: true,
			err:   config.ErrPathIsDirectory,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := tc.setupPath(t)

			err := config.WriteDefaultConfig(path, tc.force)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tc.wantContent)

			_, err = os.Stat(filepath.Join(filepath.Dir(path), "config.v1beta1.json"))
			require.NoError(t, err)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)

			backups := 0
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), ".old") {
					backups++
				}
			}

			if tc.wantBackup {
				assert.Equal(t, 1, backups)
			} else {
				assert.Zero(t, backups)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "scrollview", "config.yaml"), config.GetPath())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)

	_, err = f.WriteString(content)
	require.NoError(t, err)

	require.NoError(t, f.Close())

	return f.Name()
}
