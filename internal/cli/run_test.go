package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scrollview/internal/cli"
	"github.com/macropower/scrollview/pkg/scroll"
	"github.com/macropower/scrollview/pkg/ui"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		stdin   string
		args    func(dir string) []string
		want    []string
		wantErr error
	}{
		"file is printed when stdout is not a terminal": {
			args: func(dir string) []string {
				path := filepath.Join(dir, "doc.txt")
				require.NoError(t, os.WriteFile(path, []byte("hello\tworld\n"), 0o600))

				return []string{path}
			},
			want: []string{"hello    world\n"},
		},
		"stdin": {
			stdin: "from stdin",
			args: func(string) []string {
				return []string{"-"}
			},
			want: []string{"from stdin"},
		},
		"stdin without path": {
			stdin: "implicit stdin",
			args: func(string) []string {
				return []string{}
			},
			want: []string{"implicit stdin"},
		},
		"show config": {
			args: func(string) []string {
				return []string{"--show-config", "--scrollbar-side", "left"}
			},
			want: []string{"apiVersion: scrollview.jacobcolvin.com/v1beta1", "side: left"},
		},
		"invalid scrollbar side": {
			args: func(string) []string {
				return []string{"--scrollbar-side", "top", "-"}
			},
			wantErr: scroll.ErrInvalidSide,
		},
		"missing file": {
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "missing.txt")}
			},
			wantErr: os.ErrNotExist,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			args := append([]string{"--config", filepath.Join(dir, "config.yaml")}, tc.args(dir)...)

			var stdout, stderr bytes.Buffer

			cmd := cli.NewRootCmd()
			cmd.SetArgs(args)
			cmd.SetIn(strings.NewReader(tc.stdin))
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)

			err := cmd.Execute()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			for _, want := range tc.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestRun_WriteConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scrollview", "config.yaml")

	cmd := cli.NewRootCmd()
	cmd.SetArgs([]string{"--config", path, "--write-config"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.v1beta1.json"))
}

func TestRunArgs_Apply(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args      cli.RunArgs
		wantSide  string
		wantWidth int
		wantMouse bool
		wantLines bool
	}{
		"no flags keeps config": {
			wantSide:  string(scroll.SideRight),
			wantWidth: 1,
			wantMouse: true,
		},
		"all flags": {
			args: cli.RunArgs{
				ScrollbarSide:  "left",
				ScrollbarWidth: 3,
				NoMouse:        true,
				LineNumbers:    true,
			},
			wantSide:  "left",
			wantWidth: 3,
			wantMouse: false,
			wantLines: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := ui.NewConfig()
			tc.args.Apply(cfg)

			assert.Equal(t, tc.wantSide, cfg.Scrollbar.Side)
			assert.Equal(t, tc.wantWidth, *cfg.Scrollbar.Width)
			assert.Equal(t, tc.wantMouse, *cfg.Mouse)
			assert.Equal(t, tc.wantLines, *cfg.LineNumbers)
		})
	}
}
