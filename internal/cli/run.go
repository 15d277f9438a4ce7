package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/scrollview/pkg/config"
	"github.com/macropower/scrollview/pkg/log"
	"github.com/macropower/scrollview/pkg/scroll"
	"github.com/macropower/scrollview/pkg/ui"
	"github.com/macropower/scrollview/pkg/watch"
)

const (
	cmdExamples = `  # View a file:
  scrollview ./README.md

  # Watch the file for changes and reload:
  scrollview ./app.log --watch

  # Read from stdin:
  git log | scrollview -

  # Put the scroll bar on the left, two cells wide:
  scrollview ./README.md --scrollbar-side left --scrollbar-width 2

  # Send output to a file (disables TUI):
  scrollview ./README.md > copy.md`

	logBufferSize = 100
)

// ErrNoInput indicates that no path was given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a path, or - to read stdin")

type RunArgs struct {
	*RootArgs

	Path           string
	ConfigPath     string
	ScrollbarSide  string
	ScrollbarWidth int
	Watch          bool
	WriteConfig    bool
	ShowConfig     bool
	Cursor         bool
	LineNumbers    bool
	NoMouse        bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the scrollview configuration file")
	cmd.Flags().BoolVarP(&ra.Watch, "watch", "w", false, "Watch the file for changes and reload")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration files and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")
	cmd.Flags().BoolVar(&ra.Cursor, "cursor", false, "Show a line cursor")
	cmd.Flags().BoolVarP(&ra.LineNumbers, "line-numbers", "n", false, "Show line numbers")
	cmd.Flags().BoolVar(&ra.NoMouse, "no-mouse", false, "Disable mouse input")
	cmd.Flags().StringVar(&ra.ScrollbarSide, "scrollbar-side", "",
		fmt.Sprintf("Scroll bar side, one of: [%s %s]", scroll.SideLeft, scroll.SideRight))
	cmd.Flags().IntVar(&ra.ScrollbarWidth, "scrollbar-width", 0, "Scroll bar width in cells")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("scrollbar-side",
		cobra.FixedCompletions(
			[]string{string(scroll.SideLeft), string(scroll.SideRight)},
			cobra.ShellCompDirectiveNoFileComp,
		),
	)
	if err != nil {
		panic(err)
	}
}

// Apply overrides cfg with the flags that were set.
func (ra *RunArgs) Apply(cfg *ui.Config) {
	cfg.EnsureDefaults()

	if ra.ScrollbarSide != "" {
		cfg.Scrollbar.Side = ra.ScrollbarSide
	}

	if ra.ScrollbarWidth != 0 {
		width := ra.ScrollbarWidth
		cfg.Scrollbar.Width = &width
	}

	if ra.LineNumbers {
		lineNumbers := true
		cfg.LineNumbers = &lineNumbers
	}

	if ra.NoMouse {
		mouse := false
		cfg.Mouse = &mouse
	}
}

func run(cmd *cobra.Command, rc *RunArgs) error {
	configPath := rc.ConfigPath
	if configPath == "" {
		configPath = config.GetPath()
	}

	err := config.WriteDefaultConfig(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}

	if rc.WriteConfig {
		// Exit early after writing the default config.
		// Also, if there was an error, it should be fatal.
		return err
	}

	cfg, cl, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	rc.Apply(cfg.UI)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if rc.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		return showConfig(cmd.OutOrStdout(), cfg, cl)
	}

	path := rc.Path
	if path == "" {
		if isTerminal(cmd.InOrStdin()) {
			return ErrNoInput
		}

		path = ui.StdinPath
	}

	doc, err := ui.LoadDocument(path, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	// If stdout is not a terminal, actually "concatenate".
	if !isTerminal(cmd.OutOrStdout()) {
		_, err := io.WriteString(cmd.OutOrStdout(), doc.Body)
		if err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}

		return nil
	}

	logBuf := log.NewCircularBuffer(logBufferSize)

	logHandler, err := log.NewHandler(logBuf, rc.LogLevel, rc.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cmd.Context(), cfg.UI, doc, rc)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

// loadConfig reads the configuration at path, falling back to the defaults
// when it cannot be read.
func loadConfig(path string) (*config.Config, *config.Loader, error) {
	cl, err := config.NewLoaderFromFile(path, config.WithThemeFromData())
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))

		return config.NewConfig(), nil, nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, cl, nil
}

// runUI starts the UI program.
func runUI(ctx context.Context, cfg *ui.Config, doc *ui.Document, rc *RunArgs) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []ui.Opt{ui.WithCursor(rc.Cursor)}

	switch {
	case rc.Watch && doc.Path == "":
		slog.Warn("cannot watch stdin, ignoring --watch")

	case rc.Watch:
		w, err := watch.New(doc.Path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", doc.Path, err)
		}

		defer func() {
			err := w.Close()
			if err != nil {
				slog.Debug("close watcher", slog.Any("err", err))
			}
		}()

		ch := make(chan watch.Event)
		w.Subscribe(ch)

		go w.Run(ctx)

		opts = append(opts, ui.WithEvents(ch))
	}

	p, err := ui.NewProgram(cfg, doc, opts...)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: File descriptors fit in int.
}
