package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/macropower/scrollview/pkg/config"
	"github.com/macropower/scrollview/pkg/ui/theme"
)

// showConfig writes cfg as YAML, highlighted with the configured theme when
// w is a terminal.
func showConfig(w io.Writer, cfg *config.Config, cl *config.Loader) error {
	b, err := cfg.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if !isTerminal(w) {
		_, err := w.Write(b)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	t := theme.New(cfg.UI.Theme)
	if cl != nil {
		t = cl.Theme()
	}

	err = highlightYAML(w, string(b), t.ChromaStyle)
	if err != nil {
		mustN(fmt.Fprintln(w, string(b)))

		return err
	}

	return nil
}

func highlightYAML(w io.Writer, src string, style *chroma.Style) error {
	lexer := chroma.Coalesce(lexers.Get("yaml"))

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenise yaml: %w", err)
	}

	err = formatters.TTY16m.Format(w, style, it)
	if err != nil {
		return fmt.Errorf("format yaml: %w", err)
	}

	return nil
}
