// Command scrollview is a terminal pager with a scroll bar.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/macropower/scrollview/internal/cli"
	"github.com/macropower/scrollview/pkg/version"
)

func main() {
	err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithVersion(version.String()),
		fang.WithColorSchemeFunc(cli.ColorSchemeFunc),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(1)
	}
}
