package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

// usageErrorPrefixes match the errors cobra returns for a bad command line.
// Cobra does not type them, see https://github.com/spf13/cobra/pull/2266.
var usageErrorPrefixes = []string{
	"accepts at most",
	"flag needs an argument:",
	"invalid argument",
	"unknown command",
	"unknown flag:",
	"unknown shorthand flag:",
}

// ErrorHandler prints err with the fang styles, adding a usage hint for
// errors caused by the command line.
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	if !isUsageError(err) {
		return
	}

	hint := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.ErrorText.UnsetWidth().Render("Try"),
		styles.Program.Flag.Render("--help"),
		styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
	)

	mustN(fmt.Fprintln(w, hint))
	mustN(fmt.Fprintln(w))
}

func isUsageError(err error) bool {
	if errors.Is(err, ErrNoInput) {
		return true
	}

	msg := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}

	return false
}

func mustN(_ int, err error) {
	if err != nil {
		panic(err)
	}
}
