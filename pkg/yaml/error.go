package yaml

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// Error is an error at a location in a YAML document. The location is
// either a token, a path, or both.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
	Color  bool
}

// ErrorOpt configures an [Error].
type ErrorOpt func(e *Error)

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

// WithSource sets the document the error refers to, so the error message can
// include the surrounding lines.
func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

// WithColor enables ANSI colors in the annotated source.
func WithColor(color bool) ErrorOpt {
	return func(e *Error) {
		e.Color = color
	}
}

// Annotate applies opts to err when it is an [*Error], and returns err.
func Annotate(err error, opts ...ErrorOpt) error {
	if e, ok := err.(*Error); ok { //nolint:errorlint // Only direct values are annotated.
		for _, opt := range opts {
			opt(e)
		}
	}

	return err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		var p printer.Printer

		pos := e.Token.Position

		return fmt.Sprintf("[%d:%d] %v\n%s", pos.Line, pos.Column, e.Err,
			strings.TrimRight(p.PrintErrorToken(e.Token, e.Color), "\n"))

	case e.Path != nil && len(e.Source) > 0:
		src, err := e.Path.AnnotateSource(e.Source, e.Color)
		if err != nil {
			slog.Debug("annotate yaml source",
				slog.String("path", e.Path.String()),
				slog.Any("error", err),
			)

			return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
		}

		return fmt.Sprintf("error at %s: %v\n%s", e.Path, e.Err, strings.TrimRight(string(src), "\n"))

	case e.Path != nil:
		return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
	}

	return e.Err.Error()
}
