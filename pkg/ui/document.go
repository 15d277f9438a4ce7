package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// StdinPath is the path argument that selects standard input.
	StdinPath = "-"

	tabWidth = 4
)

// Document is the text shown by the pager.
type Document struct {
	Title string
	// Path is the file the document was read from. It is empty for documents
	// read from standard input, which cannot be reloaded.
	Path string
	Body string
}

// NewDocument creates a [Document] from body, normalizing it for display.
func NewDocument(title, path, body string) *Document {
	return &Document{
		Title: title,
		Path:  path,
		Body:  normalizeBody(body),
	}
}

// LoadDocument reads the document at path, or from stdin when path is
// [StdinPath].
func LoadDocument(path string, stdin io.Reader) (*Document, error) {
	if path == StdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return NewDocument("stdin", "", string(b)), nil
	}

	b, err := os.ReadFile(path) //nolint:gosec // G304: Reading user-provided files is the point.
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return NewDocument(filepath.Base(path), path, string(b)), nil
}

// Reload reads the document again from its path.
func (d *Document) Reload() (*Document, error) {
	if d.Path == "" {
		return nil, ErrNotReloadable
	}

	return LoadDocument(d.Path, nil)
}

// Size returns the size of the body in bytes.
func (d *Document) Size() int64 {
	return int64(len(d.Body))
}

// normalizeBody composes combining sequences so each cell holds one
// grapheme, and expands tabs and carriage returns, which have no cell width.
func normalizeBody(body string) string {
	body = norm.NFC.String(body)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "")

	return strings.ReplaceAll(body, "\t", strings.Repeat(" ", tabWidth))
}
