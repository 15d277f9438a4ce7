// Package yaml wraps [github.com/goccy/go-yaml] with schema validation and
// errors that point into the source document.
package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// ErrEmptyDocument indicates that the input holds no YAML document.
var ErrEmptyDocument = errors.New("empty document")

// Decoder decodes a YAML document. Duplicate keys are rejected, and syntax
// errors are returned as [*Error] carrying the offending token.
type Decoder struct {
	d *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{d: yaml.NewDecoder(r)}
}

func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)

	var yamlErr yaml.Error

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return ErrEmptyDocument
	case errors.As(err, &yamlErr):
		return NewError(errors.New(yamlErr.GetMessage()), WithToken(yamlErr.GetToken()))
	}

	//nolint:wrapcheck // Not a syntax error, nothing to annotate.
	return err
}
