package scroll

import "errors"

var (
	// ErrInvalidSide indicates a scroll bar side other than left or right.
	ErrInvalidSide = errors.New("invalid scroll bar side")
	// ErrInvalidGlyph indicates a scroll bar glyph that is not exactly one
	// cell wide.
	ErrInvalidGlyph = errors.New("invalid scroll bar glyph")
)
