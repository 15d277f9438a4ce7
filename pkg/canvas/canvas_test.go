package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scrollview/pkg/canvas"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		lines    []string
		opts     []canvas.Opt
		expected []string
		cols     int
	}{
		"pads to widest line": {
			lines:    []string{"ab", "abcd", ""},
			expected: []string{"ab  ", "abcd", "    "},
			cols:     4,
		},
		"forced width truncates": {
			lines:    []string{"abcdef"},
			opts:     []canvas.Opt{canvas.WithCols(3)},
			expected: []string{"abc"},
			cols:     3,
		},
		"wide runes count as two cells": {
			lines:    []string{"日本", "a"},
			expected: []string{"日本", "a   "},
			cols:     4,
		},
		"empty": {
			lines:    nil,
			expected: []string{},
			cols:     0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := canvas.New(tc.lines, tc.opts...)
			assert.Equal(t, tc.cols, c.Cols())
			assert.Equal(t, len(tc.expected), c.Rows())
			assert.Equal(t, tc.expected, c.Lines())
		})
	}
}

func TestCanvas_Crop(t *testing.T) {
	t.Parallel()

	c := canvas.New([]string{"0", "1", "2", "3", "4"}, canvas.WithCursor(canvas.Cursor{Col: 0, Row: 3}))

	top := c.CropTop(2)
	assert.Equal(t, []string{"2", "3", "4"}, top.Lines())

	cur, ok := top.Cursor()
	require.True(t, ok)
	assert.Equal(t, canvas.Cursor{Col: 0, Row: 1}, cur)

	bottom := top.CropBottom(2)
	assert.Equal(t, []string{"2"}, bottom.Lines())

	_, ok = bottom.Cursor()
	assert.False(t, ok, "cursor below the cropped canvas is dropped")

	// Receiver is unchanged.
	assert.Equal(t, 5, c.Rows())

	assert.Equal(t, 0, c.CropTop(10).Rows())
	assert.Equal(t, 5, c.CropBottom(-1).Rows())
}

func TestCanvas_PadTrimLeftRight(t *testing.T) {
	t.Parallel()

	c := canvas.New([]string{"abcd", "efgh"}, canvas.WithCursor(canvas.Cursor{Col: 1, Row: 0}))

	tcs := map[string]struct {
		expected []string
		cursor   *canvas.Cursor
		left     int
		right    int
	}{
		"pad both": {
			left: 1, right: 2,
			expected: []string{" abcd  ", " efgh  "},
			cursor:   &canvas.Cursor{Col: 2, Row: 0},
		},
		"trim right": {
			left: 0, right: -2,
			expected: []string{"ab", "ef"},
			cursor:   &canvas.Cursor{Col: 1, Row: 0},
		},
		"trim right past cursor": {
			left: 0, right: -3,
			expected: []string{"a", "e"},
		},
		"trim left": {
			left: -1, right: 0,
			expected: []string{"bcd", "fgh"},
			cursor:   &canvas.Cursor{Col: 0, Row: 0},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := c.PadTrimLeftRight(tc.left, tc.right)
			assert.Equal(t, tc.expected, out.Lines())

			cur, ok := out.Cursor()
			if tc.cursor == nil {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, *tc.cursor, cur)
		})
	}
}

func TestCanvas_PadTrimTopBottom(t *testing.T) {
	t.Parallel()

	c := canvas.New([]string{"a", "b"}, canvas.WithCursor(canvas.Cursor{Col: 0, Row: 1}))

	out := c.PadTrimTopBottom(1, 2)
	assert.Equal(t, []string{" ", "a", "b", " ", " "}, out.Lines())

	cur, ok := out.Cursor()
	require.True(t, ok)
	assert.Equal(t, canvas.Cursor{Col: 0, Row: 2}, cur)

	out = c.PadTrimTopBottom(-1, 0)
	assert.Equal(t, []string{"b"}, out.Lines())
}

func TestCanvas_PadTo(t *testing.T) {
	t.Parallel()

	c := canvas.New([]string{"abc"})

	out := c.PadTo(5, 3)
	assert.Equal(t, 5, out.Cols())
	assert.Equal(t, 3, out.Rows())

	// Never crops.
	out = c.PadTo(1, 0)
	assert.Equal(t, 3, out.Cols())
	assert.Equal(t, 1, out.Rows())
}

func TestSolid(t *testing.T) {
	t.Parallel()

	c := canvas.Solid("█", 2, 3)
	assert.Equal(t, 2, c.Cols())
	assert.Equal(t, []string{"██", "██", "██"}, c.Lines())

	assert.Equal(t, 0, canvas.Blank(-1, -1).Rows())
}

func TestFromString(t *testing.T) {
	t.Parallel()

	c := canvas.FromString("one\ntwo\nthree")
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 5, c.Cols())
	assert.Equal(t, "one  \ntwo  \nthree", c.String())

	assert.Equal(t, 0, canvas.FromString("").Rows())
}
