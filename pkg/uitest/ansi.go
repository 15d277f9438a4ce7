package uitest

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

// ANSIVerifier helps verify styled terminal output.
type ANSIVerifier struct {
	output string
}

// NewANSIVerifier creates a new verifier for the given output.
func NewANSIVerifier(output string) *ANSIVerifier {
	return &ANSIVerifier{output: output}
}

// PlainText strips all ANSI sequences and returns plain text.
func (v *ANSIVerifier) PlainText() string {
	return ansi.Strip(v.output)
}

// Lines returns the plain text split into lines.
func (v *ANSIVerifier) Lines() []string {
	return strings.Split(v.PlainText(), "\n")
}

// ContainsPlainText checks if the plain text (ANSI stripped) contains the
// expected string.
func (v *ANSIVerifier) ContainsPlainText(t *testing.T, expected string) {
	t.Helper()

	assert.Contains(t, v.PlainText(), expected, "plain text should contain %q", expected)
}
