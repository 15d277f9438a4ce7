package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Marshal encodes v with two space indentation and indented sequences, the
// layout of the embedded default configuration.
func Marshal(v any) ([]byte, error) {
	b, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return b, nil
}
