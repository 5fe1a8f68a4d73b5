package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	describe "github.com/rbxkit/describe"
)

// FromYAML compiles a YAML description document into a Describer.
func FromYAML(data []byte) (describe.Describer, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}
	return compile(&doc)
}
