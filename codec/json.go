package codec

import (
	"fmt"

	json "github.com/goccy/go-json"

	describe "github.com/rbxkit/describe"
)

// FromJSON compiles a JSON description document into a Describer.
func FromJSON(data []byte) (describe.Describer, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	return compile(&doc)
}
