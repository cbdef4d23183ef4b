package export

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlCodec round-trips fixtures through a YAML sequence.
type yamlCodec struct{}

func init() {
	RegisterEncoder(FormatYAML, yamlCodec{})
	RegisterDecoder(FormatYAML, yamlCodec{})
}

func (yamlCodec) Encode(fixtures []map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixtures: %w", err)
	}
	return data, nil
}

func (yamlCodec) Decode(data []byte) ([]map[string]any, error) {
	var fixtures []map[string]any
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("%w: expected a YAML sequence of fixture mappings", ErrInvalidFormat)
	}
	return fixtures, nil
}
