package export

import (
	"encoding/json"
	"fmt"
)

// jsonCodec round-trips fixtures through an indented JSON array.
type jsonCodec struct{}

func init() {
	RegisterEncoder(FormatJSON, jsonCodec{})
	RegisterDecoder(FormatJSON, jsonCodec{})
}

func (jsonCodec) Encode(fixtures []map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixtures: %w", err)
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte) ([]map[string]any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON syntax", ErrInvalidFormat)
	}
	var fixtures []map[string]any
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("%w: expected an array of fixture objects", ErrInvalidFormat)
	}
	return fixtures, nil
}
