package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoEncoderOutput(t *testing.T) {
	fixtures := []map[string]any{
		{
			"fixture_id": "device_1",
			"enabled":    true,
			"port":       float64(8080),
			"ratio":      1.5,
			"tags":       []any{"a", "b"},
			"nested":     map[string]any{"zone": "eu", "id": float64(3)},
		},
	}

	data, err := Encode(FormatGo, fixtures)
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "// Code generated by seedctl. DO NOT EDIT.")
	assert.Contains(t, src, "package fixtures")
	assert.Contains(t, src, "var fixtures = []map[string]any{")
	assert.Contains(t, src, `"fixture_id": "device_1"`)
	// Whole JSON numbers come out as integer literals, fractions stay floats.
	assert.Contains(t, src, "8080,")
	assert.NotContains(t, src, "8080.")
	assert.Contains(t, src, "1.5,")
	assert.Contains(t, src, `[]any{`)
	assert.Contains(t, src, `map[string]any{`)
}

func TestGoEncoderDeterministic(t *testing.T) {
	fixtures := []map[string]any{
		{"b": 1, "a": 2, "c": 3, "fixture_id": "x"},
	}

	first, err := Encode(FormatGo, fixtures)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Encode(FormatGo, fixtures)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestGoEncoderEmpty(t *testing.T) {
	data, err := Encode(FormatGo, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), "var fixtures = []map[string]any{}")
}
