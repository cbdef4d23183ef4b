package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "fixtures.json")

	err := WriteFile(path, []byte(`[]`))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRoundTripJSON(t *testing.T) {
	fixtures := []map[string]any{
		{"fixture_id": "a", "value": float64(1)},
		{"fixture_id": "b", "value": float64(2)},
	}

	path := filepath.Join(t.TempDir(), "fixtures.json")
	data, err := Encode(FormatJSON, fixtures)
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, data))

	got, err := ReadFixtureFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixtures, got)
}

func TestRoundTripYAML(t *testing.T) {
	fixtures := []map[string]any{
		{"fixture_id": "a", "enabled": true},
	}

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	data, err := Encode(FormatYAML, fixtures)
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, data))

	got, err := ReadFixtureFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0]["fixture_id"])
	assert.Equal(t, true, got[0]["enabled"])
}

func TestReadFixtureFileNotFound(t *testing.T) {
	_, err := ReadFixtureFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadFixtureFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ReadFixtureFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadFixtureFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadFixtureFile(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestReadFixtureFileGoRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.go")
	require.NoError(t, os.WriteFile(path, []byte("package fixtures\n"), 0644))

	_, err := ReadFixtureFile(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
