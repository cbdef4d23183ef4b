package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Common errors for fixture file IO.
var (
	ErrFileNotFound  = errors.New("fixture file not found")
	ErrEmptyFile     = errors.New("fixture file is empty")
	ErrInvalidFormat = errors.New("invalid fixture format")
)

// WriteFile writes data to path using an atomic rename, creating parent
// directories as needed.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write to a temporary file first (atomic write pattern).
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// readFile stats, opens and slurps path with the shared error mapping.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return data, nil
}

// ReadFixtureFile loads an exported fixture array from a JSON or YAML file.
// The format is detected from the file extension.
func ReadFixtureFile(path string) ([]map[string]any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(DetectFormat(path), data)
}

// ReadDocument loads an ordered name-to-descriptor document from a JSON or
// YAML file.
func ReadDocument(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(DetectFormat(path), data)
}
