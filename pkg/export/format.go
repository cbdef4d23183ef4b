package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a fixture serialization format.
type Format string

const (
	// FormatJSON is an indented JSON array, the default interchange format.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of fixture mappings.
	FormatYAML Format = "yaml"
	// FormatGo is a generated Go source file holding a fixture literal.
	// Export only.
	FormatGo Format = "go"
)

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatGo}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f names a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatGo:
		return true
	}
	return false
}

// CanDecode reports whether fixtures can be read back from this format.
func (f Format) CanDecode() bool {
	_, ok := decoderFor(f)
	return ok
}

// ParseFormat converts a user-supplied format name into a Format.
// Matching is case insensitive and accepts "yml" as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q (valid formats: %s)", s, formatList())
	}
	return f, nil
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// DetectFormat guesses the format from a file path extension.
// Unknown extensions default to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".go":
		return FormatGo
	default:
		return FormatJSON
	}
}
