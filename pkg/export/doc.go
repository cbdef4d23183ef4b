// Package export serializes resolved fixtures to files and reads fixture
// documents back.
//
// Formats self-register from init functions in per-format files, so adding a
// format means adding one file. JSON and YAML round-trip; the go format
// renders a Go source literal and is export only.
package export
