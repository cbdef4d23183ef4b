// Package output provides console formatting for seedctl commands: JSON
// and table writers plus color-aware styling that degrades cleanly on dumb
// terminals and pipes.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// JSON writes indented JSON to stdout.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer for stdout. Callers flush it
// after the last row.
func Table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// Warnf prints a warning message to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, Warning("Warning: ")+format+"\n", args...)
}
