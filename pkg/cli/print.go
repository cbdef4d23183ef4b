package cli

import (
	"fmt"

	"github.com/seedctl/seedctl/pkg/cli/internal/output"
)

// printResult outputs a command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is
// written to stdout; textFn is not called and progress prose is
// suppressed. Scripts can pipe the output straight into jq.
func printResult(data any, textFn func()) error {
	if jsonOutput {
		return output.JSON(data)
	}
	textFn()
	return nil
}

// statusf prints progress prose in text mode and stays silent in JSON
// mode, keeping stdout machine-readable there.
func statusf(format string, args ...any) {
	if jsonOutput {
		return
	}
	fmt.Printf(format+"\n", args...)
}
