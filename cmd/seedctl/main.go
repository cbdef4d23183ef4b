// seedctl CLI - generate test fixtures and seed them into an API
package main

import (
	"github.com/seedctl/seedctl/pkg/cli"

	// Fixture data packages register their generators via init.
	_ "github.com/seedctl/seedctl/pkg/seeds/example"
)

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
