package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/cliconfig"
	"github.com/seedctl/seedctl/pkg/cli/internal/output"
	"github.com/seedctl/seedctl/pkg/logging"
)

var (
	// Persistent flags shared by every subcommand.
	apiURL      string
	fixturesDir string
	jsonOutput  bool
	verbose     bool
	quiet       bool
	noColor     bool

	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// BuildDate is set at build time via ldflags.
	BuildDate = "unknown"

	// cfg carries defaults and SEEDCTL_* environment overrides. Flag
	// defaults come from it, so flags always win.
	cfg = cliconfig.Load()

	// logger is rebuilt from the effective verbosity before each command.
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "seedctl",
	Short: "Generate test fixtures and seed them into an API",
	Long: `seedctl generates test fixture documents and seeds them into a running
API over HTTP. Fixture data comes from generators registered in code and
from *_fixtures.json/yaml files discovered under --fixtures-dir.

Configuration is read from SEEDCTL_* environment variables; flags override.`,
	SilenceUsage:  true,
	SilenceErrors: true, // Execute reports the error itself
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.ParseLevel(cfg.LogLevel)
		if verbose || quiet {
			level = logging.FromVerbosity(verbose, quiet)
		}
		logger = logging.New(logging.Config{
			Level:  level,
			Format: logging.ParseFormat(cfg.LogFormat),
			Output: os.Stderr,
		})
		slog.SetDefault(logger)

		if noColor || cfg.NoColor {
			output.SetColorEnabled(false)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", output.Error(output.Icon("❌", "[x]")), err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&apiURL, "api-url", cfg.APIURL, "Base URL of the API to seed")
	pf.StringVar(&fixturesDir, "fixtures-dir", cfg.FixturesDir, "Directory scanned for *_fixtures.{json,yaml} files")
	pf.BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
}
