package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/internal/cliconfig"
	"github.com/seedctl/seedctl/pkg/cli/internal/output"
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/generator"
)

var (
	dbSetup         bool
	dbReset         bool
	dbResetAndSetup bool
	dbConfirm       bool
	dbListExisting  bool
	dbListAvailable bool
	dbGenerator     string
	dbFilter        string
	dbIDPath        string
	dbHealthPath    string
	dbHealthRetries int
	dbHealthDelay   time.Duration
)

var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Seed, list or reset fixtures through the API",
	Long: `Database talks to the running API: it creates the generated fixtures,
lists what already exists, or deletes everything and optionally recreates
the defaults. Every run starts with a readiness probe against --health-path
so a booting service gets time to come up.

Reset operations prompt for confirmation; pass --confirm to skip the
prompt in scripts.`,
	Example: `  seedctl database
  seedctl database --list-existing
  seedctl database --reset --confirm
  seedctl database --reset-and-setup -g users`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra []generator.Option
		if dbIDPath != "" {
			extra = append(extra, generator.WithIDPath(dbIDPath))
		}
		named, err := collectGenerators(true, false, extra...)
		if err != nil {
			return err
		}

		if dbListAvailable {
			return printAvailable(named)
		}

		named, err = selectGenerator(named, dbGenerator)
		if err != nil {
			return err
		}
		if err := applyFilter(named, dbFilter); err != nil {
			return err
		}

		ctx := cmd.Context()
		healthy, err := named[0].Generator.Health(ctx, dbHealthPath, dbHealthRetries, dbHealthDelay)
		if err != nil {
			return err
		}
		if !healthy {
			return fmt.Errorf("API at %s is not ready, make sure your service is running", apiURL)
		}

		switch {
		case dbListExisting:
			return runListExisting(ctx, named)
		case dbResetAndSetup:
			return runResetAndSetup(ctx, named)
		case dbReset:
			return runReset(ctx, named)
		case dbSetup:
			return runSetup(ctx, named)
		}
		return nil
	},
}

func runListExisting(ctx context.Context, named []generator.Named) error {
	statusf("%s", output.Bold("Existing Fixtures in Database:"))

	existing := make(map[string][]string, len(named))
	for _, n := range named {
		ids, err := n.Generator.ExistingIDs(ctx)
		if err != nil {
			return err
		}
		existing[n.Domain] = ids

		statusf("\n%s", output.Muted(fmt.Sprintf("%s generator:", n.Domain)))
		if len(ids) == 0 {
			statusf("%s", output.Warning("No fixtures found"))
			continue
		}
		for _, id := range ids {
			statusf("  %s %s", output.Icon("•", "-"), id)
		}
		statusf("%s", output.Success(fmt.Sprintf("Found %d fixtures", len(ids))))
	}

	if jsonOutput {
		return output.JSON(existing)
	}
	return nil
}

// setupSummary is the --json payload of a plain setup run.
type setupSummary struct {
	Created map[string][]map[string]any `json:"created_fixtures"`
	Total   int                         `json:"total"`
}

func runSetup(ctx context.Context, named []generator.Named) error {
	statusf("%s", output.Warning(output.Icon("🔄", "[~]")+" Setting up fixtures in database..."))

	summary := setupSummary{Created: make(map[string][]map[string]any, len(named))}
	for _, n := range named {
		statusf("\n%s", output.Muted(fmt.Sprintf("Processing %s generator...", n.Domain)))
		created, err := n.Generator.Setup(ctx)
		if err != nil {
			return err
		}
		summary.Created[n.Domain] = created
		summary.Total += len(created)

		statusf("%s", output.Success(fmt.Sprintf("%s Created %d fixtures in database", output.Icon("✅", "[+]"), len(created))))
		for _, fx := range created {
			statusf("  %s %v", output.Icon("•", "-"), fx[fixture.KeyFixtureID])
		}
	}
	statusf("\n%s", output.Bold(output.Success(fmt.Sprintf("%s Total: Created %d fixtures across all generators", output.Icon("🎉", "[*]"), summary.Total))))

	if jsonOutput {
		return output.JSON(summary)
	}
	return nil
}

// resetSummary is the --json payload of a reset run.
type resetSummary struct {
	Results map[string]*generator.ResetResult `json:"results"`
	Total   int                               `json:"total_deleted"`
}

func runReset(ctx context.Context, named []generator.Named) error {
	if err := confirmDestructive("WARNING: This will DELETE all fixtures from the database!"); err != nil {
		return err
	}
	statusf("%s", output.Warning(output.Icon("🔄", "[~]")+" Resetting all fixtures..."))

	summary := resetSummary{Results: make(map[string]*generator.ResetResult, len(named))}
	for _, n := range named {
		statusf("\n%s", output.Muted(fmt.Sprintf("Processing %s generator...", n.Domain)))
		result, err := n.Generator.Reset(ctx)
		if err != nil {
			return err
		}
		summary.Results[n.Domain] = result
		summary.Total += result.Count

		printResetResult(result)
	}
	statusf("\n%s", output.Bold(output.Success(fmt.Sprintf("%s Total: Deleted %d fixtures across all generators", output.Icon("🎉", "[*]"), summary.Total))))

	if jsonOutput {
		return output.JSON(summary)
	}
	return nil
}

// resetAndSetupSummary is the --json payload of a reset-and-setup run.
type resetAndSetupSummary struct {
	Results map[string]*generator.ResetAndSetupResult `json:"results"`
	Total   int                                       `json:"total_created"`
}

func runResetAndSetup(ctx context.Context, named []generator.Named) error {
	if err := confirmDestructive("WARNING: This will DELETE all fixtures and recreate defaults!"); err != nil {
		return err
	}
	statusf("%s", output.Warning(output.Icon("🔄", "[~]")+" Resetting all fixtures and recreating defaults..."))

	summary := resetAndSetupSummary{Results: make(map[string]*generator.ResetAndSetupResult, len(named))}
	for _, n := range named {
		statusf("\n%s", output.Muted(fmt.Sprintf("Processing %s generator...", n.Domain)))
		result, err := n.Generator.ResetAndSetup(ctx)
		if err != nil {
			return err
		}
		summary.Results[n.Domain] = result
		summary.Total += len(result.CreatedFixtures)

		printResetResult(result.Reset)
		if len(result.CreatedFixtures) > 0 {
			statusf("%s", output.Success(fmt.Sprintf("%s Created %d new fixtures", output.Icon("✅", "[+]"), len(result.CreatedFixtures))))
			for _, fx := range result.CreatedFixtures {
				statusf("  %s %v", output.Icon("•", "-"), fx[fixture.KeyFixtureID])
			}
		} else {
			statusf("%s", output.Warning(output.Icon("⚠️", "[!]")+" No new fixtures created"))
		}
	}
	statusf("\n%s", output.Bold(output.Success(fmt.Sprintf("%s Total: Created %d fixtures across all generators", output.Icon("🎉", "[*]"), summary.Total))))

	if jsonOutput {
		return output.JSON(summary)
	}
	return nil
}

func printResetResult(result *generator.ResetResult) {
	if result.Status == generator.StatusWarning {
		statusf("%s", output.Warning(fmt.Sprintf("%s %s", output.Icon("⚠️", "[!]"), result.Message)))
	} else {
		statusf("%s", output.Success(fmt.Sprintf("%s %s", output.Icon("✅", "[+]"), result.Message)))
	}
	if len(result.FixturesDeleted) > 0 {
		statusf("%s", output.Warning("Deleted fixtures:"))
		for _, id := range result.FixturesDeleted {
			statusf("  %s %s", output.Icon("•", "-"), id)
		}
	}
}

func init() {
	f := databaseCmd.Flags()
	f.BoolVar(&dbSetup, "setup", true, "Create the generated fixtures in the database")
	f.BoolVar(&dbReset, "reset", false, "Delete all fixtures from the database")
	f.BoolVar(&dbResetAndSetup, "reset-and-setup", false, "Delete all fixtures, then recreate the defaults")
	f.BoolVar(&dbConfirm, "confirm", false, "Skip the confirmation prompt for destructive operations")
	f.BoolVar(&dbListExisting, "list-existing", false, "List fixture IDs currently in the database")
	f.BoolVar(&dbListAvailable, "list-available", false, "List generators and fixtures, then exit")
	f.StringVarP(&dbGenerator, "generator", "g", "", "Run a single generator by domain name")
	f.StringVar(&dbFilter, "filter", "", "Keep only fixtures matching this expression")
	f.StringVar(&dbIDPath, "id-path", "", "JSONPath to the fixture ID in list responses (e.g. $.id)")
	f.StringVar(&dbHealthPath, "health-path", cliconfig.DefaultHealthPath, "Path probed to check API readiness")
	f.IntVar(&dbHealthRetries, "health-retries", cliconfig.DefaultHealthRetries, "Readiness probe attempts before giving up")
	f.DurationVar(&dbHealthDelay, "health-delay", cliconfig.DefaultHealthDelay, "Pause between readiness probe attempts")
	rootCmd.AddCommand(databaseCmd)
}
