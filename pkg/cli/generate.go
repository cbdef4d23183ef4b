package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/pkg/cli/internal/output"
	"github.com/seedctl/seedctl/pkg/export"
	"github.com/seedctl/seedctl/pkg/generator"
)

var (
	generateFormat        string
	generateSave          string
	generateSplitDir      string
	generateListAvailable bool
	generateGenerator     string
	generateFilter        string
	generateRaw           bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fixture documents",
	Long: `Generate resolves every fixture from the available generators and writes
the result as a JSON, YAML or Go source document. The document goes to
stdout unless --save or --split-dir is given; progress lines go to stderr,
so the output is always safe to pipe.`,
	Example: `  seedctl generate
  seedctl generate --format yaml --save fixtures.yaml
  seedctl generate -g users --filter 'payload.role == "admin"'
  seedctl generate --split-dir testdata/fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		named, err := collectGenerators(false, generateRaw)
		if err != nil {
			return err
		}

		if generateListAvailable {
			return printAvailable(named)
		}

		named, err = selectGenerator(named, generateGenerator)
		if err != nil {
			return err
		}
		if err := applyFilter(named, generateFilter); err != nil {
			return err
		}

		format, err := export.ParseFormat(generateFormat)
		if err != nil {
			return err
		}

		if generateSplitDir != "" {
			if generateSave != "" {
				output.Warnf("--save is ignored when --split-dir is set")
			}
			return writeSplit(named, generateSplitDir, format)
		}

		fixtures, err := mergedFixtures(named)
		if err != nil {
			return err
		}
		data, err := export.Encode(format, fixtures)
		if err != nil {
			return err
		}

		if generateSave != "" {
			if err := export.WriteFile(generateSave, data); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, output.Success(fmt.Sprintf("Saved fixtures to %s", generateSave)))
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// mergedFixtures resolves every generator's fixtures into one array. A
// single generator yields its fixtures untouched; several concatenate,
// with each element tagged by a _generator key naming its source so the
// merged document stays attributable.
func mergedFixtures(named []generator.Named) ([]map[string]any, error) {
	single := len(named) == 1
	var merged []map[string]any
	for _, n := range named {
		fixtures, err := n.Generator.Fixtures()
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, output.Success(fmt.Sprintf("Generated %d fixtures from %s generator", len(fixtures), n.Domain)))
		if single {
			return fixtures, nil
		}
		for _, fx := range fixtures {
			fx["_generator"] = n.Domain
		}
		merged = append(merged, fixtures...)
	}
	return merged, nil
}

// writeSplit writes one document per generator, named so the files are
// discoverable again via --fixtures-dir.
func writeSplit(named []generator.Named, dir string, format export.Format) error {
	for _, n := range named {
		fixtures, err := n.Generator.Fixtures()
		if err != nil {
			return err
		}
		data, err := export.Encode(format, fixtures)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, splitFilename(n.Domain, format))
		if err := export.WriteFile(path, data); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, output.Success(fmt.Sprintf("Saved %d fixtures to %s", len(fixtures), path)))
	}
	return nil
}

func splitFilename(domain string, format export.Format) string {
	return fmt.Sprintf("%s_fixtures.%s", domain, format)
}

func init() {
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "json", "Output format: json, yaml or go")
	generateCmd.Flags().StringVarP(&generateSave, "save", "s", "", "Save the document to a file instead of stdout")
	generateCmd.Flags().StringVar(&generateSplitDir, "split-dir", "", "Write one <domain>_fixtures file per generator into this directory")
	generateCmd.Flags().BoolVar(&generateListAvailable, "list-available", false, "List generators and fixtures, then exit")
	generateCmd.Flags().StringVarP(&generateGenerator, "generator", "g", "", "Run a single generator by domain name")
	generateCmd.Flags().StringVar(&generateFilter, "filter", "", "Keep only fixtures matching this expression")
	generateCmd.Flags().BoolVar(&generateRaw, "raw", false, "Skip template placeholder expansion")
	rootCmd.AddCommand(generateCmd)
}
