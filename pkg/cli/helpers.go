package cli

import (
	"errors"
	"fmt"

	"github.com/seedctl/seedctl/pkg/apiclient"
	"github.com/seedctl/seedctl/pkg/cli/internal/output"
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/generator"
	"github.com/seedctl/seedctl/pkg/template"
)

// collectGenerators instantiates every registered generator and folds in
// fixture files from --fixtures-dir. withAPI attaches an HTTP client for
// commands that talk to the API; raw skips template expansion so
// placeholders survive into the output.
func collectGenerators(withAPI, raw bool, extra ...generator.Option) ([]generator.Named, error) {
	opts := []generator.Option{generator.WithLogger(logger)}
	if !raw {
		opts = append(opts, generator.WithTemplates(template.New(template.WithLogger(logger))))
	}
	if withAPI {
		client := apiclient.New(apiURL,
			apiclient.WithTimeout(cfg.Timeout),
			apiclient.WithLogger(logger),
		)
		opts = append(opts, generator.WithClient(client))
	}
	opts = append(opts, extra...)

	named, err := generator.DiscoverDir(fixturesDir, opts...)
	if err != nil {
		return nil, err
	}
	if len(named) == 0 {
		return nil, errors.New("no generators available")
	}
	return named, nil
}

// selectGenerator narrows the run to a single domain when --generator is
// set.
func selectGenerator(named []generator.Named, domain string) ([]generator.Named, error) {
	if domain == "" {
		return named, nil
	}
	for _, n := range named {
		if n.Domain == domain {
			return []generator.Named{n}, nil
		}
	}
	return nil, fmt.Errorf("generator %q not found", domain)
}

// applyFilter drops fixtures not matching the --filter expression.
func applyFilter(named []generator.Named, expression string) error {
	if expression == "" {
		return nil
	}
	f, err := fixture.CompileFilter(expression)
	if err != nil {
		return err
	}
	for _, n := range named {
		if err := n.Generator.Filter(f); err != nil {
			return err
		}
	}
	return nil
}

// availableRow is one line of the --list-available table.
type availableRow struct {
	Generator   string `json:"generator"`
	Fixture     string `json:"fixture"`
	Description string `json:"description"`
}

func availableRows(named []generator.Named) []availableRow {
	var rows []availableRow
	for _, n := range named {
		for _, a := range n.Generator.ListAvailable() {
			rows = append(rows, availableRow{
				Generator:   n.Domain,
				Fixture:     a.Name,
				Description: a.Description,
			})
		}
	}
	return rows
}

// printAvailable renders the generator/fixture/description listing.
func printAvailable(named []generator.Named) error {
	rows := availableRows(named)
	return printResult(rows, func() {
		fmt.Println(output.Bold("Available Generators and Fixtures:"))
		w := output.Table()
		fmt.Fprintln(w, "GENERATOR\tFIXTURE\tDESCRIPTION")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", row.Generator, row.Fixture, row.Description)
		}
		_ = w.Flush()
	})
}
