package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedctl/seedctl/pkg/cli/internal/output"
	"github.com/seedctl/seedctl/pkg/fixture"
	"github.com/seedctl/seedctl/pkg/generator"
)

// generatorInfo is one row of the generators listing.
type generatorInfo struct {
	Domain   string   `json:"domain"`
	Fixtures int      `json:"fixtures"`
	DataSets []string `json:"data_sets,omitempty"`
	Source   string   `json:"source"`
}

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List generator domains and where their data comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		named, err := collectGenerators(false, true)
		if err != nil {
			return err
		}

		registered := make(map[string]bool)
		for _, domain := range generator.Domains() {
			registered[domain] = true
		}

		infos := make([]generatorInfo, 0, len(named))
		for _, n := range named {
			source := "fixture files"
			if registered[n.Domain] {
				source = "registry"
			}
			infos = append(infos, generatorInfo{
				Domain:   n.Domain,
				Fixtures: n.Generator.Len(),
				DataSets: fixture.SetNamesFor(n.Domain),
				Source:   source,
			})
		}

		return printResult(infos, func() {
			w := output.Table()
			fmt.Fprintln(w, "DOMAIN\tFIXTURES\tSOURCE\tDATA SETS")
			for _, info := range infos {
				sets := strings.Join(info.DataSets, ", ")
				if sets == "" {
					sets = "-"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", info.Domain, info.Fixtures, info.Source, sets)
			}
			_ = w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(generatorsCmd)
}
