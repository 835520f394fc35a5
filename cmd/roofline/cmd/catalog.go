package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/estimatics/roofline/cmd/roofline/app"
	"github.com/estimatics/roofline/pkg/catalog"
)

// newCatalogCmd builds the catalog command.
func newCatalogCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the reference price catalog",
		Long: `Catalog loads the reference price catalog and prints its entries in
load order. Use -o json or -o yaml for machine-readable output.`,
		Example: `  roofline catalog --catalog prices.csv
  roofline catalog -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(a)
			if err != nil {
				return err
			}
			entries := client.Catalog().Entries()

			switch a.Config.Output {
			case "json":
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case "yaml":
				out, err := yaml.Marshal(wrappedEntries{Entries: entries})
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%-55s %-3s $%.2f\n", e.Description, e.Unit, e.UnitPrice)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries\n", len(entries))
			}
			return nil
		},
	}

	return cmd
}

// wrappedEntries mirrors the YAML catalog file layout so output round-trips
// through the loader.
type wrappedEntries struct {
	Entries []catalog.Entry `yaml:"entries"`
}
