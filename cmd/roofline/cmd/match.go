package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estimatics/roofline/cmd/roofline/app"
)

// newMatchCmd builds the match command.
func newMatchCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <description>",
		Short: "Match a line item description against the catalog",
		Long: `Match looks up a description in the reference price catalog. An exact
match (after normalization) returns that entry with score 1.00; otherwise
fuzzy suggestions at or above the similarity threshold are listed best
first.`,
		Example: `  roofline match "Valley metal"
  roofline match "Drip edge" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(a)
			if err != nil {
				return err
			}

			description := strings.Join(args, " ")
			matches := client.Match(description)

			if a.Config.Output == "json" {
				type row struct {
					Description string  `json:"description"`
					Unit        string  `json:"unit"`
					UnitPrice   float64 `json:"unit_price"`
					Score       float64 `json:"score"`
				}
				rows := make([]row, len(matches))
				for i, m := range matches {
					rows[i] = row{
						Description: m.Entry.Description,
						Unit:        string(m.Entry.Unit),
						UnitPrice:   m.Entry.UnitPrice,
						Score:       m.Score,
					}
				}
				out, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No catalog matches for %q\n", description)
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%.2f  %-55s %-3s $%.2f\n",
					m.Score, m.Entry.Description, m.Entry.Unit, m.Entry.UnitPrice)
			}
			return nil
		},
	}

	return cmd
}
