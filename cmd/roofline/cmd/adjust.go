package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/estimatics/roofline/cmd/roofline/app"
	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/constants"
	"github.com/estimatics/roofline/pkg/errors"
)

// newAdjustCmd builds the adjust command.
func newAdjustCmd(a *app.App) *cobra.Command {
	var (
		itemsPath string
		roofPath  string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Adjust claim line items against roof measurements",
		Long: `Adjust runs the full reconciliation pipeline: catalog price and unit
pinning, shingle quantity floors, bundle rounding, steep-slope surcharge
pinning, and accessory, felt, and cricket completion.

The result is written as JSON with the adjusted line items, an audit log
of every change, notifications for conditions that need human review, and
a summary derived from the audit log.`,
		Example: `  roofline adjust --line-items claim.json --roof-data roof.json
  roofline adjust --line-items claim.json --roof-data roof.json --out adjusted.json
  roofline adjust --catalog prices.csv --waste 0.10 --line-items claim.json --roof-data roof.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(a)
			if err != nil {
				return err
			}

			items, itemErrs, err := decodeItemsFile(itemsPath)
			if err != nil {
				return err
			}
			for _, itemErr := range itemErrs {
				a.Logger().Warn().Err(itemErr).Msg("Skipping malformed line item")
			}

			measurements, err := decodeMeasurementsFile(roofPath)
			if err != nil {
				return err
			}

			result, err := client.Adjust(cmd.Context(), items, measurements)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return errors.WrapIO("marshal", outPath, err)
			}
			out = append(out, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(outPath, out, constants.FilePermissions); err != nil {
				return errors.WrapIO("write", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d adjustments, %d additions, %d notifications)\n",
				outPath, result.Summary.TotalAdjustments, result.Summary.TotalAdditions, len(result.Notifications))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemsPath, "line-items", "", "claim line items JSON file (required)")
	cmd.Flags().StringVar(&roofPath, "roof-data", "", "roof measurement report JSON file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("line-items")
	_ = cmd.MarkFlagRequired("roof-data")

	return cmd
}

// decodeItemsFile reads and decodes a claim line items file.
func decodeItemsFile(path string) ([]claims.LineItem, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	return claims.DecodeLineItems(f)
}

// decodeMeasurementsFile reads and decodes a roof measurement report file.
func decodeMeasurementsFile(path string) (claims.Measurements, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	return claims.DecodeMeasurements(f)
}
