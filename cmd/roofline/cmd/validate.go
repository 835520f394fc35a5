package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estimatics/roofline/cmd/roofline/app"
	"github.com/estimatics/roofline/internal/conformance"
)

// newValidateCmd builds the validate command.
func newValidateCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the shipped vocabulary and rule registry",
		Long: `Validate checks the canonical descriptions, measurement keys, and rule
identifiers compiled into this build against the business master lists.
It exits non-zero if any check fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := conformance.Validate()

			for _, failure := range report.Failures() {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %-16s %s: %s\n", failure.Kind, failure.Name, failure.Message)
			}
			if !a.Config.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%d checks: %d passed, %d failed\n",
					len(report.Checks), report.Passed, report.Failed)
			}

			if !report.OK() {
				return fmt.Errorf("%d conformance checks failed", report.Failed)
			}
			return nil
		},
	}

	return cmd
}
