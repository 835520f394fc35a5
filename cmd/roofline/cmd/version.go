package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/estimatics/roofline/cmd/roofline/app"
)

// newVersionCmd builds the version command.
func newVersionCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the roofline CLI.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roofline version %s\n", a.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", a.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", a.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
