// Package cmd implements the roofline command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/estimatics/roofline/cmd/roofline/app"
)

// New builds the root command with all subcommands attached.
func New(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roofline",
		Short: "Roofing claim estimate reconciliation",
		Long: `Roofline reconciles roofing insurance-claim line items against a
measured roof geometry report and a reference price catalog.

It pins quantities and unit prices to the measured roof, rounds shingle
bundles to purchasable increments, adds missing accessory and felt items,
and emits a full audit log of every change it makes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(a, cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.roofline.yaml)")
	flags.String("catalog", "", "reference price catalog file (CSV or YAML)")
	flags.Float64("waste", 0, "shingle installation waste factor (0.10 for 10%)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.BoolP("quiet", "q", false, "suppress non-error output")
	flags.Bool("no-color", false, "disable color output")
	flags.StringP("output", "o", "", "output format (text, json, yaml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")

	// Bind flags to viper so config files and env vars share the keys
	for _, name := range []string{"config", "catalog", "verbose", "quiet", "no-color", "output"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", name, err))
		}
	}
	if err := viper.BindPFlag("waste_percent", flags.Lookup("waste")); err != nil {
		panic(fmt.Sprintf("Failed to bind waste flag: %v", err))
	}

	root.AddCommand(
		newAdjustCmd(a),
		newMatchCmd(a),
		newValidateCmd(a),
		newCatalogCmd(a),
		newVersionCmd(a),
	)

	return root
}

// setup applies parsed flag values to the configuration and reinstalls the
// logger so flags take precedence over env vars and config files.
func setup(a *app.App, cmd *cobra.Command) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	noColor, _ := flags.GetBool("no-color")
	output, _ := flags.GetString("output")
	a.Config.UpdateFromFlags(verbose, quiet, noColor, output)

	if level, _ := flags.GetString("log-level"); level != "" {
		a.Config.LogLevel = level
	}
	if path, _ := flags.GetString("catalog"); path != "" {
		a.Config.CatalogPath = path
	}
	if flags.Changed("waste") {
		waste, _ := flags.GetFloat64("waste")
		a.Config.WastePercent = waste
	}

	a.ConfigureLogger()
	return nil
}
