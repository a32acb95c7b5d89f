package main

import (
	"netupdate/internal/console"
	"netupdate/internal/loader"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporter := console.NewReporter(cmd.OutOrStdout())
			inv, results := loader.New(a.logger).LoadInventory(cmd.Context(), a.cfg.Inventory.Routers, a.cfg.Inventory.Switches)
			reporter.Sources(results)
			return reporter.Inventory(inv)
		},
	}
}
