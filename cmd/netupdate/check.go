package main

import (
	"fmt"

	"netupdate/internal/console"
	"netupdate/internal/domain"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <ip>...",
		Short: "Validate IP address literals the way the update prompt does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := make([]error, len(args))
			invalid := 0
			for i, raw := range args {
				errs[i] = domain.ValidateIPLiteral(raw)
				if errs[i] != nil {
					invalid++
				}
			}

			if err := console.NewReporter(cmd.OutOrStdout()).Check(args, errs); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d addresses invalid", invalid, len(args))
			}
			return nil
		},
	}
}
