package main

import (
	"fmt"

	"netupdate/internal/codec"
	"netupdate/internal/console"
	"netupdate/internal/loader"
	"netupdate/internal/output"
	"netupdate/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sinkLabels = map[string]string{
	output.SinkUpdated: "Updated equipment",
	output.SinkInvalid: "List of invalid addresses",
}

// runSession is the default command: show, update, summarise, write
func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	reporter := console.NewReporter(out)

	exporter, err := codec.ForFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	inv, results := loader.New(a.logger).LoadInventory(ctx, a.cfg.Inventory.Routers, a.cfg.Inventory.Switches)
	reporter.Sources(results)
	if err := reporter.Inventory(inv); err != nil {
		return err
	}

	before := inv.Clone()
	s := session.New(inv, console.New(cmd.InOrStdin(), out), session.Options{
		MaxIPAttempts: a.cfg.Session.MaxIPAttempts,
		EOFQuits:      a.cfg.Session.EOFQuits,
	})
	s.Events().Subscribe(session.LogEvents(a.logger))

	report, err := s.Run(ctx)
	if err != nil {
		a.logger.Error("session aborted; outputs not written",
			zap.String("session", s.ID()),
			zap.String("state", s.State().String()),
			zap.Error(err))
		return fmt.Errorf("session aborted, no output written: %w", err)
	}

	reporter.Summary(report)
	if err := reporter.Changes(before, report); err != nil {
		return err
	}

	w := output.New(exporter, a.cfg.Output.Updated, a.cfg.Output.Errors, a.logger)
	for _, r := range w.WriteAll(report) {
		reporter.Written(sinkLabels[r.Sink], r.Path, r.Err)
	}
	return nil
}
