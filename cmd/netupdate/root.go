package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"netupdate/internal/config"
	"netupdate/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envFiles are loaded into the environment before the config is resolved
var envFiles = []string{".env"}

// app carries what every subcommand needs once the config is resolved
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger
}

// exitInterrupted is the shell convention for termination by SIGINT
const exitInterrupted = 130

// Execute runs the command line and returns the process exit code
func Execute(args []string) int {
	root, a := newRootCmd()
	root.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	a.sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "netupdate:", err)
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}
		return 1
	}
	return 0
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "netupdate",
		Short: "Update router and switch IP addresses interactively",
		Long: `netupdate loads the router and switch inventory, prompts for a device and
its new IP address until you enter x, then writes the updated devices and
every rejected address to the output files.

Sources are JSON or YAML files, or sqlite:<path> for an inventory database.
A source that cannot be read is replaced by the built-in defaults.

Examples:
  netupdate
  netupdate --routers equip_r.txt --switches equip_s.txt
  netupdate --routers sqlite:inventory.db --switches sqlite:inventory.db --format yaml
  netupdate check 10.0.0.1 999.1.1.1`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runSession,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path (default: search netupdate.yaml locations)")
	flags.String("routers", "", "router source: JSON/YAML file or sqlite:<path>")
	flags.String("switches", "", "switch source: JSON/YAML file or sqlite:<path>")
	flags.String("updated", "", "output file for updated devices")
	flags.String("errors", "", "output file for rejected addresses")
	flags.String("format", "", "output format (json, yaml)")
	flags.Int("max-ip-attempts", 0, "abandon a device after this many invalid addresses (0 = unlimited)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	bind := map[string]string{
		"config":                  "config",
		"inventory.routers":       "routers",
		"inventory.switches":      "switches",
		"output.updated":          "updated",
		"output.errors":           "errors",
		"output.format":           "format",
		"session.max_ip_attempts": "max-ip-attempts",
		"logging.level":           "log-level",
	}
	for key, name := range bind {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(newShowCmd(a), newCheckCmd(a), newConfigCmd(a))
	return root, a
}

// setup resolves the config and builds the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return err
	}

	cfg, path, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.cfgPath = path
	a.logger = logger.With(zap.String("command", cmd.Name()))
	if path != "" {
		a.logger.Debug("config loaded", zap.String("path", path))
	}
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		// syncing a terminal stderr fails with EINVAL on linux
		_ = a.logger.Sync()
	}
}
