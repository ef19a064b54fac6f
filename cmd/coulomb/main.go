package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lao-tseu-is-alive/go-coulomb-simulation/internal/gui"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/internal/report"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-coulomb-simulation/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile string
	logLevel   string
	steps      int
	dropAt     []float64

	logger golog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every command and resets the flag variables to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "coulomb",
		Short:        "drag a charge through an electrostatic field",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger()
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		// Default to the window when no command given
		RunE: runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene file path (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the simulation window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "step a scene without a window and print a report",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&steps, "steps", 300, "number of frames to simulate")
	simulateCmd.Flags().Float64SliceVar(&dropAt, "drop", nil, "drag the first movable charge to x,y before stepping")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a scene file against the schema",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	rootCmd.AddCommand(runCmd, simulateCmd, validateCmd)
	return rootCmd
}

func loadConfig() (*simulation.Config, error) {
	if configFile == "" {
		return simulation.DefaultConfig(), nil
	}
	return simulation.LoadConfig(configFile)
}

func newLogger() (golog.Logger, error) {
	var level golog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = golog.DebugLevel
	case "info":
		level = golog.InfoLevel
	case "warn", "warning":
		level = golog.WarningLevel
	case "error":
		level = golog.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", logLevel)
	}
	return golog.New(level, os.Stdout), nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("CoulombWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	logger.Infof("scene: %d charges, world %gx%g", len(cfg.Charges), cfg.WorldWidth, cfg.WorldHeight)
	return gui.Run(ctx, cfg, system)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := report.Options{Steps: steps}
	if len(dropAt) > 0 {
		p, err := dropPoint(dropAt)
		if err != nil {
			return err
		}
		opts.Drop = &p
	}

	logger.Debugf("simulating %d steps of %d charges", steps, len(cfg.Charges))
	tr, err := report.Simulate(cfg, opts)
	if err != nil {
		return err
	}
	return tr.Write(cmd.OutOrStdout())
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := configFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no scene file given, use --config or an argument")
	}
	cfg, err := simulation.LoadConfig(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d charges in %gx%g\n", path, len(cfg.Charges), cfg.WorldWidth, cfg.WorldHeight)
	return nil
}

// dropPoint turns the --drop values into a point.
func dropPoint(v []float64) (geometry.Vector2D, error) {
	if len(v) != 2 {
		return geometry.Vector2D{}, fmt.Errorf("--drop takes x,y, got %d values", len(v))
	}
	return geometry.NewVector(v[0], v[1]), nil
}
