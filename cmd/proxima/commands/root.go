package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/proxima/connectivity"
	"github.com/katalvlaran/proxima/point"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	configPath string
	cfg        Config
	logger     *zap.Logger
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh proxima command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:   "proxima",
		Short: "Proximity clustering over 3-D integer points",
		Long: `proxima - greedy shortest-edge-first clustering of 3-D points.

Input is one "x,y,z" triple per line, read from the file argument
or from stdin when the argument is missing or "-".

Examples:
  # Product of the three largest clusters after 1000 closest pairs
  proxima budget --edges 1000 input.txt

  # X-product of the pair that first connects everything
  proxima complete < input.txt

  # Settings from a YAML file, overridden by flags
  proxima budget --config proxima.yaml --workers 8 input.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "goroutines for the pairwise distance stage")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (console, json)")

	root.AddCommand(newBudgetCommand(a), newCompleteCommand(a), newMSTCommand(a))

	return root
}

// setup merges the config file under the flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		fileCfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = mergeFlags(cmd, fileCfg, a.cfg)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	return nil
}

// mergeFlags returns file with every explicitly set flag taken from flags.
func mergeFlags(cmd *cobra.Command, file, flags Config) Config {
	set := cmd.Flags().Changed
	if set("edges") {
		file.Edges = flags.Edges
	}
	if set("top-k") {
		file.TopK = flags.TopK
	}
	if set("workers") {
		file.Workers = flags.Workers
	}
	if set("log-level") {
		file.LogLevel = flags.LogLevel
	}
	if set("log-format") {
		file.LogFormat = flags.LogFormat
	}

	return file
}

// engine returns a connectivity engine configured from a.
func (a *app) engine(opts ...connectivity.Option) *connectivity.Engine {
	base := []connectivity.Option{
		connectivity.WithLogger(a.logger),
		connectivity.WithWorkers(a.cfg.Workers),
		connectivity.WithTopK(a.cfg.TopK),
	}

	return connectivity.New(append(base, opts...)...)
}

// loadPoints reads the point set from args[0], or stdin for none or "-".
func (a *app) loadPoints(cmd *cobra.Command, args []string) (*point.Set, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	set, err := point.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Info("points loaded", zap.String("source", name), zap.Int("points", set.Len()))

	return set, nil
}
