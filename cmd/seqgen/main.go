// Command seqgen fills a fixed-capacity buffer with 0..n-1 and prints it,
// one value per line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacoelho/seqbuf"
	"github.com/jacoelho/seqbuf/internal/config"
	"github.com/jacoelho/seqbuf/internal/logging"
)

type loggerFactory func(cfg config.LoggingConfig, verbose bool, sink zapcore.WriteSyncer) (*zap.Logger, error)

type options struct {
	configPath string
	count      int
	capacity   int
	all        bool
	verbose    bool
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "seqgen",
		Short: "Print the sequence 0..n-1 from a fixed-capacity buffer",
		Long: `seqgen fills a buffer of fixed capacity with the integers 0..n-1 and
prints them, one per line. A count larger than the capacity is rejected.

Settings are read from a YAML file (default seqgen.yaml), then from
SEQGEN_* environment variables, then from flags.

Example:
  seqgen                  # 0..9
  seqgen -n 3 --all       # 0 1 2 followed by the remaining zeroed slots`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				cfg.Count = opts.count
			}
			if cmd.Flags().Changed("capacity") {
				cfg.Capacity = opts.capacity
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.Logging, opts.verbose, zapcore.AddSync(cmd.ErrOrStderr()))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("configuration resolved",
				zap.String("config", opts.configPath),
				zap.Int("count", cfg.Count),
				zap.Int("capacity", cfg.Capacity),
				zap.Bool("all", opts.all))

			return run(cmd, logger, cfg, opts.all)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "path to YAML config file")
	flags.IntVarP(&opts.count, "count", "n", seqbuf.DefaultCapacity, "number of values to generate (config count or "+config.EnvCount+" when unset)")
	flags.IntVarP(&opts.capacity, "capacity", "c", seqbuf.DefaultCapacity, "buffer capacity (config capacity or "+config.EnvCapacity+" when unset)")
	flags.BoolVarP(&opts.all, "all", "a", false, "print every slot, not just the generated ones")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, logger *zap.Logger, cfg *config.Config, all bool) error {
	buf := seqbuf.New(cfg.Capacity)
	if err := buf.Fill(cfg.Count); err != nil {
		logger.Error("fill failed", zap.Int("count", cfg.Count), zap.Int("capacity", buf.Cap()), zap.Error(err))
		return err
	}
	logger.Debug("filled buffer", zap.Int("count", buf.Len()), zap.Int("capacity", buf.Cap()))

	out := cmd.OutOrStdout()
	var err error
	if all {
		_, err = seqbuf.WriteLines(out, buf.Slots())
	} else {
		_, err = buf.WriteTo(out)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd(logging.New).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqgen:", err)
		os.Exit(1)
	}
}
