// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/config"
	"github.com/katalvlaran/armaexpected/expected"
	"github.com/katalvlaran/armaexpected/expected/drivers"
	"github.com/katalvlaran/armaexpected/sink"
)

type runFlags struct {
	output      string
	path        string
	armaHeader  bool
	jobs        int
	metricsFile string
	dryRun      bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [driver...]",
		Short: "Run drivers and persist their expected results",
		Long: `Runs the named drivers, or the configured ones, or every driver.
Drivers are independent and may run in parallel (--jobs); each persists
under its own probe names, so the output does not depend on scheduling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = cfg.Drivers
			}

			return run(cmd.Context(), cfg, names, a.logger, cmd)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output kind: files, badger or memory")
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "output directory or database path")
	cmd.Flags().BoolVar(&f.armaHeader, "arma-header", false, "write the Armadillo text header in result files")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "drivers run in parallel")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "evaluate every probe but keep results in memory")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Kind = f.output
	}
	if flags.Changed("path") {
		cfg.Output.Path = f.path
	}
	if flags.Changed("arma-header") {
		cfg.Output.ArmaHeader = f.armaHeader
	}
	if flags.Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if f.dryRun {
		cfg.Output.Kind = config.OutputMemory
	}
}

// openSink builds the configured sink.
func openSink(cfg config.Config, logger *zap.Logger) (sink.Sink, error) {
	switch cfg.Output.Kind {
	case config.OutputMemory:
		return sink.NewMemory(), nil
	case config.OutputBadger:
		return sink.OpenBadger(sink.BadgerConfig{
			Path:       cfg.Output.Path,
			SyncWrites: cfg.Output.SyncWrites,
			Logger:     logger,
		})
	default:
		var opts []sink.FilesOption
		if cfg.Output.ArmaHeader {
			opts = append(opts, sink.WithArmaHeader())
		}

		return sink.NewFiles(cfg.Output.Path, opts...)
	}
}

// selectDrivers resolves names, or returns every driver when names is empty.
func selectDrivers(names []string) ([]expected.Runner, error) {
	if len(names) == 0 {
		return drivers.All(), nil
	}
	out := make([]expected.Runner, 0, len(names))
	for _, n := range names {
		d, err := drivers.Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

func run(ctx context.Context, cfg config.Config, names []string, logger *zap.Logger, cmd *cobra.Command) (err error) {
	runners, err := selectDrivers(names)
	if err != nil {
		return err
	}
	out, err := openSink(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	reg := prometheus.NewRegistry()
	env := expected.Env{
		Sink:    out,
		Catalog: catalog.New(cfg.CatalogOptions()...),
		Logger:  logger,
		Metrics: expected.NewMetrics(reg),
	}

	var (
		mu    sync.Mutex
		total expected.Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, r := range runners {
		r := r
		g.Go(func() error {
			stats, err := r.Run(gctx, env)
			if err != nil {
				return err
			}
			mu.Lock()
			total = total.Add(stats)
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("run finished",
		zap.Int("drivers", len(runners)),
		zap.Int("cases", total.Cases),
		zap.Int("evaluated", total.Evaluated),
		zap.Int("skipped", total.Skipped))
	fmt.Fprintf(cmd.OutOrStdout(), "%d drivers, %d cases, %d results, %d skipped\n",
		len(runners), total.Cases, total.Evaluated, total.Skipped)

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
