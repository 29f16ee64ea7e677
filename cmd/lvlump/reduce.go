// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlump/lumping"
	"github.com/katalvlaran/lvlump/metrics"
	"github.com/katalvlaran/lvlump/model"
)

type reduceFlags struct {
	format      string
	workers     int
	maxPasses   int
	metricsFile string
	constraints []string
	strict      bool
	prefix      string
}

func newReduceCmd(a *app) *cobra.Command {
	var f reduceFlags
	cmd := &cobra.Command{
		Use:   "reduce <model>",
		Short: "Lump a model and print the reduced system",
		Long: `Reads a YAML or JSON model, computes the minimal lumping that contains the
constraints and prints the lumping matrix with the reduced equations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(cmd, a, &f, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "o", "", "output format: text, yaml or json")
	flags.IntVar(&f.workers, "workers", 0, "concurrent membership tests per pass")
	flags.IntVar(&f.maxPasses, "max-passes", 0, "fail when no fixed point is reached within n passes")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	flags.StringArrayVarP(&f.constraints, "constraint", "c", nil, `constraint replacing the model ones, e.g. "{S0}" (repeatable)`)
	flags.BoolVar(&f.strict, "strict", false, "reject linearly dependent constraints")
	flags.StringVar(&f.prefix, "prefix", lumping.DefaultVariablePrefix, "name prefix of the lumped variables")

	return cmd
}

func runReduce(cmd *cobra.Command, a *app, f *reduceFlags, path string) error {
	cfg := a.cfg
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("max-passes") {
		cfg.MaxPasses = f.maxPasses
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = f.format
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Output.MetricsFile = f.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := model.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err = lumping.ValidatePrefix(f.prefix); err != nil {
		return fmt.Errorf("--prefix: %w", err)
	}

	modelOpts := []model.Option{model.WithLogger(a.logger), model.WithConstraints(f.constraints...)}
	if f.strict {
		modelOpts = append(modelOpts, model.WithStrictConstraints())
	}
	m, err := model.Load(path, modelOpts...)
	if err != nil {
		return err
	}
	name := m.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	collector := metrics.NewCollector()
	opts := []lumping.Option{
		lumping.WithLogger(a.logger.With("model", name)),
		lumping.WithObserver(collector),
		lumping.WithWorkers(cfg.Workers),
		lumping.WithVariablePrefix(f.prefix),
	}
	if cfg.MaxPasses > 0 {
		opts = append(opts, lumping.WithMaxPasses(cfg.MaxPasses))
	}

	red, err := lumping.LumpAndReduce(cmd.Context(), m.System, m.Constraints, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = model.Encode(cmd.OutOrStdout(), name, red, format); err != nil {
		return err
	}
	if cfg.Output.MetricsFile != "" {
		if err = metrics.WriteTextfile(cfg.Output.MetricsFile, collector); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		a.logger.Debug("metrics written", "path", cfg.Output.MetricsFile)
	}

	return nil
}
