// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlump/config"
)

const defaultEnvFile = ".env"

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "lvlump",
		Short: "Exact constrained lumping of polynomial ODE systems",
		Long: `lvlump finds the smallest linear change of variables y = Lx that keeps the
given linear combinations of the states and turns the model into a
self-contained system over y.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", defaultEnvFile, "dotenv file with LVLUMP_* overrides (skipped when the default is missing)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(newReduceCmd(a), newInspectCmd(a), newVersionCmd())

	return cmd
}

// setup loads the configuration and builds the logger. Explicit flags win
// over every configuration source.
func (a *app) setup(cmd *cobra.Command) error {
	envFile := a.envFile
	if envFile == defaultEnvFile && !cmd.Flags().Changed("env-file") {
		if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
			envFile = ""
		}
	}
	cfg, err := config.Load(a.configPath, envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}
