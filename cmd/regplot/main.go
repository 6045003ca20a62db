// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command regplot renders scatter plots with a fitted regression line
// and its confidence band, and date axis plots, from synthetic data.
package main

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cogentcore.org/regplot/base/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the persistent flags of the root command.
type flags struct {
	config  string
	out     string
	verbose bool
	watch   bool
}

// newRootCmd returns the root command with its subcommands,
// sharing one Config.
func newRootCmd() *cobra.Command {
	cfg := &Config{}
	fl := &flags{}

	// load resets cfg to the defaults, then applies the config file
	// and the flags in turn.
	load := func(cmd *cobra.Command) error {
		*cfg = Config{}
		cfg.Defaults()
		if fl.config != "" {
			if err := OpenConfig(cfg, fl.config); err != nil {
				return err
			}
			slog.Debug("loaded config", "file", fl.config)
		}
		if cmd.Flags().Changed("out") {
			cfg.Out = fl.out
		}
		return nil
	}

	// run renders once, then again on every config change with --watch.
	run := func(cmd *cobra.Command, render func(c *Config) error) error {
		if err := render(cfg); err != nil {
			return err
		}
		if !fl.watch {
			return nil
		}
		if fl.config == "" {
			return errors.New("--watch needs a --config file")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, fl.config, func() error {
			if err := load(cmd); err != nil {
				return err
			}
			return render(cfg)
		})
	}

	root := &cobra.Command{
		Use:          "regplot",
		Short:        "Render regression and date axis plots",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if fl.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return load(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "config file (.toml or .yaml)")
	pf.StringVarP(&fl.out, "out", "o", "", "output image file (png, svg, pdf, ...)")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&fl.watch, "watch", "w", false, "render again whenever the config file changes")

	root.AddCommand(&cobra.Command{
		Use:   "scatter",
		Short: "Scatter plot with a fitted line and its confidence band",
		Long: `Scatter plots 2x plus normal noise at evenly spaced x in [1, 10],
fits a line (optionally through the origin), and draws it with its
confidence band and an annotation of the equation and R².`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, Scatter)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "dates",
		Short: "Two daily series on a date axis with monthly ticks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, Dates)
		},
	})
	return root
}
