// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"github.com/charmbracelet/log"
	"github.com/db47h/hwgen"
	"github.com/db47h/hwgen/internal/config"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "hwgen",
		Level:  cfg.Level(),
	})
	a.logger.Debug("configuration loaded", "out", cfg.OutputDir, "top", cfg.Top, "jobs", cfg.Jobs)
	return nil
}

// options returns the generation options for design d.
func (a *app) options(d design) []hwgen.Option {
	return []hwgen.Option{
		hwgen.WithTopName(a.cfg.Top),
		hwgen.WithLogger(a.logger.With("design", d.name)),
	}
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "hwgen",
		Short:         "Generate Verilog code from Go circuit designs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./hwgen.toml)")
	pf.StringP("out", "o", config.Default().OutputDir, "output directory")
	pf.String("top", hwgen.DefaultTopName, "name of the root module")
	pf.Bool("unchecked", false, "skip the circuit consistency check")
	pf.IntP("jobs", "j", 0, "number of designs processed in parallel (default GOMAXPROCS)")
	pf.String("log-level", config.Default().LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newGenerateCmd(a), newCheckCmd(a), newListCmd())
	return root
}
