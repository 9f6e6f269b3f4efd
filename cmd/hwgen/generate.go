// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/db47h/hwgen"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [design...]",
		Short: "Write the Verilog code of designs to the output directory",
		Long: `Write the Verilog code of the named designs, or all designs, to
<output directory>/<design>.v. Designs are processed in parallel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := selectDesigns(args)
			if err != nil {
				return err
			}
			return a.generate(cmd, ds)
		},
	}
}

type result struct {
	path string
	err  error
}

func (a *app) generate(cmd *cobra.Command, ds []design) error {
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]result, len(ds))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(ds)))
	for i, d := range ds {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.generateOne(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", failColor.Sprint("FAIL"), ds[i].name, r.err)
			continue
		}
		fmt.Fprintf(out, "%s %s -> %s\n", okColor.Sprint("ok"), ds[i].name, r.path)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d designs failed", failed, len(ds))
	}
	return nil
}

func (a *app) generateOne(d design) result {
	gen := hwgen.Generate
	if a.cfg.Unchecked {
		gen = hwgen.GenerateUnchecked
	}
	text, err := gen(instantiate(d), a.options(d)...)
	if err != nil {
		return result{err: err}
	}
	path := filepath.Join(a.cfg.OutputDir, d.name+".v")
	if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
		return result{err: errors.Wrap(err, "write output")}
	}
	a.logger.Info("design generated", "design", d.name, "path", path, "bytes", len(text))
	return result{path: path}
}
