// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/hwgen"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [design...]",
		Short: "Check designs for undriven signals and conflicting drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := selectDesigns(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, d := range ds {
				err := hwgen.Check(instantiate(d), a.options(d)...)
				var ce *hwgen.CheckError
				switch {
				case err == nil:
					fmt.Fprintf(out, "%s %s\n", okColor.Sprint("ok"), d.name)
				case errors.As(err, &ce):
					failed++
					fmt.Fprintf(out, "%s %s\n", failColor.Sprint("FAIL"), d.name)
					for _, is := range ce.Issues {
						fmt.Fprintf(out, "\t%s\n", is)
					}
				default:
					return err
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d designs failed the check", failed, len(ds))
			}
			return nil
		},
	}
}
