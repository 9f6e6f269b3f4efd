// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwgen generates the Verilog code of the designs in hwlib.
//
// Usage:
//
//	hwgen list
//	hwgen check [design...]
//	hwgen generate [-o dir] [--top name] [design...]
//
// Settings can also be given in a hwgen.toml file or HWGEN_* environment
// variables, see package internal/config.
//
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
