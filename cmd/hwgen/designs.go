// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
	"github.com/pkg/errors"
)

type design struct {
	name  string
	short string
	build func() hwgen.Block
}

var designs = []design{
	{"adder", "8 bits adder", func() hwgen.Block { return hwlib.NewAdder(8) }},
	{"counter", "8 bits counter", func() hwgen.Block { return hwlib.NewCounter(8) }},
	{"blinky", "led blinker with a vendor PLL and differential clock input", func() hwgen.Block { return hwlib.NewBlinky(24) }},
	{"fanout", "two stream port sets with increment stages", func() hwgen.Block { return hwlib.NewFanout(2, 8) }},
}

// selectDesigns returns the designs matching names, or all designs if names
// is empty.
//
func selectDesigns(names []string) ([]design, error) {
	if len(names) == 0 {
		return designs, nil
	}
	ds := make([]design, 0, len(names))
	for _, n := range names {
		i := 0
		for i < len(designs) && designs[i].name != n {
			i++
		}
		if i == len(designs) {
			return nil, errors.Errorf("unknown design %q", n)
		}
		ds = append(ds, designs[i])
	}
	return ds, nil
}

// instantiate builds a design and connects it like a test bench would.
//
func instantiate(d design) hwgen.Block {
	b := d.build()
	hwgen.ConnectAll(b)
	hwgen.ConnectInputs(b)
	return b
}
