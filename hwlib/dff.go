// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// DFF is a clocked n bits data flip flop.
//
//	Inputs: clock, d[n]
//	Outputs: q[n]
//	Function: q(t) = d(t-1) // where t is the current clock cycle.
//
type DFF struct {
	Clock *hwgen.Signal
	D     *hwgen.Signal
	Q     *hwgen.Signal

	clk bool // clock state at the last update
}

// NewDFF returns an n bits DFF.
//
func NewDFF(bits int) *DFF {
	return &DFF{
		Clock: hwgen.In(1),
		D:     hwgen.In(bits),
		Q:     hwgen.Out(bits),
	}
}

func (d *DFF) Connect()                          { d.Q.Connect() }
func (d *DFF) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, d, p) }

// Update latches d on the raising edge of clock.
//
func (d *DFF) Update() {
	clk := d.Clock.High()
	if clk && !d.clk {
		d.Q.SetNext(d.D.Val())
	}
	d.clk = clk
}

func (d *DFF) HDL() hwgen.Verilog {
	return hwgen.CustomText("always @(posedge clock) q <= d;")
}
