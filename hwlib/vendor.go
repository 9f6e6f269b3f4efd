// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// PLLName is the module type name of the vendor PLL core.
//
const PLLName = "vendor_pll"

const pllVerilog = `(* blackbox *)
module vendor_pll(clock_in, clock_out, locked);
    input clock_in;
    output clock_out;
    output locked;
endmodule`

// PLL is a vendor supplied clock generator, instantiated as a black box.
//
//	Inputs: clock_in
//	Outputs: clock_out, locked
//	Function: clock_out = clock_in // in simulation
//	          locked = 1
//
type PLL struct {
	ClockIn  *hwgen.Signal `hw:"clock_in"`
	ClockOut *hwgen.Signal `hw:"clock_out"`
	Locked   *hwgen.Signal `hw:"locked"`
}

// NewPLL returns a new PLL.
//
func NewPLL() *PLL {
	return &PLL{ClockIn: hwgen.In(1), ClockOut: hwgen.Out(1), Locked: hwgen.Out(1)}
}

func (p *PLL) Accept(name string, pr hwgen.Probe) { hwgen.AcceptModule(name, p, pr) }
func (p *PLL) HDL() hwgen.Verilog                 { return hwgen.Blackbox{Name: PLLName, Code: pllVerilog} }

func (p *PLL) Connect() {
	p.ClockOut.Connect()
	p.Locked.Connect()
}

func (p *PLL) Update() {
	p.ClockOut.SetNext(p.ClockIn.Val())
	p.Locked.SetNext(1)
}

const ibufdsVerilog = `(* blackbox *)
module IBUFDS(I, IB, O);
    input I;
    input IB;
    output O;
endmodule`

// DiffInput is a differential input buffer wrapping a vendor IBUFDS
// primitive.
//
//	Inputs: p, n
//	Outputs: out
//	Function: out = p && !n
//
type DiffInput struct {
	P   *hwgen.Signal
	N   *hwgen.Signal
	Out *hwgen.Signal
}

// NewDiffInput returns a new differential input buffer.
//
func NewDiffInput() *DiffInput {
	return &DiffInput{P: hwgen.In(1), N: hwgen.In(1), Out: hwgen.Out(1)}
}

func (d *DiffInput) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, d, p) }
func (d *DiffInput) Connect()                          { d.Out.Connect() }
func (d *DiffInput) Update()                           { d.Out.SetNextBool(d.P.High() && !d.N.High()) }

func (d *DiffInput) HDL() hwgen.Verilog {
	return hwgen.Wrapper{
		Code:  "IBUFDS ibuf(.I(p), .IB(n), .O(out));",
		Cores: ibufdsVerilog,
	}
}
