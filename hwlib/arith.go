// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// Adder is an n bits adder.
//
//	Inputs: a[n], b[n]
//	Outputs: sum[n+1]
//	Function: sum = a + b
//
type Adder struct {
	A   *hwgen.Signal
	B   *hwgen.Signal
	Sum *hwgen.Signal
}

// NewAdder returns an n bits adder.
//
func NewAdder(bits int) *Adder {
	return &Adder{
		A:   hwgen.In(bits),
		B:   hwgen.In(bits),
		Sum: hwgen.Out(bits + 1),
	}
}

func (a *Adder) Connect()                          { a.Sum.Connect() }
func (a *Adder) Update()                           { a.Sum.SetNext(a.A.Val() + a.B.Val()) }
func (a *Adder) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, a, p) }

func (a *Adder) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		assign(pSum, hwgen.Binary{Op: "+", X: ref(pA), Y: ref(pB)}),
	}
}
