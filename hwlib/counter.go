// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// Counter is an n bits counter.
//
//	Inputs: clock, enable
//	Outputs: count[n]
//	Function: if enable { count(t) = count(t-1) + 1 } else { count(t) = count(t-1) }
//
type Counter struct {
	Clock  *hwgen.Signal
	Enable *hwgen.Signal
	Count  *hwgen.Signal
	Reg    *DFF `hw:"ff"`

	bits int
}

// NewCounter returns an n bits counter.
//
func NewCounter(bits int) *Counter {
	return &Counter{
		Clock:  hwgen.In(1),
		Enable: hwgen.In(1),
		Count:  hwgen.Out(bits),
		Reg:    NewDFF(bits),
		bits:   bits,
	}
}

func (c *Counter) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, c, p) }

func (c *Counter) Connect() {
	c.Reg.Clock.Connect()
	c.Reg.D.Connect()
	c.Count.Connect()
}

func (c *Counter) Update() {
	c.Reg.Clock.SetNext(c.Clock.Val())
	if c.Enable.High() {
		c.Reg.D.SetNext(c.Reg.Q.Val() + 1)
	} else {
		c.Reg.D.SetNext(c.Reg.Q.Val())
	}
	c.Count.SetNext(c.Reg.Q.Val())
}

func (c *Counter) HDL() hwgen.Verilog {
	q := ref("ff", pQ)
	d := string(ref("ff", pD))
	return hwgen.Combinatorial{
		assign(string(ref("ff", pClock)), ref(pClock)),
		assign(d, q),
		hwgen.If{
			Cond: ref(pEnable),
			Then: []hwgen.Stmt{assign(d, hwgen.Binary{Op: "+", X: q, Y: hwgen.Lit{Bits: c.bits, Value: 1}})},
		},
		assign(pCount, q),
	}
}
