// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// BlinkState is the state type of a Blinker.
//
var BlinkState = hwgen.NewEnum("BlinkState", "Off", "On")

var (
	blinkOff = uint64(BlinkState.Ordinal("Off"))
	blinkOn  = uint64(BlinkState.Ordinal("On"))
)

// Blinker is a state machine toggling its output on every tick.
//
//	Inputs: clock, tick
//	Outputs: led
//	Function: if tick { led(t) = !led(t-1) } else { led(t) = led(t-1) }
//
type Blinker struct {
	Clock *hwgen.Signal
	Tick  *hwgen.Signal
	Led   *hwgen.Signal
	State *hwgen.Signal
	Reg   *DFF `hw:"ff"`
}

// NewBlinker returns a new Blinker.
//
func NewBlinker() *Blinker {
	st := hwgen.NewEnumSignal(hwgen.LocalSignal, BlinkState)
	return &Blinker{
		Clock: hwgen.In(1),
		Tick:  hwgen.In(1),
		Led:   hwgen.Out(1),
		State: st,
		Reg:   NewDFF(st.Bits()),
	}
}

func (b *Blinker) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, b, p) }

func (b *Blinker) Connect() {
	b.Reg.Clock.Connect()
	b.Reg.D.Connect()
	b.State.Connect()
	b.Led.Connect()
}

func (b *Blinker) Update() {
	b.Reg.Clock.SetNext(b.Clock.Val())
	b.State.SetNext(b.Reg.Q.Val())
	next := b.State.Val()
	switch b.State.Val() {
	case blinkOff:
		b.Led.SetNextBool(false)
		if b.Tick.High() {
			next = blinkOn
		}
	case blinkOn:
		b.Led.SetNextBool(true)
		if b.Tick.High() {
			next = blinkOff
		}
	}
	b.Reg.D.SetNext(next)
}

func (b *Blinker) HDL() hwgen.Verilog {
	d := string(ref("ff", pD))
	state := ref("state")
	on := hwgen.EnumRef(BlinkState.Label("On"))
	off := hwgen.EnumRef(BlinkState.Label("Off"))
	return hwgen.Combinatorial{
		assign(string(ref("ff", pClock)), ref(pClock)),
		assign("state", ref("ff", pQ)),
		assign(d, state),
		hwgen.Case{
			Subject: state,
			Items: []hwgen.CaseItem{
				{Label: off, Body: []hwgen.Stmt{
					assign("led", hwgen.Lit{Bits: 1, Value: 0}),
					hwgen.If{Cond: ref("tick"), Then: []hwgen.Stmt{assign(d, on)}},
				}},
				{Label: on, Body: []hwgen.Stmt{
					assign("led", hwgen.Lit{Bits: 1, Value: 1}),
					hwgen.If{Cond: ref("tick"), Then: []hwgen.Stmt{assign(d, off)}},
				}},
			},
			Default: []hwgen.Stmt{assign("led", hwgen.Lit{Bits: 1, Value: 0})},
		},
	}
}

// Blinky is a complete design blinking a led from a differential clock:
// the clock goes through a DiffInput buffer and a PLL, a Counter divides it
// and its carry ticks a Blinker.
//
//	Inputs: clock_p, clock_n
//	Outputs: led, locked
//
type Blinky struct {
	ClockP *hwgen.Signal `hw:"clock_p"`
	ClockN *hwgen.Signal `hw:"clock_n"`
	Led    *hwgen.Signal
	Locked *hwgen.Signal
	Buf    *DiffInput `hw:"clkbuf"`
	PLL    *PLL
	Div    *Counter
	Blink  *Blinker
}

// NewBlinky returns a Blinky whose clock divider is n bits wide.
//
func NewBlinky(n int) *Blinky {
	return &Blinky{
		ClockP: hwgen.In(1),
		ClockN: hwgen.In(1),
		Led:    hwgen.Out(1),
		Locked: hwgen.Out(1),
		Buf:    NewDiffInput(),
		PLL:    NewPLL(),
		Div:    NewCounter(n),
		Blink:  NewBlinker(),
	}
}

func (b *Blinky) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, b, p) }

func (b *Blinky) Connect() {
	b.Buf.P.Connect()
	b.Buf.N.Connect()
	b.PLL.ClockIn.Connect()
	b.Div.Clock.Connect()
	b.Div.Enable.Connect()
	b.Blink.Clock.Connect()
	b.Blink.Tick.Connect()
	b.Led.Connect()
	b.Locked.Connect()
}

func (b *Blinky) Update() {
	b.Buf.P.SetNext(b.ClockP.Val())
	b.Buf.N.SetNext(b.ClockN.Val())
	b.PLL.ClockIn.SetNext(b.Buf.Out.Val())
	b.Div.Clock.SetNext(b.PLL.ClockOut.Val())
	b.Div.Enable.SetNext(b.PLL.Locked.Val())
	b.Blink.Clock.SetNext(b.PLL.ClockOut.Val())
	b.Blink.Tick.SetNextBool(b.Div.Count.Val() == 1<<b.Div.Count.Bits()-1)
	b.Led.SetNext(b.Blink.Led.Val())
	b.Locked.SetNext(b.PLL.Locked.Val())
}

func (b *Blinky) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		assign("clkbuf$p", ref("clock_p")),
		assign("clkbuf$n", ref("clock_n")),
		assign("pll$clock_in", ref("clkbuf", "out")),
		assign("div$clock", ref("pll", "clock_out")),
		assign("div$enable", ref("pll", "locked")),
		assign("blink$clock", ref("pll", "clock_out")),
		assign("blink$tick", hwgen.Unary{Op: "&", X: ref("div", pCount)}),
		assign("led", ref("blink", "led")),
		assign("locked", ref("pll", "locked")),
	}
}
