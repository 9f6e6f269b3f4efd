// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/hwgen"
)

// Increment is a stream stage adding one to every data word.
//
//	Inputs: in: sink[n], out.ready
//	Outputs: out: source[n], in.ready
//	Function: out.data = in.data + 1
//	          out.valid = in.valid
//	          in.ready = out.ready
//
type Increment struct {
	In  *Sink
	Out *Source

	bits int
}

// NewIncrement returns an n bits Increment stage.
//
func NewIncrement(bits int) *Increment {
	return &Increment{In: NewSink(bits), Out: NewSource(bits), bits: bits}
}

func (s *Increment) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, s, p) }

func (s *Increment) Connect() {
	s.Out.Data.Connect()
	s.Out.Valid.Connect()
	s.In.Ready.Connect()
}

func (s *Increment) Update() {
	s.Out.Data.SetNext(s.In.Data.Val() + 1)
	s.Out.Valid.SetNext(s.In.Valid.Val())
	s.In.Ready.SetNext(s.Out.Ready.Val())
}

func (s *Increment) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		assign("out$data", hwgen.Binary{Op: "+", X: ref("in", "data"), Y: hwgen.Lit{Bits: s.bits, Value: 1}}),
		assign("out$valid", ref("in", "valid")),
		assign("in$ready", ref("out", "ready")),
	}
}

// Fanout exposes n independent stream port sets, each one linked to its own
// Increment stage.
//
//	Inputs: ports_i: sink[bits], outs_i.ready
//	Outputs: outs_i: source[bits], ports_i.ready
//	Function: outs_i.data = ports_i.data + 1
//
type Fanout struct {
	Ports  []*Sink
	Outs   []*Source
	Stages []*Increment
}

// NewFanout returns a Fanout with n port sets of the given bit width.
//
func NewFanout(n, bits int) *Fanout {
	f := &Fanout{
		Ports:  make([]*Sink, n),
		Outs:   make([]*Source, n),
		Stages: make([]*Increment, n),
	}
	for i := 0; i < n; i++ {
		f.Ports[i] = NewSink(bits)
		f.Outs[i] = NewSource(bits)
		f.Stages[i] = NewIncrement(bits)
	}
	return f
}

func (f *Fanout) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, f, p) }

func (f *Fanout) Connect() {
	for i, s := range f.Stages {
		f.Ports[i].LinkConnect(s.In)
		f.Outs[i].LinkConnect(s.Out)
	}
}

func (f *Fanout) Update() {
	for i, s := range f.Stages {
		f.Ports[i].Link(s.In)
		f.Outs[i].Link(s.Out)
	}
}

func (f *Fanout) HDL() hwgen.Verilog {
	var code hwgen.Combinatorial
	for i := range f.Stages {
		n := strconv.Itoa(i)
		stage := "stages_" + n
		code = append(code,
			hwgen.Comment("port set "+n),
			hwgen.LinkStmt(hwgen.LinkRenderFields(f.Ports[i], "ports_"+n, hwgen.Join(stage, "in"))),
			hwgen.LinkStmt(hwgen.LinkRenderFields(f.Outs[i], "outs_"+n, hwgen.Join(stage, "out"))),
		)
	}
	return code
}
