// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwgen"

// Source is the producer side of a valid/ready data stream.
//
//	Outputs: data[n], valid
//	Inputs: ready
//
type Source struct {
	Data  *hwgen.Signal
	Valid *hwgen.Signal
	Ready *hwgen.Signal
}

// NewSource returns an n bits stream source.
//
func NewSource(bits int) *Source {
	return &Source{Data: hwgen.Out(bits), Valid: hwgen.Out(1), Ready: hwgen.In(1)}
}

func (s *Source) Connect()                          {}
func (s *Source) Update()                           {}
func (s *Source) HDL() hwgen.Verilog                { return hwgen.Empty{} }
func (s *Source) Accept(name string, p hwgen.Probe) { hwgen.AcceptNamespace(name, s, p) }

// Link wires s, a port of a parent module, to other, a port of a child.
//
func (s *Source) Link(other *Source) { hwgen.LinkFields(s, other) }

// LinkConnect connects the signals driven by Link.
//
func (s *Source) LinkConnect(other *Source) { hwgen.LinkConnectFields(s, other) }

// LinkRender implements hwgen.LinkRenderer.
//
func (s *Source) LinkRender(name, this, that string) []hwgen.Link {
	return hwgen.LinkRenderFields(s, hwgen.Join(this, name), hwgen.Join(that, name))
}

// Sink is the consumer side of a valid/ready data stream.
//
//	Inputs: data[n], valid
//	Outputs: ready
//
type Sink struct {
	Data  *hwgen.Signal
	Valid *hwgen.Signal
	Ready *hwgen.Signal
}

// NewSink returns an n bits stream sink.
//
func NewSink(bits int) *Sink {
	return &Sink{Data: hwgen.In(bits), Valid: hwgen.In(1), Ready: hwgen.Out(1)}
}

func (s *Sink) Connect()                          {}
func (s *Sink) Update()                           {}
func (s *Sink) HDL() hwgen.Verilog                { return hwgen.Empty{} }
func (s *Sink) Accept(name string, p hwgen.Probe) { hwgen.AcceptNamespace(name, s, p) }

// Link wires s, a port of a parent module, to other, a port of a child.
//
func (s *Sink) Link(other *Sink) { hwgen.LinkFields(s, other) }

// LinkConnect connects the signals driven by Link.
//
func (s *Sink) LinkConnect(other *Sink) { hwgen.LinkConnectFields(s, other) }

// LinkRender implements hwgen.LinkRenderer.
//
func (s *Sink) LinkRender(name, this, that string) []hwgen.Link {
	return hwgen.LinkRenderFields(s, hwgen.Join(this, name), hwgen.Join(that, name))
}

// Join connects a source to a sink, back to back. It is meant to be called
// from an Update method.
//
func Join(src *Source, snk *Sink) {
	snk.Data.SetNext(src.Data.Val())
	snk.Valid.SetNext(src.Valid.Val())
	src.Ready.SetNext(snk.Ready.Val())
}

// JoinConnect connects the signals driven by Join.
//
func JoinConnect(src *Source, snk *Sink) {
	snk.Data.Connect()
	snk.Valid.Connect()
	src.Ready.Connect()
}

// JoinRender returns the assignments equivalent to Join, for a source named
// srcName and a sink named snkName.
//
func JoinRender(src *Source, srcName, snkName string) hwgen.LinkStmt {
	ls := hwgen.LinkRenderFields(src, srcName, snkName)
	// port directions are seen from the source: flip them.
	for i := range ls {
		switch ls[i].Dir {
		case hwgen.Forward:
			ls[i].Dir = hwgen.Backward
		case hwgen.Backward:
			ls[i].Dir = hwgen.Forward
		}
	}
	return ls
}
