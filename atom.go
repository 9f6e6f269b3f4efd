// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

// AtomKind is the electrical role of an atom.
//
type AtomKind int

// Atom kinds.
//
const (
	InputParameter AtomKind = iota
	OutputParameter
	InOutParameter
	Constant
	LocalSignal
	StubInputSignal
	StubOutputSignal
	OutputPassthrough
)

var kindNames = [...]string{
	InputParameter:    "InputParameter",
	OutputParameter:   "OutputParameter",
	InOutParameter:    "InOutParameter",
	Constant:          "Constant",
	LocalSignal:       "LocalSignal",
	StubInputSignal:   "StubInputSignal",
	StubOutputSignal:  "StubOutputSignal",
	OutputPassthrough: "OutputPassthrough",
}

func (k AtomKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "AtomKind(?)"
	}
	return kindNames[k]
}

// IsParameter returns true for kinds that cross a module boundary.
//
func (k AtomKind) IsParameter() bool {
	switch k {
	case InputParameter, OutputParameter, InOutParameter, OutputPassthrough:
		return true
	}
	return false
}

// IsStub returns true for parent-side wires of a sub-module port.
//
func (k AtomKind) IsStub() bool {
	return k == StubInputSignal || k == StubOutputSignal
}

// keyword returns the Verilog declaration keyword for k.
func (k AtomKind) keyword() string {
	switch k {
	case InputParameter:
		return "input wire"
	case OutputParameter:
		return "output reg"
	case InOutParameter:
		return "inout wire"
	case OutputPassthrough:
		return "output wire"
	case Constant:
		return "localparam"
	case StubOutputSignal:
		return "wire"
	}
	// StubInputSignal, LocalSignal
	return "reg"
}

// An Atom is a leaf of a circuit tree: a named signal, port or constant.
//
type Atom interface {
	Block
	// Kind returns the electrical role of the atom.
	Kind() AtomKind
	// Bits returns the atom's bit width.
	Bits() int
	// Signed returns true if the atom holds a signed value.
	Signed() bool
	// Connected returns true if the atom has a driver.
	Connected() bool
	// Descriptor returns the structural type of the atom's value.
	Descriptor() TypeDescriptor
	// Literal returns the Verilog literal of a constant's value. It returns
	// an empty string for signals.
	Literal() string
}
