// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

// Verilog is the code body of a module. It is one of Combinatorial,
// CustomText, Wrapper, Blackbox or Empty.
//
type Verilog interface {
	isVerilog()
}

// Combinatorial is a code body made of structured statements, rendered as an
// always @(*) block.
//
type Combinatorial []Stmt

// CustomText is a raw Verilog code body, rendered verbatim.
//
type CustomText string

// A Wrapper is a raw code body wrapping external cores. The module outputs are
// declared as nets. Cores is appended once after all modules.
//
type Wrapper struct {
	Code  string
	Cores string
}

// A Blackbox is a module implemented outside of the generated code.
// Instances use Name as module type and Code is appended once after all
// modules.
//
type Blackbox struct {
	Name string
	Code string
}

// Empty is the code body of blocks with no code of their own.
//
type Empty struct{}

func (Combinatorial) isVerilog() {}
func (CustomText) isVerilog()    {}
func (Wrapper) isVerilog()       {}
func (Blackbox) isVerilog()      {}
func (Empty) isVerilog()         {}

// LinkDir is the data flow direction of a link.
//
type LinkDir int

// Link directions.
//
const (
	Forward       LinkDir = iota // from owner to other
	Backward                     // from other to owner
	Bidirectional                // inout
)

// A Link describes the wiring of one field between two instances of the same
// duplex interface.
//
type Link struct {
	Dir   LinkDir
	Field string
	Owner string
	Other string
}

// Target returns the name of the driven signal. It returns an empty string
// for bidirectional links.
//
func (l Link) Target() string {
	switch l.Dir {
	case Forward:
		return Join(l.Other, l.Field)
	case Backward:
		return Join(l.Owner, l.Field)
	}
	return ""
}

// Source returns the name of the driving signal. It returns an empty string
// for bidirectional links.
//
func (l Link) Source() string {
	switch l.Dir {
	case Forward:
		return Join(l.Owner, l.Field)
	case Backward:
		return Join(l.Other, l.Field)
	}
	return ""
}

// String returns the Verilog rendition of l.
//
func (l Link) String() string {
	if l.Dir == Bidirectional {
		return "// inout " + Join(l.Owner, l.Field) + " <-> " + Join(l.Other, l.Field)
	}
	return l.Target() + " = " + l.Source() + ";"
}
