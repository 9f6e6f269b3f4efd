// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"math"
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// A Signal is a named wire or register of a given bit width.
//
// For simulation, a signal holds two values: the current value returned by
// Val, and the next value set by SetNext. Settle commits next values.
// Simulated values are limited to 64 bits; code generation supports any
// width.
//
type Signal struct {
	kind      AtomKind
	bits      int
	signed    bool
	desc      TypeDescriptor
	val, next uint64
	connected bool
}

// NewSignal returns a new signal. kind must be one of InputParameter,
// OutputParameter, InOutParameter or LocalSignal.
//
func NewSignal(kind AtomKind, bits int) *Signal {
	return NewTypedSignal(kind, bits, Bits(bits))
}

// NewSigned returns a new signed signal.
//
func NewSigned(kind AtomKind, bits int) *Signal {
	s := NewSignal(kind, bits)
	s.signed = true
	return s
}

// NewEnumSignal returns a new signal holding values of the given enum type.
// Its width is the minimum number of bits needed to encode all discriminants.
//
func NewEnumSignal(kind AtomKind, enum TypeDescriptor) *Signal {
	if enum.Kind != Enum || len(enum.Labels) == 0 {
		panic(errors.Errorf("type %q is not an enum", enum.Name))
	}
	return NewTypedSignal(kind, enumBits(len(enum.Labels)), enum)
}

// NewTypedSignal returns a new signal with an explicit type descriptor.
//
func NewTypedSignal(kind AtomKind, bits int, desc TypeDescriptor) *Signal {
	switch kind {
	case InputParameter, OutputParameter, InOutParameter, LocalSignal:
	default:
		panic(errors.Errorf("unsupported signal kind %v", kind))
	}
	if bits <= 0 {
		panic(errors.Errorf("invalid signal width %d", bits))
	}
	return &Signal{kind: kind, bits: bits, desc: desc}
}

// In returns a new input signal.
//
func In(bits int) *Signal { return NewSignal(InputParameter, bits) }

// Out returns a new output signal.
//
func Out(bits int) *Signal { return NewSignal(OutputParameter, bits) }

// InOut returns a new bidirectional signal.
//
func InOut(bits int) *Signal { return NewSignal(InOutParameter, bits) }

// Local returns a new local signal.
//
func Local(bits int) *Signal { return NewSignal(LocalSignal, bits) }

// Val returns the current value of s.
//
func (s *Signal) Val() uint64 { return s.val }

// High returns true if the current value of s is non-zero.
//
func (s *Signal) High() bool { return s.val != 0 }

// Next returns the next value of s.
//
func (s *Signal) Next() uint64 { return s.next }

// SetNext sets the next value of s, truncated to its bit width.
//
func (s *Signal) SetNext(v uint64) { s.next = v & mask(s.bits) }

// SetNextBool sets the next value of s to 1 if v is true, 0 otherwise.
//
func (s *Signal) SetNextBool(v bool) {
	if v {
		s.next = 1
	} else {
		s.next = 0
	}
}

// commit makes the next value current and reports whether it changed.
func (s *Signal) commit() bool {
	changed := s.val != s.next
	s.val = s.next
	return changed
}

// Connect implements Logic.
//
func (s *Signal) Connect() { s.connected = true }

// Update implements Logic.
//
func (s *Signal) Update() {}

// Accept implements Block.
//
func (s *Signal) Accept(name string, p Probe) { p.VisitAtom(name, s) }

// HDL implements Block.
//
func (s *Signal) HDL() Verilog { return Empty{} }

// Kind implements Atom.
//
func (s *Signal) Kind() AtomKind { return s.kind }

// Bits implements Atom.
//
func (s *Signal) Bits() int { return s.bits }

// Signed implements Atom.
//
func (s *Signal) Signed() bool { return s.signed }

// Connected implements Atom.
//
func (s *Signal) Connected() bool { return s.connected }

// Descriptor implements Atom.
//
func (s *Signal) Descriptor() TypeDescriptor { return s.desc }

// Literal implements Atom.
//
func (s *Signal) Literal() string { return "" }

// Link wires s, a port of a parent module, to other, the same port of a
// child. Inputs flow from s to other, outputs from other to s. It is meant to
// be called from an Update method.
//
func (s *Signal) Link(other *Signal) {
	switch s.kind {
	case InputParameter:
		other.SetNext(s.Val())
	case OutputParameter:
		s.SetNext(other.Val())
	}
}

// LinkConnect marks the signal driven by Link as connected. Both ends of an
// inout link are connected. It is meant to be called from a Connect method.
//
func (s *Signal) LinkConnect(other *Signal) {
	switch s.kind {
	case InputParameter:
		other.Connect()
	case OutputParameter:
		s.Connect()
	case InOutParameter:
		s.Connect()
		other.Connect()
	}
}

// LinkRender implements LinkRenderer.
//
func (s *Signal) LinkRender(name, this, that string) []Link {
	l := Link{Field: name, Owner: this, Other: that}
	switch s.kind {
	case InputParameter:
		l.Dir = Forward
	case OutputParameter:
		l.Dir = Backward
	default:
		l.Dir = Bidirectional
	}
	return []Link{l}
}

// A Const is a named constant.
//
type Const struct {
	bits   int
	val    uint64
	signed bool
}

// NewConst returns a new constant of the given bit width.
//
func NewConst(bits int, v uint64) *Const {
	if bits <= 0 {
		panic(errors.Errorf("invalid constant width %d", bits))
	}
	return &Const{bits: bits, val: v & mask(bits)}
}

// NewSignedConst returns a new signed constant. v is stored in two's
// complement.
//
func NewSignedConst(bits int, v int64) *Const {
	c := NewConst(bits, uint64(v))
	c.signed = true
	return c
}

// Val returns the value of c.
//
func (c *Const) Val() uint64 { return c.val }

func (c *Const) Connect()                    {}
func (c *Const) Update()                     {}
func (c *Const) Accept(name string, p Probe) { p.VisitAtom(name, c) }
func (c *Const) HDL() Verilog                { return Empty{} }
func (c *Const) Kind() AtomKind              { return Constant }
func (c *Const) Bits() int                   { return c.bits }
func (c *Const) Signed() bool                { return c.signed }
func (c *Const) Connected() bool             { return true }
func (c *Const) Descriptor() TypeDescriptor  { return Bits(c.bits) }
func (c *Const) Literal() string             { return literal(c.bits, c.val, c.signed) }

// mask returns the bit mask for a bits wide value.
//
func mask(bits int) uint64 {
	n, err := safecast.Conv[uint](bits)
	if err != nil || n >= 64 {
		return math.MaxUint64
	}
	return 1<<n - 1
}

// literal formats a sized Verilog literal.
//
func literal(bits int, v uint64, signed bool) string {
	v &= mask(bits)
	if bits == 1 {
		if v != 0 {
			return "1'b1"
		}
		return "1'b0"
	}
	s := ""
	if signed {
		s = "s"
	}
	return strconv.Itoa(bits) + "'" + s + "h" + strconv.FormatUint(v, 16)
}
