// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"math/bits"
	"strconv"
	"strings"
)

// TypePathSep separates the type name from the variant name in an enum
// discriminant label.
//
const TypePathSep = "."

// TypeKind is the structural shape of a TypeDescriptor.
//
type TypeKind int

// Type kinds.
//
const (
	Scalar TypeKind = iota
	Enum
	Composite
)

// A TypeDescriptor describes the structure of a signal's value. Code
// generation only uses it to find enum constants that need to be declared.
//
type TypeDescriptor struct {
	Name   string
	Kind   TypeKind
	Labels []string    // enum discriminant labels, in ordinal order
	Fields []TypeField // composite fields, in order
}

// TypeField is a named field of a composite type.
//
type TypeField struct {
	Name string
	Type TypeDescriptor
}

// Bits returns the descriptor of a plain n bits scalar.
//
func Bits(n int) TypeDescriptor {
	return TypeDescriptor{Name: "Bits" + strconv.Itoa(n), Kind: Scalar}
}

// NewEnum returns an enum descriptor. Discriminant labels are built as
// name + TypePathSep + variant.
//
//	NewEnum("State", "Idle", "Busy") // labels: "State.Idle", "State.Busy"
//
func NewEnum(name string, variants ...string) TypeDescriptor {
	ls := make([]string, len(variants))
	for i, v := range variants {
		ls[i] = name + TypePathSep + v
	}
	return TypeDescriptor{Name: name, Kind: Enum, Labels: ls}
}

// NewComposite returns a composite descriptor.
//
func NewComposite(name string, fields ...TypeField) TypeDescriptor {
	return TypeDescriptor{Name: name, Kind: Composite, Fields: fields}
}

// Ordinal returns the ordinal value of the given enum variant, or -1 if d is
// not an enum or has no such variant.
//
func (d TypeDescriptor) Ordinal(variant string) int {
	if d.Kind != Enum {
		return -1
	}
	for i, l := range d.Labels {
		if l == variant || l == d.Name+TypePathSep+variant {
			return i
		}
	}
	return -1
}

// Label returns the full discriminant label of an enum variant.
//
func (d TypeDescriptor) Label(variant string) string {
	return d.Name + TypePathSep + variant
}

// enumBits returns the bit width needed to encode n enum discriminants.
//
func enumBits(n int) int {
	if n <= 2 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// mangle flattens an enum discriminant label into a Verilog identifier.
//
func mangle(label string) string {
	return strings.ReplaceAll(label, TypePathSep, "$")
}
