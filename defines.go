// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import "slices"

// atomDetails is the recorded declaration of one atom.
type atomDetails struct {
	name    string
	kind    AtomKind
	width   int
	literal string
	signed  bool
}

// subModule is an instance of a child module. kind is the full hierarchical
// path of the child, used as its module type name.
type subModule struct {
	kind string
	name string
}

// enumDef is one enum discriminant to be declared as a localparam.
type enumDef struct {
	typeName     string
	discriminant string
	value        int
}

type moduleDetails struct {
	atoms      []atomDetails
	subModules []subModule
	enums      []enumDef
	code       Verilog
}

// moduleDefines is the Probe that builds the module table. A new value is
// used for each generation call.
//
type moduleDefines struct {
	path      NamedPath
	namespace NamedPath
	saved     []NamedPath // enclosing namespaces of open scopes
	details   map[string]*moduleDetails
}

func newModuleDefines() *moduleDefines {
	return &moduleDefines{details: make(map[string]*moduleDetails)}
}

func (d *moduleDefines) entry(module string) *moduleDetails {
	e := d.details[module]
	if e == nil {
		e = &moduleDetails{code: Empty{}}
		d.details[module] = e
	}
	return e
}

func (d *moduleDefines) addAtom(module string, a atomDetails) {
	e := d.entry(module)
	e.atoms = append(e.atoms, a)
}

func (d *moduleDefines) addSubModule(module, name, kind string) {
	e := d.entry(module)
	e.subModules = append(e.subModules, subModule{kind: kind, name: name})
}

func (d *moduleDefines) addEnums(module string, desc TypeDescriptor) {
	switch desc.Kind {
	case Enum:
		e := d.entry(module)
		for i, l := range desc.Labels {
			def := enumDef{typeName: desc.Name, discriminant: l, value: i}
			if !slices.Contains(e.enums, def) {
				e.enums = append(e.enums, def)
			}
		}
	case Composite:
		for _, f := range desc.Fields {
			d.addEnums(module, f.Type)
		}
	}
}

func (d *moduleDefines) setCode(module string, code Verilog) {
	if code == nil {
		code = Empty{}
	}
	d.entry(module).code = code
}

// VisitStartScope implements Probe. A sub-module nested in a namespace is
// named after its namespace-qualified name.
//
func (d *moduleDefines) VisitStartScope(name string, node Block) {
	parent := d.path.String()
	name = d.namespace.Qualify(name)
	d.path.Push(name)
	d.saved = append(d.saved, slices.Clone(d.namespace))
	d.namespace.Reset()
	d.addSubModule(parent, name, d.path.String())
	d.setCode(d.path.String(), node.HDL())
}

// VisitStartNamespace implements Probe.
//
func (d *moduleDefines) VisitStartNamespace(name string, _ Block) {
	d.namespace.Push(name)
}

// VisitAtom implements Probe.
//
func (d *moduleDefines) VisitAtom(name string, s Atom) {
	module := d.path.String()
	name = d.namespace.Qualify(name)
	a := atomDetails{
		name:    name,
		kind:    s.Kind(),
		width:   s.Bits(),
		literal: s.Literal(),
		signed:  s.Signed(),
	}
	if a.kind.IsParameter() {
		stub := a
		stub.name = d.path.Last() + Sep + name
		stub.kind = StubOutputSignal
		if a.kind == InputParameter {
			stub.kind = StubInputSignal
		}
		d.addAtom(d.path.Parent(), stub)
	}
	d.addEnums(module, s.Descriptor())
	d.addEnums(d.path.Parent(), s.Descriptor())
	d.addAtom(module, a)
}

// VisitEndNamespace implements Probe.
//
func (d *moduleDefines) VisitEndNamespace(string, Block) {
	d.namespace.Pop()
}

// VisitEndScope implements Probe.
//
func (d *moduleDefines) VisitEndScope(string, Block) {
	d.path.Pop()
	if n := len(d.saved); n > 0 {
		d.namespace = d.saved[n-1]
		d.saved = d.saved[:n-1]
	}
}

// modules returns the table keys in emission order.
//
func (d *moduleDefines) modules() []string {
	keys := make([]string, 0, len(d.details))
	for k := range d.details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
