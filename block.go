// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

// Logic is implemented by every circuit node.
//
// Connect marks the signals driven by the node so that the consistency check
// can find undriven signals. It must be idempotent.
//
// Update computes the next state of the signals driven by the node. Composite
// nodes with no behavior of their own implement it as a no-op.
//
type Logic interface {
	Update()
	Connect()
}

// A Block is a node in a circuit tree.
//
// Accept is the traversal entry point. Module boundaries call
// p.VisitStartScope / p.VisitEndScope around their fields, other composites
// call p.VisitStartNamespace / p.VisitEndNamespace, and atoms call
// p.VisitAtom. See AcceptModule and AcceptNamespace.
//
// HDL returns the code body of a module. Blocks that are not module
// boundaries return Empty{}.
//
type Block interface {
	Logic
	Accept(name string, p Probe)
	HDL() Verilog
}

// A Probe visits a circuit tree. Callbacks are invoked depth-first, exactly
// once per reachable node.
//
type Probe interface {
	VisitStartScope(name string, node Block)
	VisitStartNamespace(name string, node Block)
	VisitAtom(name string, signal Atom)
	VisitEndNamespace(name string, node Block)
	VisitEndScope(name string, node Block)
}

// LinkRenderer is implemented by duplex interface types. LinkRender returns
// one link descriptor per leaf signal, for use in a Combinatorial body (see
// LinkStmt). name is the name of the receiver within this and that.
//
// Duplex types also provide a typed Link method:
//
//	func (h *Handshake) Link(other *Handshake) { hwgen.LinkFields(h, other) }
//
type LinkRenderer interface {
	LinkRender(name, this, that string) []Link
}

// ConnectAll calls b.Connect, then ConnectAll on every sub-block of b.
// Atoms are skipped: a signal is only connected by the block driving it.
//
func ConnectAll(b Block) {
	if _, ok := b.(Atom); ok {
		return
	}
	b.Connect()
	for _, f := range subBlocks(b) {
		ConnectAll(f.b)
	}
}

// UpdateAll calls b.Update, then UpdateAll on every sub-block of b.
//
func UpdateAll(b Block) {
	b.Update()
	for _, f := range subBlocks(b) {
		UpdateAll(f.b)
	}
}

// AcceptModule implements Block.Accept for a struct that is a module
// boundary.
//
func AcceptModule(name string, b Block, p Probe) {
	p.VisitStartScope(name, b)
	for _, f := range mustSubBlocks(b) {
		f.b.Accept(f.name, p)
	}
	p.VisitEndScope(name, b)
}

// AcceptNamespace implements Block.Accept for a struct that groups signals
// without being a module boundary, like a bus interface.
//
func AcceptNamespace(name string, b Block, p Probe) {
	p.VisitStartNamespace(name, b)
	for _, f := range mustSubBlocks(b) {
		f.b.Accept(f.name, p)
	}
	p.VisitEndNamespace(name, b)
}
