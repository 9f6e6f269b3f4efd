// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwgen uses Go as a hardware description language: circuits are built
by composing Go structs whose fields are signals, constants and other circuit
blocks. The same circuit value can be simulated (see Settle) and translated
into synthesizable Verilog (see Generate).

Every node of a circuit is a Block. Composite blocks forward each operation to
their fields; the AcceptModule, AcceptNamespace, ConnectAll, UpdateAll and
LinkFields helpers implement this forwarding once, using reflection over the
exported fields of a struct:

	type Adder struct {
		A   *hwgen.Signal `hw:"a"`
		B   *hwgen.Signal `hw:"b"`
		Sum *hwgen.Signal `hw:"sum"`
	}

	func (a *Adder) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, a, p) }
	func (a *Adder) Connect()                          { a.Sum.Connect() }
	func (a *Adder) Update()                           { a.Sum.SetNext(a.A.Val() + a.B.Val()) }
	func (a *Adder) HDL() hwgen.Verilog {
		return hwgen.Combinatorial{
			hwgen.Assign{Target: "sum", Value: hwgen.Binary{Op: "+", X: hwgen.Ref("a"), Y: hwgen.Ref("b")}},
		}
	}

Code generation walks the circuit tree exactly once with a Probe, collects the
signals, sub-module instances and enum constants of every module into a table
keyed by hierarchical path, then renders that table in lexicographic key order.
Hierarchical names are joined with '$'.

*/
package hwgen
