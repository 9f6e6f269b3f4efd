// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"slices"
	"strings"
)

// IssueKind identifies a consistency check failure.
//
type IssueKind int

// Issue kinds.
//
const (
	// OpenSignal is reported for a signal with no driver.
	OpenSignal IssueKind = iota
	// WritesToInput is reported when a module's code drives one of its own
	// input parameters, which are already driven by its parent.
	WritesToInput
)

// An Issue is a consistency check failure.
//
type Issue struct {
	Kind   IssueKind
	Module string // hierarchical path of the module
	Signal string // namespace-qualified signal name
}

func (i Issue) String() string {
	switch i.Kind {
	case OpenSignal:
		return i.Module + ": signal " + i.Signal + " has no driver"
	case WritesToInput:
		return i.Module + ": input " + i.Signal + " is driven from inside the module"
	}
	return i.Module + ": " + i.Signal
}

// CheckError is returned by Check and Generate when a circuit fails the
// consistency check.
//
type CheckError struct {
	Issues []Issue
}

func (e *CheckError) Error() string {
	ss := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		ss[i] = is.String()
	}
	return "circuit check failed: " + strings.Join(ss, "; ")
}

// Check walks the circuit rooted at root and reports undriven signals and
// modules driving their own inputs. It returns nil or a *CheckError.
//
func Check(root Block, opts ...Option) error {
	return check(root, newOptions(opts))
}

func check(root Block, o *options) error {
	if o.top == "" {
		return errEmptyTop
	}
	c := new(checker)
	root.Accept(o.top, c)
	if len(c.issues) > 0 {
		o.logger.Debug("circuit check failed", "top", o.top, "issues", len(c.issues))
		return &CheckError{Issues: c.issues}
	}
	return nil
}

type checkFrame struct {
	targets map[string]bool
	inputs  []string
}

type checker struct {
	path      NamedPath
	namespace NamedPath
	saved     []NamedPath
	frames    []*checkFrame
	issues    []Issue
}

func (c *checker) VisitStartScope(name string, node Block) {
	c.path.Push(c.namespace.Qualify(name))
	c.saved = append(c.saved, slices.Clone(c.namespace))
	c.namespace.Reset()
	f := &checkFrame{targets: make(map[string]bool)}
	if code, ok := node.HDL().(Combinatorial); ok {
		for _, t := range code.Targets() {
			f.targets[t] = true
		}
	}
	c.frames = append(c.frames, f)
}

func (c *checker) VisitStartNamespace(name string, _ Block) {
	c.namespace.Push(name)
}

func (c *checker) VisitAtom(name string, s Atom) {
	name = c.namespace.Qualify(name)
	if !s.Connected() {
		c.issues = append(c.issues, Issue{OpenSignal, c.path.String(), name})
	}
	if s.Kind() == InputParameter && len(c.frames) > 0 {
		f := c.frames[len(c.frames)-1]
		f.inputs = append(f.inputs, name)
	}
}

func (c *checker) VisitEndNamespace(string, Block) {
	c.namespace.Pop()
}

func (c *checker) VisitEndScope(string, Block) {
	if n := len(c.frames); n > 0 {
		f := c.frames[n-1]
		c.frames = c.frames[:n-1]
		for _, in := range f.inputs {
			if f.targets[in] {
				c.issues = append(c.issues, Issue{WritesToInput, c.path.String(), in})
			}
		}
	}
	c.path.Pop()
	if n := len(c.saved); n > 0 {
		c.namespace = c.saved[n-1]
		c.saved = c.saved[:n-1]
	}
}

// inputConnector connects the input parameters of the root module.
type inputConnector struct {
	depth int
}

func (c *inputConnector) VisitStartScope(string, Block)     { c.depth++ }
func (c *inputConnector) VisitStartNamespace(string, Block) {}
func (c *inputConnector) VisitEndNamespace(string, Block)   {}
func (c *inputConnector) VisitEndScope(string, Block)       { c.depth-- }

func (c *inputConnector) VisitAtom(_ string, a Atom) {
	if c.depth == 1 && (a.Kind() == InputParameter || a.Kind() == InOutParameter) {
		a.Connect()
	}
}

// ConnectInputs connects the input and inout parameters of root, which are
// driven from outside of the circuit.
//
func ConnectInputs(root Block) {
	root.Accept("", new(inputConnector))
}
