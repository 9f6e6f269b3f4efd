// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import "github.com/pkg/errors"

// DefaultMaxIter is the iteration limit used by Settle when maxIter <= 0.
//
const DefaultMaxIter = 100

// committer commits the next value of every signal it visits.
type committer struct {
	changed int
}

func (c *committer) VisitStartScope(string, Block)     {}
func (c *committer) VisitStartNamespace(string, Block) {}
func (c *committer) VisitEndNamespace(string, Block)   {}
func (c *committer) VisitEndScope(string, Block)       {}

func (c *committer) VisitAtom(_ string, a Atom) {
	if s, ok := a.(interface{ commit() bool }); ok && s.commit() {
		c.changed++
	}
}

// Step runs one simulation step: it calls UpdateAll(root), then commits the
// next value of every signal. It returns the number of signals whose value
// changed.
//
func Step(root Block) int {
	UpdateAll(root)
	c := new(committer)
	root.Accept("", c)
	return c.changed
}

// Settle runs simulation steps until no signal changes value. It returns an
// error if the circuit has not settled after maxIter steps.
//
// Clocked blocks are driven by the caller, by setting the next value of their
// clock input, then calling Settle.
//
func Settle(root Block, maxIter int) error {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	for i := 0; i < maxIter; i++ {
		if Step(root) == 0 {
			return nil
		}
	}
	return errors.Errorf("circuit did not settle after %d steps", maxIter)
}
