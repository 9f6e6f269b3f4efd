// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package codewriter provides an indenting line writer for generated code.
//
package codewriter

import "strings"

// Indent is the string written once per indentation level.
//
const Indent = "    "

// A Writer accumulates lines of text with an indentation level.
// The zero value is ready to use.
//
type Writer struct {
	b     strings.Builder
	level int
}

// Add writes s, one line per newline separated piece, at the current
// indentation level. Empty lines are written without indentation.
//
func (w *Writer) Add(s string) {
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			for i := 0; i < w.level; i++ {
				w.b.WriteString(Indent)
			}
			w.b.WriteString(l)
		}
		w.b.WriteByte('\n')
	}
}

// Push increases the indentation level.
//
func (w *Writer) Push() { w.level++ }

// Pop decreases the indentation level.
//
func (w *Writer) Pop() {
	if w.level > 0 {
		w.level--
	}
}

// Len returns the number of bytes written so far.
//
func (w *Writer) Len() int { return w.b.Len() }

// String returns the accumulated text.
//
func (w *Writer) String() string { return w.b.String() }
