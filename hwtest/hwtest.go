// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits and the
// Verilog code generated from them.
//
package hwtest

import (
	"strings"
	"testing"

	"github.com/db47h/hwgen"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Generate connects the circuit rooted at b, like a test bench would, then
// generates its Verilog code with the consistency check enabled. The test
// fails on error.
//
func Generate(t testing.TB, b hwgen.Block, opts ...hwgen.Option) string {
	t.Helper()
	hwgen.ConnectAll(b)
	hwgen.ConnectInputs(b)
	text, err := hwgen.Generate(b, opts...)
	require.NoError(t, err)
	return text
}

// Golden compares text against the golden file testdata/golden/<name>.golden.
// Run the tests with -update to regenerate golden files.
//
func Golden(t *testing.T, name string, text string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(text))
}

// Modules returns the names of the modules declared in text, in order.
//
func Modules(text string) []string {
	var ms []string
	for _, l := range strings.Split(text, "\n") {
		if !strings.HasPrefix(l, "module ") {
			continue
		}
		l = strings.TrimPrefix(l, "module ")
		if i := strings.IndexByte(l, '('); i >= 0 {
			l = l[:i]
		}
		ms = append(ms, l)
	}
	return ms
}

// ModuleBody returns the declaration of module name in text, from its header
// to its endmodule line, or an empty string if there is no such module.
//
func ModuleBody(text, name string) string {
	start := strings.Index(text, "module "+name+"(")
	if start < 0 || start > 0 && text[start-1] != '\n' {
		return ""
	}
	end := "endmodule // " + name + "\n"
	n := strings.Index(text[start:], end)
	if n < 0 {
		return ""
	}
	return text[start : start+n+len(end)]
}

// CountLines returns the number of lines of text equal to line, ignoring
// leading and trailing white space.
//
func CountLines(text, line string) int {
	n := 0
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == line {
			n++
		}
	}
	return n
}
