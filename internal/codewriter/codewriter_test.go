package codewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var w Writer
	w.Add("module m();")
	w.Push()
	w.Add("")
	w.Add("a;\nb;")
	w.Push()
	w.Add("c;")
	w.Pop()
	w.Pop()
	w.Pop() // extra pops are ignored
	w.Add("endmodule")

	assert.Equal(t, "module m();\n\n    a;\n    b;\n        c;\nendmodule\n", w.String())
	assert.Equal(t, len(w.String()), w.Len())
}

func TestWriter_zero(t *testing.T) {
	var w Writer
	assert.Equal(t, "", w.String())
	assert.Equal(t, 0, w.Len())
}
