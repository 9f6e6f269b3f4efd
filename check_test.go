package hwgen_test

import (
	"testing"

	"github.com/db47h/hwgen"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floating leaves its child's input undriven.
type floating struct {
	Adder *incr         `hw:"adder"`
	In    *hwgen.Signal `hw:"in"`
	Out   *hwgen.Signal `hw:"out"`
}

func (f *floating) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, f, p) }
func (f *floating) Connect()                          { f.Out.Connect() }
func (f *floating) Update()                           {}

func (f *floating) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{hwgen.Assign{Target: "out", Value: hwgen.Ref("adder$sum")}}
}

// selfDriven drives its own input.
type selfDriven struct {
	X *hwgen.Signal
	Y *hwgen.Signal
}

func (s *selfDriven) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, s, p) }
func (s *selfDriven) Connect()                          { s.Y.Connect() }
func (s *selfDriven) Update()                           {}

func (s *selfDriven) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		hwgen.If{
			Cond: hwgen.Ref("y"),
			Then: []hwgen.Stmt{hwgen.Assign{Target: "x", Value: hwgen.Lit{Bits: 1}}},
		},
		hwgen.Assign{Target: "y", Value: hwgen.Ref("x")},
	}
}

// pad is a leaf with a single bidirectional port.
type pad struct {
	IO *hwgen.Signal `hw:"io"`
}

func (p *pad) Accept(name string, v hwgen.Probe) { hwgen.AcceptModule(name, p, v) }
func (p *pad) Connect()                          {}
func (p *pad) Update()                           {}
func (p *pad) HDL() hwgen.Verilog                { return hwgen.Empty{} }

// board passes its inout port through to a pad.
type board struct {
	IO  *hwgen.Signal `hw:"io"`
	Pad *pad          `hw:"pad"`
}

func newBoard() *board { return &board{IO: hwgen.InOut(1), Pad: &pad{IO: hwgen.InOut(1)}} }

func (b *board) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, b, p) }
func (b *board) Connect()                          { b.IO.LinkConnect(b.Pad.IO) }
func (b *board) Update()                           {}

func (b *board) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{hwgen.LinkStmt(b.IO.LinkRender("io", "", "pad"))}
}

func TestCheck(t *testing.T) {
	td := []struct {
		name   string
		root   func() hwgen.Block
		issues []hwgen.Issue
		msg    string
	}{
		{"ok", func() hwgen.Block { return newWrapIncr() }, nil, ""},
		{
			"open signal",
			func() hwgen.Block { return &floating{Adder: newIncr(), In: hwgen.In(8), Out: hwgen.Out(9)} },
			[]hwgen.Issue{{Kind: hwgen.OpenSignal, Module: "top$adder", Signal: "a"}},
			"circuit check failed: top$adder: signal a has no driver",
		},
		{"inout pass-through", func() hwgen.Block { return newBoard() }, nil, ""},
		{
			"writes to input",
			func() hwgen.Block { return &selfDriven{X: hwgen.In(1), Y: hwgen.Out(1)} },
			[]hwgen.Issue{{Kind: hwgen.WritesToInput, Module: "top", Signal: "x"}},
			"circuit check failed: top: input x is driven from inside the module",
		},
	}

	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			root := d.root()
			hwgen.ConnectAll(root)
			hwgen.ConnectInputs(root)
			err := hwgen.Check(root)
			if d.issues == nil {
				assert.NoError(t, err)
				return
			}
			var ce *hwgen.CheckError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, d.issues, ce.Issues)
			assert.EqualError(t, err, d.msg)

			text, gerr := hwgen.Generate(root)
			assert.Empty(t, text)
			assert.Equal(t, err.Error(), gerr.Error())

			text, gerr = hwgen.GenerateUnchecked(root)
			assert.NoError(t, gerr)
			assert.NotEmpty(t, text)
		})
	}
}

func TestCheck_unconnected(t *testing.T) {
	w := newWrapIncr()
	err := hwgen.Check(w)
	var ce *hwgen.CheckError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []hwgen.Issue{
		{Kind: hwgen.OpenSignal, Module: "top$adder", Signal: "a"},
		{Kind: hwgen.OpenSignal, Module: "top$adder", Signal: "sum"},
		{Kind: hwgen.OpenSignal, Module: "top", Signal: "in"},
		{Kind: hwgen.OpenSignal, Module: "top", Signal: "out"},
	}, ce.Issues)
}

func TestConnectInputs(t *testing.T) {
	w := newWrapIncr()
	hwgen.ConnectInputs(w)
	assert.True(t, w.In.Connected())
	assert.False(t, w.Out.Connected())
	assert.False(t, w.Adder.A.Connected(), "child inputs are left to the parent")
}

func TestLinkConnect_inout(t *testing.T) {
	b := newBoard()
	b.Connect()
	assert.True(t, b.IO.Connected())
	assert.True(t, b.Pad.IO.Connected())

	text, err := hwgen.Generate(b)
	require.NoError(t, err)
	assert.Contains(t, text, "    // Stub signals\n    wire pad$io;\n")
	assert.Contains(t, text, "    top$pad pad(.io(pad$io));\n")
	assert.Contains(t, text, "// inout io <-> pad$io\n")
}
