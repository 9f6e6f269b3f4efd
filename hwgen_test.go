package hwgen_test

import (
	"testing"

	"github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// incr adds one to its input.
type incr struct {
	A   *hwgen.Signal
	Sum *hwgen.Signal
}

func newIncr() *incr { return &incr{A: hwgen.In(8), Sum: hwgen.Out(9)} }

func (a *incr) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, a, p) }
func (a *incr) Connect()                          { a.Sum.Connect() }
func (a *incr) Update()                           { a.Sum.SetNext(a.A.Val() + 1) }

func (a *incr) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		hwgen.Assign{Target: "sum", Value: hwgen.Binary{Op: "+", X: hwgen.Ref("a"), Y: hwgen.Lit{Bits: 8, Value: 1}}},
	}
}

// wrapIncr instantiates an incr.
type wrapIncr struct {
	Adder *incr         `hw:"adder"`
	In    *hwgen.Signal `hw:"in"`
	Out   *hwgen.Signal `hw:"out"`
}

func newWrapIncr() *wrapIncr {
	return &wrapIncr{Adder: newIncr(), In: hwgen.In(8), Out: hwgen.Out(9)}
}

func (w *wrapIncr) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, w, p) }

func (w *wrapIncr) Connect() {
	w.Adder.A.Connect()
	w.Out.Connect()
}

func (w *wrapIncr) Update() {
	w.Adder.A.SetNext(w.In.Val())
	w.Out.SetNext(w.Adder.Sum.Val())
}

func (w *wrapIncr) HDL() hwgen.Verilog {
	return hwgen.Combinatorial{
		hwgen.Assign{Target: "adder$a", Value: hwgen.Ref("in")},
		hwgen.Assign{Target: "out", Value: hwgen.Ref("adder$sum")},
	}
}

// Sub-module types are named after their full path: adder is an instance of
// top$adder.
func TestGenerate_golden(t *testing.T) {
	text := hwtest.Generate(t, newWrapIncr())
	hwtest.Golden(t, "adder", text)
}

func TestGenerate_deterministic(t *testing.T) {
	w := newWrapIncr()
	first := hwtest.Generate(t, w)
	for i := 0; i < 5; i++ {
		text, err := hwgen.Generate(w)
		require.NoError(t, err)
		assert.Equal(t, first, text)
	}
}

func TestGenerate_leaf(t *testing.T) {
	text := hwtest.Generate(t, newIncr())
	assert.Equal(t, []string{"top"}, hwtest.Modules(text))
	assert.NotContains(t, text, "// Stub signals")
	assert.NotContains(t, text, "// Sub module instances")
	assert.Contains(t, text, "module top(a,sum);\n")
}

func TestGenerate_topName(t *testing.T) {
	text := hwtest.Generate(t, newWrapIncr(), hwgen.WithTopName("chip"))
	assert.Equal(t, []string{"chip", "chip$adder"}, hwtest.Modules(text))
	assert.Equal(t, 1, hwtest.CountLines(text, "chip$adder adder(.a(adder$a),.sum(adder$sum));"))
}

func TestGenerate_emptyTopName(t *testing.T) {
	w := newWrapIncr()
	hwgen.ConnectAll(w)
	hwgen.ConnectInputs(w)

	text, err := hwgen.GenerateUnchecked(w, hwgen.WithTopName(""))
	assert.EqualError(t, err, "empty top module name")
	assert.Empty(t, text)

	text, err = hwgen.Generate(w, hwgen.WithTopName(""))
	assert.EqualError(t, err, "empty top module name")
	assert.Empty(t, text)

	assert.EqualError(t, hwgen.Check(w, hwgen.WithTopName("")), "empty top module name")
}

func TestGenerate_nilRoot(t *testing.T) {
	text, err := hwgen.GenerateUnchecked(nil)
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestSettle(t *testing.T) {
	w := newWrapIncr()
	w.In.SetNext(41)
	require.NoError(t, hwgen.Settle(w, 0))
	assert.EqualValues(t, 42, w.Out.Val())
	w.In.SetNext(255)
	require.NoError(t, hwgen.Settle(w, 0))
	assert.EqualValues(t, 256, w.Out.Val())
}

// ring is a combinatorial loop: an inverter driving itself.
type ring struct {
	Out *hwgen.Signal
}

func (r *ring) Accept(name string, p hwgen.Probe) { hwgen.AcceptModule(name, r, p) }
func (r *ring) Connect()                          { r.Out.Connect() }
func (r *ring) Update()                           { r.Out.SetNextBool(!r.Out.High()) }
func (r *ring) HDL() hwgen.Verilog                { return hwgen.Empty{} }

func TestSettle_loop(t *testing.T) {
	err := hwgen.Settle(&ring{Out: hwgen.Out(1)}, 10)
	assert.EqualError(t, err, "circuit did not settle after 10 steps")
}
