package hwlib_test

import (
	"testing"

	"github.com/db47h/hwgen/hwlib"
	"github.com/db47h/hwgen/hwtest"
	"github.com/stretchr/testify/assert"
)

func TestDFF(t *testing.T) {
	d := hwlib.NewDFF(8)
	d.D.SetNext(5)
	settle(t, d)
	assert.EqualValues(t, 0, d.Q.Val(), "before clock edge")

	d.Clock.SetNext(1)
	settle(t, d)
	assert.EqualValues(t, 5, d.Q.Val(), "raising edge")

	d.D.SetNext(7)
	settle(t, d)
	assert.EqualValues(t, 5, d.Q.Val(), "clock high")

	d.Clock.SetNext(0)
	settle(t, d)
	assert.EqualValues(t, 5, d.Q.Val(), "falling edge")

	d.Clock.SetNext(1)
	settle(t, d)
	assert.EqualValues(t, 7, d.Q.Val(), "second raising edge")
}

func TestCounter(t *testing.T) {
	c := hwlib.NewCounter(3)
	c.Enable.SetNext(1)
	settle(t, c)
	for i := 1; i <= 9; i++ {
		cycle(t, c, c.Clock)
		assert.EqualValues(t, i%8, c.Count.Val(), "cycle %d", i)
	}
	c.Enable.SetNext(0)
	settle(t, c)
	cycle(t, c, c.Clock)
	assert.EqualValues(t, 1, c.Count.Val(), "disabled")
}

func TestCounter_hdl(t *testing.T) {
	text := hwtest.Generate(t, hwlib.NewCounter(8))
	assert.Equal(t, []string{"top", "top$ff"}, hwtest.Modules(text))

	top := hwtest.ModuleBody(text, "top")
	assert.Contains(t, top, `
    // Stub signals
    reg ff$clock;
    reg [7:0] ff$d;
    wire [7:0] ff$q;

    // Sub module instances
    top$ff ff(.clock(ff$clock),.d(ff$d),.q(ff$q));
`)
	assert.Contains(t, top, `
    always @(*) begin
        ff$clock = clock;
        ff$d = ff$q;
        if (enable) begin
            ff$d = ff$q + 8'h1;
        end
        count = ff$q;
    end
`)

	ff := hwtest.ModuleBody(text, "top$ff")
	assert.Contains(t, ff, "    // Update code (custom)\n    always @(posedge clock) q <= d;\n")
}
