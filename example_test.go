package hwgen_test

import (
	"fmt"

	"github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
)

func ExampleGenerate() {
	a := hwlib.NewAdder(4)

	// mark driven signals, then the root inputs that the test bench drives.
	hwgen.ConnectAll(a)
	hwgen.ConnectInputs(a)

	text, err := hwgen.Generate(a, hwgen.WithTopName("add4"))
	if err != nil {
		panic(err)
	}
	fmt.Print(text)

	// Output:
	// module add4(a,b,sum);
	//
	//     // Module arguments
	//     input wire [3:0] a;
	//     input wire [3:0] b;
	//     output reg [4:0] sum;
	//
	//     // Update code
	//     always @(*) begin
	//         sum = a + b;
	//     end
	// endmodule // add4
}

func ExampleSettle() {
	a := hwlib.NewAdder(4)
	a.A.SetNext(9)
	a.B.SetNext(8)
	if err := hwgen.Settle(a, 0); err != nil {
		panic(err)
	}
	fmt.Println(a.Sum.Val())

	// Output:
	// 17
}
