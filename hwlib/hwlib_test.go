package hwlib_test

import (
	"testing"

	"github.com/db47h/hwgen"
	"github.com/stretchr/testify/require"
)

// settle settles the circuit rooted at b and fails the test on error.
func settle(t *testing.T, b hwgen.Block) {
	t.Helper()
	require.NoError(t, hwgen.Settle(b, 0))
}

// cycle runs a full clock cycle on clock.
func cycle(t *testing.T, b hwgen.Block, clock *hwgen.Signal) {
	t.Helper()
	clock.SetNext(1)
	settle(t, b)
	clock.SetNext(0)
	settle(t, b)
}
