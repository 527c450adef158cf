package process

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlocking_NeverSuspends(t *testing.T) {
	h := Blocking()
	for range 1_000_000 {
		h.BumpReds(ContextReds)
	}
	require.Equal(t, 0, h.Consumed())
	require.Equal(t, ContextReds, h.Remaining())
}

func TestYielding_AccountingLawHolds(t *testing.T) {
	h := Yielding(nil)
	h.BumpReds(1500)
	require.Equal(t, ContextReds, h.Consumed()+h.Remaining())
	require.Equal(t, 1500, h.Consumed())
	require.Equal(t, ContextReds-1500, h.Remaining())
}

func TestYielding_SuspendsAndResets(t *testing.T) {
	suspended := 0
	h := Yielding(func() { suspended++ })

	h.BumpReds(ContextReds)
	require.Equal(t, 1, suspended)
	require.Equal(t, 0, h.Consumed(), "fcalls must reset to 0 on resume")
}

func TestYielding_BumpAllForcesSuspension(t *testing.T) {
	suspended := 0
	h := Yielding(func() { suspended++ })

	h.BumpReds(10)
	h.BumpAll()
	require.Equal(t, 1, suspended)
	require.Equal(t, 0, h.Consumed())
}

func TestYielding_PctClampedTo1To100(t *testing.T) {
	h := Yielding(nil)
	require.Equal(t, 1, h.Pct(), "zero consumption still reports 1%")

	h.BumpReds(ContextReds / 2)
	require.Equal(t, 50, h.Pct())
}
