package toposort_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlath-eda/netlist"
	"github.com/katalvlaran/lvlath-eda/toposort"
	"github.com/stretchr/testify/require"
)

func TestSort_NilGraph(t *testing.T) {
	_, err := toposort.Sort(nil)
	require.ErrorIs(t, err, toposort.ErrGraphNil)
}

func TestSort_LinearChain(t *testing.T) {
	gn := netlist.NewGateNetlist()
	a, _ := gn.AddNode("a", "", 0, true, false)
	b, _ := gn.AddNode("b", "NAND", 1, false, false)
	c, _ := gn.AddNode("c", "NAND", 1, false, false)
	require.NoError(t, gn.Connect(a, b))
	require.NoError(t, gn.Connect(b, c))

	order, err := toposort.Sort(gn)
	require.NoError(t, err)
	require.Equal(t, []int{a, b, c}, order)
}

// TestSort_DiamondTieBreak covers two independent zero-in-degree roots:
// Kahn's algorithm must dequeue the smaller ID first.
func TestSort_DiamondTieBreak(t *testing.T) {
	gn := netlist.NewGateNetlist()
	lo, _ := gn.AddNode("lo", "", 0, true, false)  // id 0
	hi, _ := gn.AddNode("hi", "", 0, true, false)  // id 1
	sink, _ := gn.AddNode("x", "NAND", 2, false, false)
	require.NoError(t, gn.Connect(hi, sink))
	require.NoError(t, gn.Connect(lo, sink))

	order, err := toposort.Sort(gn)
	require.NoError(t, err)
	require.Equal(t, []int{lo, hi, sink}, order)
}

func TestSort_CycleDetected(t *testing.T) {
	gn := netlist.NewGateNetlist()
	a, _ := gn.AddNode("a", "NAND", 1, false, false)
	b, _ := gn.AddNode("b", "NAND", 1, false, false)
	require.NoError(t, gn.Connect(a, b))
	require.NoError(t, gn.Connect(b, a))

	_, err := toposort.Sort(gn)
	require.ErrorIs(t, err, toposort.ErrCycleDetected)
	var cycleErr *toposort.CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.ElementsMatch(t, []int{a, b}, cycleErr.UnplacedNodeIDs)
}

type recordingObserver struct {
	dangling [][2]int
}

func (r *recordingObserver) OnDanglingFanout(from, missing int) {
	r.dangling = append(r.dangling, [2]int{from, missing})
}

func TestSort_DanglingFanoutIsWarningNotFailure(t *testing.T) {
	gn := netlist.NewGateNetlist()
	a, err := gn.AddNode("a", "", 0, true, false)
	require.NoError(t, err)
	node, err := gn.Node(a)
	require.NoError(t, err)
	node.FanOut = append(node.FanOut, 999) // dangling reference, bypassing Connect

	obs := &recordingObserver{}
	order, err := toposort.Sort(gn, toposort.WithObserver(obs))
	require.NoError(t, err)
	require.Equal(t, []int{a}, order)
	require.Equal(t, [][2]int{{a, 999}}, obs.dangling)
}

func TestSort_CancelledContext(t *testing.T) {
	gn := netlist.NewGateNetlist()
	_, err := gn.AddNode("a", "", 0, true, false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = toposort.Sort(gn, toposort.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
