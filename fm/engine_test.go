package fm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlath-eda/balance"
	"github.com/katalvlaran/lvlath-eda/fm"
	"github.com/katalvlaran/lvlath-eda/netlist"
	"github.com/stretchr/testify/require"
)

// buildQuad constructs a 4-cell, 2-net fixture: cells a,b,c,d (IDs 0-3)
// and two 2-cell nets wired per pairing.
func buildQuad(t *testing.T, pairA, pairB [2]string) (*netlist.FMNetlist, map[string]int) {
	t.Helper()
	nl := netlist.NewFMNetlist()
	ids := make(map[string]int)
	for _, name := range []string{"a", "b", "c", "d"} {
		id, err := nl.AddCell(name)
		require.NoError(t, err)
		ids[name] = id
	}
	n1, err := nl.AddNet("N1")
	require.NoError(t, err)
	n2, err := nl.AddNet("N2")
	require.NoError(t, err)

	require.NoError(t, nl.Connect(ids[pairA[0]], n1))
	require.NoError(t, nl.Connect(ids[pairA[1]], n1))
	require.NoError(t, nl.Connect(ids[pairB[0]], n2))
	require.NoError(t, nl.Connect(ids[pairB[1]], n2))

	return nl, ids
}

func TestNewEngine_NilNetlist(t *testing.T) {
	_, err := fm.NewEngine(nil, 0.5)
	require.ErrorIs(t, err, fm.ErrNilNetlist)
}

func TestNewEngine_InvalidBalanceFactor(t *testing.T) {
	nl, _ := buildQuad(t, [2]string{"a", "b"}, [2]string{"c", "d"})
	_, err := fm.NewEngine(nl, 2.0)
	require.ErrorIs(t, err, balance.ErrInvalidBalanceFactor)
}

// TestEngine_TrivialRunStaysAtZeroCut covers an already-optimal partition:
// a,b on one net, c,d on another, initial cut 0, and the run must leave
// the cut at 0.
func TestEngine_TrivialRunStaysAtZeroCut(t *testing.T) {
	nl, ids := buildQuad(t, [2]string{"a", "b"}, [2]string{"c", "d"})
	eng, err := fm.NewEngine(nl, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, eng.CutSize())

	cut, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, cut)

	cellA, _ := nl.Cell(ids["a"])
	cellB, _ := nl.Cell(ids["b"])
	cellC, _ := nl.Cell(ids["c"])
	cellD, _ := nl.Cell(ids["d"])
	require.Equal(t, 0, cellA.Partition)
	require.Equal(t, 0, cellB.Partition)
	require.Equal(t, 1, cellC.Partition)
	require.Equal(t, 1, cellD.Partition)
	for _, c := range []*netlist.Cell{cellA, cellB, cellC, cellD} {
		require.False(t, c.Locked)
	}
}

// TestEngine_SingleImprovingSwapReachesZeroCut covers nets N1={a,c},
// N2={b,d}; initial cut 2; the engine must drive cut to 0 by swapping
// b and c (the textbook first-pass improving move for this fixture).
func TestEngine_SingleImprovingSwapReachesZeroCut(t *testing.T) {
	nl, ids := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})
	eng, err := fm.NewEngine(nl, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2, eng.CutSize())

	cut, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, cut)

	cellA, _ := nl.Cell(ids["a"])
	cellB, _ := nl.Cell(ids["b"])
	cellC, _ := nl.Cell(ids["c"])
	cellD, _ := nl.Cell(ids["d"])
	require.Equal(t, 0, cellA.Partition)
	require.Equal(t, 1, cellB.Partition)
	require.Equal(t, 0, cellC.Partition)
	require.Equal(t, 1, cellD.Partition)
}

// TestEngine_Determinism runs two independently constructed but
// structurally identical engines and requires identical results.
func TestEngine_Determinism(t *testing.T) {
	nl1, _ := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})
	nl2, _ := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})

	eng1, err := fm.NewEngine(nl1, 0.5)
	require.NoError(t, err)
	eng2, err := fm.NewEngine(nl2, 0.5)
	require.NoError(t, err)

	cut1, err := eng1.Run(context.Background())
	require.NoError(t, err)
	cut2, err := eng2.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, cut1, cut2)
	require.Equal(t, eng1.PartitionSizes(), eng2.PartitionSizes())
	for i := 0; i < nl1.NumCells(); i++ {
		c1, _ := nl1.Cell(i)
		c2, _ := nl2.Cell(i)
		require.Equal(t, c1.Partition, c2.Partition)
	}
}

// TestEngine_InvariantsHoldAfterRun checks the net partition-count,
// cut-size, and partition-size bookkeeping, plus the all-unlocked
// postcondition, on the netlist after a full Run.
func TestEngine_InvariantsHoldAfterRun(t *testing.T) {
	nl, _ := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})
	eng, err := fm.NewEngine(nl, 0.5)
	require.NoError(t, err)
	_, err = eng.Run(context.Background())
	require.NoError(t, err)

	sizes := [2]int{0, 0}
	for _, c := range nl.Cells() {
		require.False(t, c.Locked)
		sizes[c.Partition]++
	}
	require.Equal(t, eng.PartitionSizes(), sizes) // partition sizes match actual cell counts

	for _, n := range nl.Nets() {
		cellCount := len(n.CellIDs)
		require.Equal(t, cellCount, n.PartitionCount[0]+n.PartitionCount[1]) // partition counts sum to incident cell count
	}

	require.Equal(t, nl.RecomputeCutSize(), eng.CutSize()) // maintained cut size matches a from-scratch recompute
}

// TestEngine_RunPass_SinglePassMatchesRun exercises RunPass directly and
// checks LastPassHistory is non-empty after an improving pass.
func TestEngine_RunPass_SinglePassMatchesRun(t *testing.T) {
	nl, _ := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})
	eng, err := fm.NewEngine(nl, 0.5)
	require.NoError(t, err)

	improved, err := eng.RunPass(1)
	require.NoError(t, err)
	require.True(t, improved)
	require.NotEmpty(t, eng.LastPassHistory())
	require.Equal(t, 0, eng.CutSize())
}

func TestEngine_WithThresholdSchedule(t *testing.T) {
	nl, _ := buildQuad(t, [2]string{"a", "b"}, [2]string{"c", "d"})
	calls := 0
	custom := func(pass int) int {
		calls++
		return 1
	}
	eng, err := fm.NewEngine(nl, 0.5, fm.WithThresholdSchedule(custom))
	require.NoError(t, err)

	_, err = eng.RunPass(1)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

type recordingObserver struct {
	applied  int
	reverted int
	passes   int
}

func (r *recordingObserver) OnMoveApplied(int, fm.Move)    { r.applied++ }
func (r *recordingObserver) OnMoveReverted(int, fm.Move)   { r.reverted++ }
func (r *recordingObserver) OnPassComplete(int, bool, int) { r.passes++ }

func TestEngine_WithObserver(t *testing.T) {
	nl, _ := buildQuad(t, [2]string{"a", "c"}, [2]string{"b", "d"})
	obs := &recordingObserver{}
	eng, err := fm.NewEngine(nl, 0.5, fm.WithObserver(obs))
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.NoError(t, err)

	require.Greater(t, obs.applied, 0)
	require.Greater(t, obs.passes, 0)
}

func TestDefaultThresholdSchedule(t *testing.T) {
	require.Equal(t, 2000, fm.DefaultThresholdSchedule(1))
	require.Equal(t, 1900, fm.DefaultThresholdSchedule(2))
	require.Equal(t, 500, fm.DefaultThresholdSchedule(20))
	require.Equal(t, 500, fm.DefaultThresholdSchedule(100))
}
