package fm

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-eda/balance"
	"github.com/katalvlaran/lvlath-eda/gainbucket"
	"github.com/katalvlaran/lvlath-eda/netlist"
)

// Engine drives the Fiduccia-Mattheyses min-cut algorithm over a
// netlist.FMNetlist. It owns the gain bucket and the incrementally
// maintained cut size / partition sizes; the netlist's Cell/Net fields
// are the engine's exclusive mutable state during a run.
type Engine struct {
	nl             *netlist.FMNetlist
	model          *balance.Model
	bucket         *gainbucket.Bucket
	cutSize        int
	partitionSizes [2]int
	history        []Move
	opts           engineOptions
}

// NewEngine constructs an Engine over nl with balance factor r, performs
// the deterministic initial partition, and seeds the gain bucket with
// every cell. Returns ErrNilNetlist or balance.ErrInvalidBalanceFactor.
func NewEngine(nl *netlist.FMNetlist, r float64, opts ...Option) (*Engine, error) {
	if nl == nil {
		return nil, ErrNilNetlist
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := nl.NumCells()
	model, err := balance.New(n, r)
	if err != nil {
		return nil, err
	}

	maxDegree := nl.MaxDegree()
	if maxDegree == 0 {
		maxDegree = 1 // keep the bucket's slot range non-degenerate for an empty/edgeless netlist
	}
	bucket := gainbucket.New(maxDegree, n)

	e := &Engine{nl: nl, model: model, bucket: bucket, opts: o}
	if err := e.initializePartitions(); err != nil {
		return nil, err
	}

	return e, nil
}

// initializePartitions assigns the first floor(n/2) cells (in ID order)
// to partition 0 and the rest to partition 1, recomputes every net's
// partition counts and every cell's gain from scratch, sets the initial
// cut size, and seeds the gain bucket.
func (e *Engine) initializePartitions() error {
	cells := e.nl.Cells()
	n := len(cells)
	half := n / 2

	for i, cell := range cells {
		if i < half {
			cell.Partition = 0
		} else {
			cell.Partition = 1
		}
		cell.Gain = 0
		cell.Locked = false
		cell.BucketHandle = netlist.NoBucketHandle
	}
	e.partitionSizes = [2]int{half, n - half}

	for _, net := range e.nl.Nets() {
		net.PartitionCount = [2]int{}
	}
	for _, cell := range cells {
		for _, netID := range cell.NetIDs {
			net, err := e.nl.Net(netID)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
			}
			net.PartitionCount[cell.Partition]++
		}
	}

	e.cutSize = e.nl.RecomputeCutSize()

	for _, cell := range cells {
		g := computeGain(e.nl, cell.ID)
		cell.Gain = g
		h, err := e.bucket.Add(cell.ID, cell.Partition, g)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		cell.BucketHandle = h
	}

	return nil
}

// CutSize returns the engine's incrementally maintained current cut size.
func (e *Engine) CutSize() int { return e.cutSize }

// PartitionSizes returns the engine's incrementally maintained [size0, size1].
func (e *Engine) PartitionSizes() [2]int { return e.partitionSizes }

// LastPassHistory returns a copy of the move history from the most
// recently completed pass (after any revert), oldest first.
func (e *Engine) LastPassHistory() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// RunPass executes one FM pass: repeatedly picks the best feasible move,
// applies it, and tracks the best cut size seen; on exit, reverts every
// move past the best index, then unlocks and re-seeds the bucket for
// every cell whose move was kept. Returns whether the pass improved the
// cut (bestCut < initialCut).
func (e *Engine) RunPass(passNum int) (bool, error) {
	initialCut := e.cutSize
	e.history = e.history[:0]

	threshold := e.opts.threshold(passNum)
	bestCut := e.cutSize
	bestIndex := -1
	stagnation := 0
	moved := make(map[int]struct{})

	n := e.nl.NumCells()
	for i := 0; i < n && stagnation < threshold; i++ {
		cellID, partition, _, ok := e.bucket.PickBestFeasible(e.partitionSizes, e.model)
		if !ok {
			break
		}
		if _, already := moved[cellID]; already {
			break
		}

		newSizeP := e.partitionSizes[partition] - 1
		newSizeOther := e.partitionSizes[1-partition] + 1
		var s0, s1 int
		if partition == 0 {
			s0, s1 = newSizeP, newSizeOther
		} else {
			s0, s1 = newSizeOther, newSizeP
		}
		if !e.model.IsBalanced(s0, s1) {
			return false, fmt.Errorf("%w: picked move for cell %d would unbalance partitions", ErrInvariantViolation, cellID)
		}

		m, err := applyMove(e.nl, e.bucket, cellID)
		if err != nil {
			return false, err
		}
		e.partitionSizes[m.FromPartition]--
		e.partitionSizes[m.ToPartition]++
		e.cutSize += -m.Gain
		m.ResultingCutSize = e.cutSize

		e.history = append(e.history, m)
		moved[cellID] = struct{}{}
		e.opts.obs.OnMoveApplied(passNum, m)

		if m.ResultingCutSize < bestCut {
			bestCut = m.ResultingCutSize
			bestIndex = len(e.history) - 1
			stagnation = 0
		} else {
			stagnation++
		}
	}

	for i := len(e.history) - 1; i > bestIndex; i-- {
		m := e.history[i]
		if err := undoMove(e.nl, e.bucket, m); err != nil {
			return false, err
		}
		e.partitionSizes[m.ToPartition]--
		e.partitionSizes[m.FromPartition]++
		e.cutSize += m.Gain
		e.opts.obs.OnMoveReverted(passNum, m)
	}
	if bestIndex >= 0 {
		e.history = e.history[:bestIndex+1]
	} else {
		e.history = e.history[:0]
	}

	for i := 0; i <= bestIndex; i++ {
		m := e.history[i]
		cell, err := e.nl.Cell(m.CellID)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		cell.Locked = false
		g := computeGain(e.nl, m.CellID)
		cell.Gain = g
		h, err := e.bucket.Add(m.CellID, cell.Partition, g)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		cell.BucketHandle = h
	}

	recomputed := e.nl.RecomputeCutSize()
	if recomputed != e.cutSize {
		return false, fmt.Errorf("%w: cut size drifted (maintained %d, recomputed %d)", ErrInvariantViolation, e.cutSize, recomputed)
	}
	e.cutSize = recomputed

	improved := bestCut < initialCut
	e.opts.obs.OnPassComplete(passNum, improved, e.cutSize)

	return improved, nil
}

// Run drives RunPass until (a) a pass does not improve the cut, (b)
// three consecutive passes do not improve it, or (c) 50 passes have run.
// (a) necessarily fires no later than (b), since "improved" is exactly
// "this pass's best cut beat its initial cut": a single non-improving
// pass already satisfies the stop condition before three consecutive
// ones could accumulate, making (b) a belt-and-braces check rather than
// an independently reachable one.
func (e *Engine) Run(ctx context.Context) (int, error) {
	const maxPasses = 50
	consecutiveNoImprovement := 0

	for pass := 1; ; pass++ {
		select {
		case <-ctx.Done():
			return e.cutSize, ctx.Err()
		default:
		}

		improved, err := e.RunPass(pass)
		if err != nil {
			return e.cutSize, err
		}

		if improved {
			consecutiveNoImprovement = 0
		} else {
			consecutiveNoImprovement++
		}
		if consecutiveNoImprovement >= 3 {
			break
		}
		if pass >= maxPasses {
			break
		}
		if !improved {
			break
		}
	}

	return e.cutSize, nil
}
