package fm

import (
	"fmt"

	"github.com/katalvlaran/lvlath-eda/gainbucket"
	"github.com/katalvlaran/lvlath-eda/netlist"
)

// applyMove flips cellID's partition, locks it, removes it from gb, and
// updates the partition counts of every net it is incident to, then
// recomputes the gain of every unlocked neighbour. It does not touch cut
// size or partition-size bookkeeping; those are engine-level derived
// state the caller maintains from the returned Move's Gain field.
func applyMove(nl *netlist.FMNetlist, gb *gainbucket.Bucket, cellID int) (Move, error) {
	cell, err := nl.Cell(cellID)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	if cell.Locked {
		return Move{}, fmt.Errorf("%w: cell %d already locked", ErrInvariantViolation, cellID)
	}

	from := cell.Partition
	to := 1 - from
	gain := cell.Gain

	gb.Remove(cellID)
	cell.BucketHandle = netlist.NoBucketHandle
	cell.Locked = true

	for _, netID := range cell.NetIDs {
		net, err := nl.Net(netID)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		net.PartitionCount[from]--
		net.PartitionCount[to]++
	}
	cell.Partition = to

	updateNeighborGains(nl, gb, cellID)

	return Move{CellID: cellID, FromPartition: from, ToPartition: to, Gain: gain}, nil
}

// undoMove reverses applyMove: restores the cell's prior partition,
// unlocks it, restores net partition counts, refreshes neighbour gains,
// and re-inserts the cell into gb with its freshly recomputed gain.
func undoMove(nl *netlist.FMNetlist, gb *gainbucket.Bucket, m Move) error {
	cell, err := nl.Cell(m.CellID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	for _, netID := range cell.NetIDs {
		net, err := nl.Net(netID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		net.PartitionCount[m.ToPartition]--
		net.PartitionCount[m.FromPartition]++
	}
	cell.Partition = m.FromPartition
	cell.Locked = false

	updateNeighborGains(nl, gb, m.CellID)

	newGain := computeGain(nl, m.CellID)
	cell.Gain = newGain
	h, err := gb.Add(m.CellID, cell.Partition, newGain)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	cell.BucketHandle = h

	return nil
}

// updateNeighborGains recomputes and, if changed, re-files in gb the gain
// of every unlocked cell sharing a net with movedCellID (excluding
// movedCellID itself).
func updateNeighborGains(nl *netlist.FMNetlist, gb *gainbucket.Bucket, movedCellID int) {
	cell, err := nl.Cell(movedCellID)
	if err != nil {
		return
	}

	seen := make(map[int]struct{})
	for _, netID := range cell.NetIDs {
		net, err := nl.Net(netID)
		if err != nil {
			continue
		}
		for _, neighborID := range net.CellIDs {
			if neighborID == movedCellID {
				continue
			}
			if _, ok := seen[neighborID]; ok {
				continue
			}
			seen[neighborID] = struct{}{}

			neighbor, err := nl.Cell(neighborID)
			if err != nil || neighbor.Locked {
				continue
			}
			newGain := computeGain(nl, neighborID)
			if newGain == neighbor.Gain {
				continue
			}
			h, err := gb.UpdateGain(neighborID, newGain)
			if err != nil {
				continue
			}
			neighbor.Gain = newGain
			neighbor.BucketHandle = h
		}
	}
}
