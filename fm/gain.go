package fm

import "github.com/katalvlaran/lvlath-eda/netlist"

// computeGain evaluates cellID's gain from scratch: the signed reduction
// in cut size a move to the opposite partition would produce, summed
// across every incident net's before/after cut status.
//
// A net is cut when it touches both partitions. Comparing that status
// before and after a hypothetical move of cellID, for each incident net,
// gives the net's contribution to the move's total gain (see DESIGN.md
// for why this formulation was chosen over a more case-heavy one).
func computeGain(nl *netlist.FMNetlist, cellID int) int {
	cell, err := nl.Cell(cellID)
	if err != nil {
		return 0
	}
	p := cell.Partition
	other := 1 - p

	gain := 0
	for _, netID := range cell.NetIDs {
		net, err := nl.Net(netID)
		if err != nil {
			continue
		}
		fromCount := net.PartitionCount[p]
		toCount := net.PartitionCount[other]

		cutBefore := fromCount > 0 && toCount > 0
		cutAfter := fromCount > 1 // toCount+1 is always > 0

		switch {
		case cutBefore && !cutAfter:
			gain++
		case !cutBefore && cutAfter:
			gain--
		}
	}

	return gain
}
