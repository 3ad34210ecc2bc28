package netlist

// Clone returns a deep copy of the FMNetlist: cells, nets, and all
// incidence/partition state, but with BucketHandle reset to NoBucketHandle
// on every cell (the clone is not registered with any gainbucket.Bucket).
// Used by tests and by callers that want to try a speculative pass without
// risking the live netlist (mirrors core.Graph.Clone's deep-copy contract).
func (nl *FMNetlist) Clone() *FMNetlist {
	nl.muCells.RLock()
	nl.muNets.RLock()
	defer nl.muCells.RUnlock()
	defer nl.muNets.RUnlock()

	out := NewFMNetlist()
	out.cells = make([]*Cell, len(nl.cells))
	for i, c := range nl.cells {
		netIDs := make([]int, len(c.NetIDs))
		copy(netIDs, c.NetIDs)
		idx := make(map[int]int, len(c.netIndex))
		for k, v := range c.netIndex {
			idx[k] = v
		}
		out.cells[i] = &Cell{
			ID:           c.ID,
			Name:         c.Name,
			Partition:    c.Partition,
			Gain:         c.Gain,
			Locked:       c.Locked,
			BucketHandle: NoBucketHandle,
			NetIDs:       netIDs,
			netIndex:     idx,
		}
		out.cellIdx[c.Name] = c.ID
	}
	out.nets = make([]*Net, len(nl.nets))
	for i, n := range nl.nets {
		cellIDs := make([]int, len(n.CellIDs))
		copy(cellIDs, n.CellIDs)
		idx := make(map[int]int, len(n.cellIndex))
		for k, v := range n.cellIndex {
			idx[k] = v
		}
		out.nets[i] = &Net{
			ID:             n.ID,
			Name:           n.Name,
			CellIDs:        cellIDs,
			PartitionCount: n.PartitionCount,
			cellIndex:      idx,
		}
		out.netIdx[n.Name] = n.ID
	}

	return out
}
