package netlist

import "sync"

// FMNetlist is the mutable cell/net hypergraph backing the fm package.
// Registration (AddCell/AddNet/Connect) is expected to happen once, driven
// by an external parser; mutation of Partition/Gain/Locked/PartitionCount
// thereafter is the exclusive responsibility of fm.Engine, which is why
// those fields are plain (not accessor-guarded) on Cell/Net: the engine is
// the sole mutator and already serializes its own moves. muCells/muNets
// only protect the registration phase and any concurrent read traffic
// (e.g. a driver inspecting Cells() while a report is being formatted),
// mirroring core.Graph's split muVert/muEdgeAdj locking.
type FMNetlist struct {
	muCells sync.RWMutex
	muNets  sync.RWMutex

	cells   []*Cell
	nets    []*Net
	cellIdx map[string]int // name -> ID, for duplicate-name detection
	netIdx  map[string]int
}

// NewFMNetlist returns an empty, ready-to-populate FMNetlist.
func NewFMNetlist() *FMNetlist {
	return &FMNetlist{
		cellIdx: make(map[string]int),
		netIdx:  make(map[string]int),
	}
}

// AddCell registers a new cell with the given name and returns its assigned
// ID. IDs are assigned densely starting at 0, in registration order, which
// is also the "id order" the fm package's deterministic initial partition
// relies on. Returns ErrEmptyCellName or ErrDuplicateCellName.
func (nl *FMNetlist) AddCell(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyCellName
	}
	nl.muCells.Lock()
	defer nl.muCells.Unlock()

	if _, exists := nl.cellIdx[name]; exists {
		return 0, ErrDuplicateCellName
	}
	id := len(nl.cells)
	nl.cells = append(nl.cells, &Cell{ID: id, Name: name, BucketHandle: NoBucketHandle})
	nl.cellIdx[name] = id

	return id, nil
}

// AddNet registers a new net with the given name and returns its assigned ID.
// Returns ErrEmptyNetName or ErrDuplicateNetName.
func (nl *FMNetlist) AddNet(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyNetName
	}
	nl.muNets.Lock()
	defer nl.muNets.Unlock()

	if _, exists := nl.netIdx[name]; exists {
		return 0, ErrDuplicateNetName
	}
	id := len(nl.nets)
	nl.nets = append(nl.nets, &Net{ID: id, Name: name})
	nl.netIdx[name] = id

	return id, nil
}

// Connect records that cellID is incident to netID, updating both sides'
// adjacency lists. Returns ErrCellNotFound, ErrNetNotFound, or
// ErrDuplicateIncidence — a cell may not connect to the same net twice.
//
// Connect does not touch PartitionCount; that is seeded by
// fm.Engine.initializePartitions once every cell has a Partition assigned,
// since PartitionCount requires a completed, consistent partition to mean
// anything.
func (nl *FMNetlist) Connect(cellID, netID int) error {
	nl.muCells.Lock()
	defer nl.muCells.Unlock()
	nl.muNets.Lock()
	defer nl.muNets.Unlock()

	if cellID < 0 || cellID >= len(nl.cells) {
		return ErrCellNotFound
	}
	if netID < 0 || netID >= len(nl.nets) {
		return ErrNetNotFound
	}
	cell := nl.cells[cellID]
	net := nl.nets[netID]
	if cell.hasNet(netID) || net.hasCell(cellID) {
		return ErrDuplicateIncidence
	}
	cell.addNet(netID)
	net.addCell(cellID)

	return nil
}

// NumCells returns the number of registered cells.
func (nl *FMNetlist) NumCells() int {
	nl.muCells.RLock()
	defer nl.muCells.RUnlock()
	return len(nl.cells)
}

// NumNets returns the number of registered nets.
func (nl *FMNetlist) NumNets() int {
	nl.muNets.RLock()
	defer nl.muNets.RUnlock()
	return len(nl.nets)
}

// Cell returns the cell with the given ID. Returns ErrCellNotFound if out
// of range. The returned pointer is shared, mutable state; callers outside
// the fm package should treat it as read-only (see FMSnapshot for a safe
// read-only summary).
func (nl *FMNetlist) Cell(id int) (*Cell, error) {
	nl.muCells.RLock()
	defer nl.muCells.RUnlock()
	if id < 0 || id >= len(nl.cells) {
		return nil, ErrCellNotFound
	}
	return nl.cells[id], nil
}

// Net returns the net with the given ID. Returns ErrNetNotFound if out of range.
func (nl *FMNetlist) Net(id int) (*Net, error) {
	nl.muNets.RLock()
	defer nl.muNets.RUnlock()
	if id < 0 || id >= len(nl.nets) {
		return nil, ErrNetNotFound
	}
	return nl.nets[id], nil
}

// Cells returns the full slice of cells in ID order. The slice header is a
// fresh copy; the pointed-to Cells are shared.
func (nl *FMNetlist) Cells() []*Cell {
	nl.muCells.RLock()
	defer nl.muCells.RUnlock()
	out := make([]*Cell, len(nl.cells))
	copy(out, nl.cells)
	return out
}

// Nets returns the full slice of nets in ID order. The slice header is a
// fresh copy; the pointed-to Nets are shared.
func (nl *FMNetlist) Nets() []*Net {
	nl.muNets.RLock()
	defer nl.muNets.RUnlock()
	out := make([]*Net, len(nl.nets))
	copy(out, nl.nets)
	return out
}

// RecomputeCutSize recomputes the cut size from scratch, ignoring any
// incrementally maintained value. Used by fm.Engine as a safety check
// against drift at the end of every pass.
func (nl *FMNetlist) RecomputeCutSize() int {
	nl.muNets.RLock()
	defer nl.muNets.RUnlock()
	cut := 0
	for _, n := range nl.nets {
		if n.IsCut() {
			cut++
		}
	}
	return cut
}

// Snapshot returns a read-only summary of the netlist's current derived
// state (I2, I3), safe to hand to a report formatter or logger without
// exposing mutable Cell/Net pointers.
func (nl *FMNetlist) Snapshot() FMSnapshot {
	nl.muCells.RLock()
	nl.muNets.RLock()
	defer nl.muCells.RUnlock()
	defer nl.muNets.RUnlock()

	var sizes [2]int
	for _, c := range nl.cells {
		sizes[c.Partition]++
	}
	cut := 0
	for _, n := range nl.nets {
		if n.IsCut() {
			cut++
		}
	}

	return FMSnapshot{
		CutSize:       cut,
		PartitionSize: sizes,
		NumCells:      len(nl.cells),
		NumNets:       len(nl.nets),
	}
}

// MaxDegree returns the maximum number of nets incident to any single cell,
// the quantity the fm package uses to size gain-bucket slot arrays
// (gain ranges over [-MaxDegree, +MaxDegree]).
func (nl *FMNetlist) MaxDegree() int {
	nl.muCells.RLock()
	defer nl.muCells.RUnlock()
	max := 0
	for _, c := range nl.cells {
		if len(c.NetIDs) > max {
			max = len(c.NetIDs)
		}
	}
	return max
}
