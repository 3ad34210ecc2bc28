package netlist

// NoBucketHandle is the sentinel value stored on a locked (or not-yet-seeded)
// Cell's BucketHandle field. It mirrors a nulled non-owning pointer: only
// a handle issued by a gainbucket.Bucket ever replaces it, and the fm
// package sets it back to NoBucketHandle when it removes the cell from
// the bucket.
const NoBucketHandle = -1

// Cell is one FM-view hypergraph node: a placeable gate with a current
// partition assignment, a signed gain, a lock flag, and the set of nets it
// is incident to. Cell is the unit of movement for the fm package.
type Cell struct {
	// ID is a stable, dense integer identity assigned at registration time.
	ID int

	// Name is the human-readable (parser-supplied) identifier.
	Name string

	// Partition is the current side, 0 or 1.
	Partition int

	// Gain is the signed reduction in cut size a move of this cell would
	// produce; valid only while Locked is false.
	Gain int

	// Locked is true for the remainder of the current FM pass once the cell
	// has been moved.
	Locked bool

	// BucketHandle is a non-owning reference into the gainbucket arena that
	// currently holds this cell, or NoBucketHandle if the cell is locked or
	// has not yet been seeded. Ownership of the referenced storage belongs
	// to the gainbucket package; Cell only remembers where to look.
	BucketHandle int

	// NetIDs is the duplicate-free, insertion-ordered list of nets this
	// cell is incident to.
	NetIDs []int

	netIndex map[int]int // NetIDs membership index, for O(1) duplicate checks
}

// hasNet reports whether the cell is already incident to netID.
func (c *Cell) hasNet(netID int) bool {
	_, ok := c.netIndex[netID]
	return ok
}

// addNet records incidence to netID; caller must have already checked
// hasNet. Not exported: FMNetlist.Connect is the only valid entry point,
// since it must also update the Net's own cell list.
func (c *Cell) addNet(netID int) {
	if c.netIndex == nil {
		c.netIndex = make(map[int]int)
	}
	c.netIndex[netID] = len(c.NetIDs)
	c.NetIDs = append(c.NetIDs, netID)
}

// Net is one FM-view hyperedge: a named set of incident cells plus the
// per-partition cell counts FM maintains incrementally.
type Net struct {
	// ID is a stable, dense integer identity assigned at registration time.
	ID int

	// Name is the human-readable (parser-supplied) identifier.
	Name string

	// CellIDs is the duplicate-free, insertion-ordered list of incident cells.
	CellIDs []int

	// PartitionCount[p] is the number of incident cells currently on side p.
	PartitionCount [2]int

	cellIndex map[int]int // CellIDs membership index
}

// IsCut reports whether the net currently has cells on both sides.
func (n *Net) IsCut() bool {
	return n.PartitionCount[0] > 0 && n.PartitionCount[1] > 0
}

func (n *Net) hasCell(cellID int) bool {
	_, ok := n.cellIndex[cellID]
	return ok
}

func (n *Net) addCell(cellID int) {
	if n.cellIndex == nil {
		n.cellIndex = make(map[int]int)
	}
	n.cellIndex[cellID] = len(n.CellIDs)
	n.CellIDs = append(n.CellIDs, cellID)
}

// FMSnapshot is an immutable, read-only summary of an FMNetlist's derived
// state, returned by FMNetlist.Snapshot. It holds no *Cell/*Net pointers,
// so a consumer reading it cannot disturb the engine's invariants (unlike
// the shared pointers returned by Cell, Cells, Net and Nets).
type FMSnapshot struct {
	CutSize        int
	PartitionSize  [2]int
	NumCells       int
	NumNets        int
}

// GateNode is one STA-view DAG node: a combinational gate, a primary input,
// a primary output marker, or a pseudo-input/pseudo-output split of a DFF.
// Timing is reset at the start of every sta.Engine.Run via ResetTiming.
type GateNode struct {
	// ID is a stable, dense integer identity assigned at registration time.
	ID int

	// Name is the human-readable (parser-supplied) identifier.
	Name string

	// GateType is the uppercased gate-type string (e.g. "NAND"), or "" for
	// primary input/output markers.
	GateType string

	// DeclaredFanIn is the fan-in count declared by the netlist source,
	// used only for diagnostics; FanIn is the authoritative list.
	DeclaredFanIn int

	// FanIn lists driver node IDs in declaration order; order matters for
	// reproducing library-supplied per-pin timing when it varies by pin
	// (the current library model does not, but the order is preserved so a
	// richer library could use it without a netlist re-read).
	FanIn []int

	// FanOut lists the IDs of nodes this node drives. Order is insertion
	// order and is not semantically significant.
	FanOut []int

	// IsPrimaryInput marks a true circuit input or a DFF-output pseudo-node.
	IsPrimaryInput bool

	// IsPrimaryOutput marks a true circuit output or a DFF-input pseudo-node.
	IsPrimaryOutput bool

	// Timing holds the mutable arrival/slew/required/slack state populated
	// by the sta package. Zero value until the first Run.
	Timing Timing

	loadCapCached    float64
	loadCapCacheSet  bool
}

// Timing is the STA-populated state of a GateNode.
type Timing struct {
	ArrivalPs    float64
	OutputSlewPs float64
	RequiredPs   float64
	SlackPs      float64
}

// ResetTiming clears the node's Timing and load-capacitance cache; called
// once per GateNetlist at the start of sta.Engine.Run.
func (g *GateNode) ResetTiming() {
	g.Timing = Timing{}
	g.loadCapCacheSet = false
}
