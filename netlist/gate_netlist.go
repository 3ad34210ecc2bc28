package netlist

import "sync"

// GateNetlist is the directed gate/signal DAG backing the sta package.
// Construction (AddNode/Connect) is driven by an external parser; timing
// fields are mutated exclusively by sta.Engine. muNodes/muEdges follow the
// same split-lock convention as FMNetlist for the same reason: registration
// and read traffic are the only concurrent activity this type itself needs
// to arbitrate.
type GateNetlist struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes  []*GateNode
	nameID map[string]int
}

// NewGateNetlist returns an empty, ready-to-populate GateNetlist.
func NewGateNetlist() *GateNetlist {
	return &GateNetlist{nameID: make(map[string]int)}
}

// AddNode registers a new gate node and returns its assigned ID. IDs are
// dense, registration-ordered integers. gateType is "" for primary
// input/output markers. Returns ErrEmptyCellName (reused: "node name is
// empty" in this context) if name is empty, or ErrDuplicateCellName if the
// name is already registered.
func (gn *GateNetlist) AddNode(name, gateType string, declaredFanIn int, isPI, isPO bool) (int, error) {
	if name == "" {
		return 0, ErrEmptyCellName
	}
	gn.muNodes.Lock()
	defer gn.muNodes.Unlock()

	if _, exists := gn.nameID[name]; exists {
		return 0, ErrDuplicateCellName
	}
	id := len(gn.nodes)
	gn.nodes = append(gn.nodes, &GateNode{
		ID:              id,
		Name:            name,
		GateType:        gateType,
		DeclaredFanIn:   declaredFanIn,
		IsPrimaryInput:  isPI,
		IsPrimaryOutput: isPO,
	})
	gn.nameID[name] = id

	return id, nil
}

// NodeIDByName resolves a previously registered node's ID. Returns
// ok=false if the name is unregistered; callers surface this as a
// DanglingReference warning rather than failing the parse.
func (gn *GateNetlist) NodeIDByName(name string) (int, bool) {
	gn.muNodes.RLock()
	defer gn.muNodes.RUnlock()
	id, ok := gn.nameID[name]
	return id, ok
}

// Connect records a directed edge driverID -> sinkID (driver feeds sink's
// fan-in). Order of calls determines FanIn order on sinkID. Returns
// ErrNodeNotFound if either endpoint does not exist.
func (gn *GateNetlist) Connect(driverID, sinkID int) error {
	gn.muNodes.Lock()
	defer gn.muNodes.Unlock()
	gn.muEdges.Lock()
	defer gn.muEdges.Unlock()

	if driverID < 0 || driverID >= len(gn.nodes) {
		return ErrNodeNotFound
	}
	if sinkID < 0 || sinkID >= len(gn.nodes) {
		return ErrNodeNotFound
	}
	gn.nodes[sinkID].FanIn = append(gn.nodes[sinkID].FanIn, driverID)
	gn.nodes[driverID].FanOut = append(gn.nodes[driverID].FanOut, sinkID)

	return nil
}

// Node returns the gate node with the given ID. Returns ErrNodeNotFound if
// out of range.
func (gn *GateNetlist) Node(id int) (*GateNode, error) {
	gn.muNodes.RLock()
	defer gn.muNodes.RUnlock()
	if id < 0 || id >= len(gn.nodes) {
		return nil, ErrNodeNotFound
	}
	return gn.nodes[id], nil
}

// NumNodes returns the number of registered gate nodes.
func (gn *GateNetlist) NumNodes() int {
	gn.muNodes.RLock()
	defer gn.muNodes.RUnlock()
	return len(gn.nodes)
}

// Nodes returns the full slice of gate nodes in ID order. The slice header
// is a fresh copy; the pointed-to GateNodes are shared.
func (gn *GateNetlist) Nodes() []*GateNode {
	gn.muNodes.RLock()
	defer gn.muNodes.RUnlock()
	out := make([]*GateNode, len(gn.nodes))
	copy(out, gn.nodes)
	return out
}

// ResetAllTiming resets the Timing and load-capacitance cache of every
// node; called once at the start of every sta.Engine.Run.
func (gn *GateNetlist) ResetAllTiming() {
	gn.muNodes.RLock()
	defer gn.muNodes.RUnlock()
	for _, n := range gn.nodes {
		n.ResetTiming()
	}
}

// CachedLoadCap returns the node's cached load capacitance and whether the
// cache is valid (set since the last ResetAllTiming).
func (g *GateNode) CachedLoadCap() (float64, bool) {
	return g.loadCapCached, g.loadCapCacheSet
}

// SetCachedLoadCap stores the node's load capacitance for reuse within a
// single sta.Engine.Run.
func (g *GateNode) SetCachedLoadCap(v float64) {
	g.loadCapCached = v
	g.loadCapCacheSet = true
}
