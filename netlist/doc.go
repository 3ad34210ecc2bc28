// Package netlist defines the Cell/Net bipartite substrate consumed by the
// fm package and the gate/signal DAG substrate consumed by the sta package.
//
// Two independent types live here, not one: FMNetlist is a hypergraph (a
// Net may be incident to any number of Cells; a Cell may sit on any number
// of Nets), while GateNetlist is a directed acyclic graph with
// order-preserving fan-in lists. Forcing both shapes through a single
// pairwise-edge graph type would either lose the hyperedge semantics FM's
// cut-size invariants (I1, I2) depend on, or lose the fan-in ordering STA's
// interpolation needs — so they stay separate, each with its own
// construction and locking discipline, mirroring how core.Graph in the
// wider lvlath family keeps vertex and edge/adjacency locks independent.
//
// Both types are safe for concurrent read access once built. The
// muCells/muNets (and muNodes/muEdges) locks, in the style of
// core.Graph's muVert/muEdgeAdj split, guard registration and lookups
// only; the engines write Cell/Net/GateNode fields directly, without
// taking these locks.
package netlist
