// Package toposort computes a topological order of a netlist.GateNetlist
// via Kahn's algorithm: in-degree accounting and a zero-in-degree queue,
// rather than a DFS post-order. The package shape (Option,
// WithCancelContext, a cancellation check at the top of the work loop)
// follows lvlath-eda's other context-aware graph traversals.
package toposort
