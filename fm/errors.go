package fm

import "errors"

// ErrNilNetlist is returned by NewEngine when handed a nil netlist.
var ErrNilNetlist = errors.New("fm: netlist is nil")

// ErrInvariantViolation wraps a detected bookkeeping inconsistency (a net
// partition-count drift, an unreachable bucket state) at a pass boundary.
// A correct engine never returns this; its presence signals an internal
// bug, not a data problem.
var ErrInvariantViolation = errors.New("fm: invariant violation")
