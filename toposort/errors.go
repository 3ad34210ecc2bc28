package toposort

import (
	"errors"
	"fmt"
)

// ErrGraphNil is returned when a nil *netlist.GateNetlist is passed to Sort.
var ErrGraphNil = errors.New("toposort: graph is nil")

// ErrCycleDetected is the sentinel wrapped by CycleError; check with
// errors.Is(err, ErrCycleDetected) without caring about the unplaced set.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// CycleError reports that Kahn's algorithm terminated before placing every
// node: fewer nodes were dequeued than exist in the graph, so the
// unplaced remainder participates in (or is reachable only through) a
// cycle.
type CycleError struct {
	// UnplacedNodeIDs lists every node never reaching zero in-degree,
	// in ascending ID order.
	UnplacedNodeIDs []int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("toposort: cycle detected, %d node(s) unplaced: %v", len(e.UnplacedNodeIDs), e.UnplacedNodeIDs)
}

// Unwrap lets errors.Is(err, ErrCycleDetected) succeed against a *CycleError.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}
