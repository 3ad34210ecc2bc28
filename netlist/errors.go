package netlist

import "errors"

// Sentinel errors for netlist construction and lookup.
var (
	// ErrEmptyCellName indicates a cell was registered with an empty name.
	ErrEmptyCellName = errors.New("netlist: cell name is empty")

	// ErrEmptyNetName indicates a net was registered with an empty name.
	ErrEmptyNetName = errors.New("netlist: net name is empty")

	// ErrDuplicateCellName indicates two cells were registered with the same name.
	ErrDuplicateCellName = errors.New("netlist: duplicate cell name")

	// ErrDuplicateNetName indicates two nets were registered with the same name.
	ErrDuplicateNetName = errors.New("netlist: duplicate net name")

	// ErrCellNotFound indicates a lookup referenced a cell ID that does not exist.
	ErrCellNotFound = errors.New("netlist: cell not found")

	// ErrNetNotFound indicates a lookup referenced a net ID that does not exist.
	ErrNetNotFound = errors.New("netlist: net not found")

	// ErrNodeNotFound indicates a lookup referenced a gate-node ID that does not exist.
	ErrNodeNotFound = errors.New("netlist: gate node not found")

	// ErrDuplicateIncidence indicates a cell was added to a net it is already incident to (I1/I5 guard).
	ErrDuplicateIncidence = errors.New("netlist: cell already incident to net")

	// ErrInvalidPartition indicates a partition value outside {0, 1} was requested.
	ErrInvalidPartition = errors.New("netlist: partition must be 0 or 1")
)
