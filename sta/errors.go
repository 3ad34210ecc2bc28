package sta

import "errors"

// ErrNilNetlist is returned by NewEngine when handed a nil netlist.
var ErrNilNetlist = errors.New("sta: netlist is nil")

// ErrNilLibrary is returned by NewEngine when handed a nil library.
var ErrNilLibrary = errors.New("sta: library is nil")

// ErrUnknownGateType is returned, wrapped with the offending gate-type
// string, when a node's gate type has no entry in the library.
var ErrUnknownGateType = errors.New("sta: gate type not found in library")
