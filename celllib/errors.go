package celllib

import "errors"

// Sentinel errors for cell library construction.
var (
	// ErrTableMalformed indicates a table is not 7x7 or its breakpoint
	// vectors are not strictly increasing.
	ErrTableMalformed = errors.New("celllib: table malformed (not 7x7 or non-monotone indices)")

	// ErrEmptyGateType indicates a RawEntry was supplied under an empty
	// gate-type key.
	ErrEmptyGateType = errors.New("celllib: gate type name is empty")

	// ErrUnknownGateType indicates a lookup referenced a gate type the
	// Library has no entry for.
	ErrUnknownGateType = errors.New("celllib: unknown gate type")

	// ErrNegativeCapacitance indicates a RawEntry's capacitance was < 0.
	ErrNegativeCapacitance = errors.New("celllib: capacitance must be >= 0")
)
