// Package celllib holds, per gate type, an input pin capacitance and two
// 7×7 lookup tables (cell delay and output slew) indexed by input-slew and
// output-load breakpoints. A Library is built once from raw per-cell data
// (as an external Liberty parser would hand over) and is read-only
// thereafter — safe to share across concurrent STA traversals with no
// locking.
//
// The mutable-builder/immutable-result split mirrors matrix's
// Builder/Dense pair: RawEntry is the loosely-validated input shape a
// parser fills in; Build validates it into an Entry that the rest of the
// toolkit can trust without re-checking.
package celllib
