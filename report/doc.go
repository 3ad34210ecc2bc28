// Package report formats the two result shapes this module produces —
// an FM partition and an STA timing run — as plain text. Both formatters
// are pure functions over already-computed state: neither touches a
// netlist.FMNetlist/netlist.GateNetlist's mutable fields, and neither
// does any I/O of its own; callers decide where the returned string
// goes.
package report
