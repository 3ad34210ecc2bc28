// Package lvlatheda is an EDA toolkit: a Fiduccia-Mattheyses two-way
// min-cut hypergraph partitioner (fm, over a netlist.FMNetlist) and a
// block-based static timing analyzer (sta, over a netlist.GateNetlist
// and a celllib.Library), sharing the balance, gainbucket, interp,
// toposort, and report support packages.
//
// There is no package-level code at the module root; import the
// subpackage you need (fm, sta, netlist, celllib, report, ...).
package lvlatheda
