// Package fm implements the Fiduccia-Mattheyses two-way min-cut
// partitioning engine, composed from balance.Model (feasibility),
// gainbucket.Bucket (move selection), and netlist.FMNetlist (the
// hypergraph being partitioned). Move application and undo are expressed
// as free functions operating on the netlist and bucket rather than
// engine methods, so engine state stays exclusively in the Engine struct.
package fm
