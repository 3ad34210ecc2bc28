// Package sta performs static timing analysis over a netlist.GateNetlist
// whose gate delays and slews come from a celllib.Library: a forward pass
// propagates arrival time and output slew from primary inputs to primary
// outputs along a toposort.Sort order, a backward pass propagates
// required time and slack from outputs back to inputs, and CriticalPath
// reconstructs the longest arrival-to-output chain by walking the
// smallest-slack fan-in at each step.
//
// Engine.Run evaluates one node at a time in topological order.
// Engine.RunParallel evaluates the same two passes an antichain at a
// time — every node whose dependencies are already timed is handed to a
// bounded worker pool together — and is guaranteed to produce the same
// arrival, slew, required, and slack values as Run.
package sta
