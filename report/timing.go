package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-eda/netlist"
)

// FormatTiming renders gn's most recently computed timing, plus the
// critical path reconstructed by sta.Engine.CriticalPath, as
//
//	Circuit delay: <delay> ps
//
//	Gate slacks:
//	<PREFIX>-n<name>: <slack> ps
//	...
//
//	Critical path:
//	<PREFIX>-n<name>, <PREFIX>-n<name>, ...
//
// Gate slacks are listed in ascending node-id order. path is the node-id
// sequence CriticalPath returned; an empty or nil path renders an empty
// critical-path line.
func FormatTiming(gn *netlist.GateNetlist, path []int) string {
	nodes := gn.Nodes()

	circuitDelay := 0.0
	for _, n := range nodes {
		if n.IsPrimaryOutput && n.Timing.ArrivalPs > circuitDelay {
			circuitDelay = n.Timing.ArrivalPs
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Circuit delay: %.2f ps\n\n", circuitDelay)

	b.WriteString("Gate slacks:\n")
	for _, n := range nodes {
		fmt.Fprintf(&b, "%s-n%s: %.2f ps\n", nodePrefix(n), n.Name, n.Timing.SlackPs)
	}

	b.WriteString("\nCritical path:\n")
	names := make([]string, 0, len(path))
	for _, id := range path {
		n, err := gn.Node(id)
		if err != nil {
			continue
		}
		names = append(names, fmt.Sprintf("%s-n%s", nodePrefix(n), n.Name))
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n")

	return b.String()
}

// nodePrefix returns the report prefix for node: INP for a primary
// input, OUT for a primary output (whether or not it also carries a
// GateType — the flag alone decides), otherwise the upper-case gate
// type.
func nodePrefix(n *netlist.GateNode) string {
	switch {
	case n.IsPrimaryInput:
		return "INP"
	case n.IsPrimaryOutput:
		return "OUT"
	default:
		return n.GateType
	}
}
