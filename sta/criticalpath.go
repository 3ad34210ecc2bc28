package sta

import (
	"math"

	"github.com/katalvlaran/lvlath-eda/netlist"
)

// CriticalPath reconstructs the longest (max-arrival) path through the
// timed netlist: from the primary output with maximum arrival (whether
// or not that node also carries a GateType), walking backward through
// the fan-in with the smallest slack at each step, until a primary
// input or a fan-in-less node is reached. Returns nil if no primary
// output exists, or if the maximum arrival is zero and the netlist has
// no primary input at all.
func (e *Engine) CriticalPath() []int {
	gn := e.gn
	nodes := gn.Nodes()

	var sink *netlist.GateNode
	maxArrival := math.Inf(-1)
	for _, n := range nodes {
		if !n.IsPrimaryOutput {
			continue
		}
		if sink == nil || n.Timing.ArrivalPs > maxArrival ||
			(n.Timing.ArrivalPs == maxArrival && n.ID < sink.ID) {
			sink = n
			maxArrival = n.Timing.ArrivalPs
		}
	}
	if sink == nil {
		return nil
	}
	if maxArrival == 0 {
		hasPI := false
		for _, n := range nodes {
			if n.IsPrimaryInput {
				hasPI = true
				break
			}
		}
		if !hasPI {
			return nil
		}
	}

	if len(sink.FanIn) == 0 {
		return []int{sink.ID}
	}

	var cur *netlist.GateNode
	for _, fid := range sink.FanIn {
		fnode, _ := gn.Node(fid)
		if cur == nil || betterCriticalFanIn(fnode, cur) {
			cur = fnode
		}
	}
	path := make([]int, 0, len(nodes))
	for {
		path = append(path, cur.ID)
		if cur.IsPrimaryInput || len(cur.FanIn) == 0 {
			break
		}
		var best *netlist.GateNode
		for _, fid := range cur.FanIn {
			fnode, _ := gn.Node(fid)
			if best == nil || betterCriticalFanIn(fnode, best) {
				best = fnode
			}
		}
		cur = best
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path = append(path, sink.ID)

	return path
}

// betterCriticalFanIn reports whether a is the preferred fan-in over b on
// the critical-path walk: smaller slack wins, ties broken by larger
// arrival, then smaller id.
func betterCriticalFanIn(a, b *netlist.GateNode) bool {
	if a.Timing.SlackPs != b.Timing.SlackPs {
		return a.Timing.SlackPs < b.Timing.SlackPs
	}
	if a.Timing.ArrivalPs != b.Timing.ArrivalPs {
		return a.Timing.ArrivalPs > b.Timing.ArrivalPs
	}
	return a.ID < b.ID
}
