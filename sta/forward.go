package sta

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-eda/celllib"
	"github.com/katalvlaran/lvlath-eda/interp"
	"github.com/katalvlaran/lvlath-eda/netlist"
)

// defaultInputSlewPs is the output slew assumed at every primary input.
const defaultInputSlewPs = 2.0

// loadCapacitance returns node's load capacitance in femtofarads: the sum
// of the input-pin capacitance of every fan-out gate, using the default
// sink load for any fan-out that is itself a marker (no GateType) and for
// a node with no fan-out at all. The result is cached on node for the
// remainder of the run.
func (e *Engine) loadCapacitance(node *netlist.GateNode) (float64, error) {
	if cached, ok := node.CachedLoadCap(); ok {
		return cached, nil
	}

	var total float64
	if len(node.FanOut) == 0 {
		total = e.lib.DefaultSinkLoadFF()
	} else {
		for _, foID := range node.FanOut {
			fo, err := e.gn.Node(foID)
			if err != nil {
				return 0, err
			}
			if fo.GateType == "" {
				total += e.lib.DefaultSinkLoadFF()
				continue
			}
			cap, err := e.lib.InputCapacitanceFF(fo.GateType)
			if err != nil {
				return 0, fmt.Errorf("%w: %s", ErrUnknownGateType, fo.GateType)
			}
			total += cap
		}
	}
	node.SetCachedLoadCap(total)

	return total, nil
}

// delayThrough interpolates the delay and output slew a gate of the given
// type produces when driven at driverSlewPs into a load of loadFF,
// applying the fan-in-count delay scaling for multi-input gates. That
// scaling is a heuristic applied on top of the tables, not derived from
// the library model; output slew is not scaled.
func (e *Engine) delayThrough(gateType string, driverSlewPs, loadFF float64, fanInCount int) (delayPs, slewPs float64, err error) {
	entry, err := e.lib.Get(gateType)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownGateType, gateType)
	}

	delayPs = interp.Bilinear(entry.Delay, driverSlewPs, loadFF)
	slewPs = interp.Bilinear(entry.Slew, driverSlewPs, loadFF)

	if !celllib.IsSingleInputGateType(gateType) && fanInCount > 2 {
		delayPs *= float64(fanInCount) / 2.0
	}

	return delayPs, slewPs, nil
}

// timeNodeForward computes node's arrival and output slew, assuming every
// fan-in has already been timed. It does not write node.Timing; the
// caller does that (so the parallel path can defer the write until its
// own synchronization point).
//
// A node with GateType == "" is a pass-through marker (a primary input,
// or a primary-output wire with no gate of its own) and contributes no
// delay of its own. A node with a GateType goes through the library
// regardless of whether it is also flagged IsPrimaryOutput: the ISCAS
// convention lets a single node be both the final gate of a circuit and
// its declared output.
func (e *Engine) timeNodeForward(node *netlist.GateNode) (arrivalPs, outputSlewPs float64, err error) {
	switch {
	case node.IsPrimaryInput:
		return 0, defaultInputSlewPs, nil

	case node.GateType == "":
		if len(node.FanIn) == 0 {
			return 0, defaultInputSlewPs, nil
		}
		driver, err := e.gn.Node(node.FanIn[0])
		if err != nil {
			return 0, 0, err
		}
		return driver.Timing.ArrivalPs, driver.Timing.OutputSlewPs, nil

	default:
		loadFF, err := e.loadCapacitance(node)
		if err != nil {
			return 0, 0, err
		}

		bestArrival := 0.0
		bestSlew := 0.0
		haveBest := false
		for _, driverID := range node.FanIn {
			driver, err := e.gn.Node(driverID)
			if err != nil {
				return 0, 0, err
			}
			delay, slew, err := e.delayThrough(node.GateType, driver.Timing.OutputSlewPs, loadFF, len(node.FanIn))
			if err != nil {
				return 0, 0, err
			}
			candidate := driver.Timing.ArrivalPs + delay
			if !haveBest || candidate > bestArrival || (candidate == bestArrival && slew > bestSlew) {
				bestArrival = candidate
				bestSlew = slew
				haveBest = true
			}
		}

		return bestArrival, bestSlew, nil
	}
}

// forwardPass times every node of order (already topologically sorted),
// writing each node's Timing.ArrivalPs/OutputSlewPs as it goes, and
// returns the circuit delay: the maximum arrival among primary outputs,
// whether or not a given output node also carries a GateType.
func (e *Engine) forwardPass(order []int) (float64, error) {
	circuitDelay := math.Inf(-1)
	sawSink := false
	for _, id := range order {
		node, err := e.gn.Node(id)
		if err != nil {
			return 0, err
		}
		arrival, slew, err := e.timeNodeForward(node)
		if err != nil {
			return 0, err
		}
		node.Timing.ArrivalPs = arrival
		node.Timing.OutputSlewPs = slew
		e.opts.obs.OnNodeTimed(id, arrival, slew)

		if node.IsPrimaryOutput {
			sawSink = true
			if arrival > circuitDelay {
				circuitDelay = arrival
			}
		}
	}
	if !sawSink {
		return 0, nil
	}

	return circuitDelay, nil
}
