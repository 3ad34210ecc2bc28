package sta

import "math"

// backwardMargin returns the required-time margin applied to every
// primary output: 1.1x the circuit delay, or the smallest positive
// float64 if the circuit delay is zero.
func backwardMargin(circuitDelay float64) float64 {
	if circuitDelay == 0 {
		return math.SmallestNonzeroFloat64
	}
	return 1.1 * circuitDelay
}

// backwardPass computes required time and slack for every node, given
// order (the same topological order forwardPass consumed; backwardPass
// walks it in reverse) and the circuit delay forwardPass returned.
//
// A node counts as a circuit sink purely by IsPrimaryOutput: a node that
// is also a real gate (GateType != "") is still a sink for margin
// seeding and is never overwritten by its own fan-out below. Whether a
// fan-out adds delay is a separate question, decided by GateType alone
// — a GateType == "" fan-out is a zero-delay marker, so its required
// time applies to the driver unchanged.
func (e *Engine) backwardPass(order []int, circuitDelay float64) error {
	margin := backwardMargin(circuitDelay)

	for _, id := range order {
		node, err := e.gn.Node(id)
		if err != nil {
			return err
		}
		if node.IsPrimaryOutput {
			node.Timing.RequiredPs = margin
		} else {
			node.Timing.RequiredPs = math.Inf(1)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		node, err := e.gn.Node(order[i])
		if err != nil {
			return err
		}
		isSink := node.IsPrimaryOutput

		if len(node.FanOut) == 0 {
			if !isSink {
				node.Timing.RequiredPs = math.Inf(1)
			}
		} else {
			required := math.Inf(1)
			for _, sinkID := range node.FanOut {
				sink, err := e.gn.Node(sinkID)
				if err != nil {
					return err
				}

				var candidate float64
				if sink.GateType == "" {
					candidate = sink.Timing.RequiredPs
				} else {
					loadFF, err := e.loadCapacitance(sink)
					if err != nil {
						return err
					}
					delay, _, err := e.delayThrough(sink.GateType, node.Timing.OutputSlewPs, loadFF, len(sink.FanIn))
					if err != nil {
						return err
					}
					candidate = sink.Timing.RequiredPs - delay
				}
				if candidate < required {
					required = candidate
				}
			}
			if !isSink {
				node.Timing.RequiredPs = required
			}
		}

		node.Timing.SlackPs = node.Timing.RequiredPs - node.Timing.ArrivalPs
		e.opts.obs.OnBackwardDone(node.ID, node.Timing.RequiredPs, node.Timing.SlackPs)
	}

	return nil
}
