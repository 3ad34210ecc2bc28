package sta

import (
	"context"
	"math"
	"sync"

	"github.com/katalvlaran/lvlath-eda/netlist"
	"github.com/katalvlaran/lvlath-eda/toposort"
)

// RunParallel resets all timing state and runs the same forward/backward
// computation as Run, but evaluates each topological antichain (the set
// of nodes whose fan-in, or fan-out for the backward pass, is already
// timed) with a bounded pool of workers instead of one node at a time.
// workers <= 0 falls back to the Engine's configured WithWorkers value.
// RunParallel produces results identical to Run; it exists only to
// exercise more of the machine on wide, shallow netlists.
func (e *Engine) RunParallel(ctx context.Context, workers int) (float64, error) {
	if workers <= 0 {
		workers = e.opts.workers
	}
	if workers < 1 {
		workers = 1
	}

	e.gn.ResetAllTiming()

	order, err := toposort.Sort(e.gn, toposort.WithCancelContext(ctx))
	if err != nil {
		return 0, err
	}

	forwardLayers := layersByFanIn(e.gn, order)
	for _, layer := range forwardLayers {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if err := e.runForwardLayer(layer, workers); err != nil {
			return 0, err
		}
	}

	circuitDelay := e.sinkArrivalMax()
	e.circuitDelay = circuitDelay

	margin := backwardMargin(circuitDelay)
	for _, id := range order {
		node, err := e.gn.Node(id)
		if err != nil {
			return 0, err
		}
		if node.IsPrimaryOutput {
			node.Timing.RequiredPs = margin
		} else {
			node.Timing.RequiredPs = math.Inf(1)
		}
	}

	backwardLayers := layersByFanOut(e.gn, order)
	for _, layer := range backwardLayers {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if err := e.runBackwardLayer(layer, workers); err != nil {
			return 0, err
		}
	}

	return circuitDelay, nil
}

// layersByFanIn groups order into antichains: layer 0 holds every node
// with no fan-in, layer k holds nodes whose longest fan-in chain has
// length k. A node always lands one layer after its deepest fan-in, so
// every node in a layer can be timed concurrently.
func layersByFanIn(gn *netlist.GateNetlist, order []int) [][]int {
	depth := make(map[int]int, len(order))
	var layers [][]int
	for _, id := range order {
		node, err := gn.Node(id)
		if err != nil {
			continue
		}
		d := 0
		for _, fid := range node.FanIn {
			if depth[fid]+1 > d {
				d = depth[fid] + 1
			}
		}
		depth[id] = d
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}

	return layers
}

// layersByFanOut mirrors layersByFanIn for the backward pass: layer 0
// holds every node with no fan-out, layer k holds nodes whose longest
// fan-out chain has length k. Walking order in reverse guarantees a
// node's fan-outs are assigned a depth before the node itself.
func layersByFanOut(gn *netlist.GateNetlist, order []int) [][]int {
	depth := make(map[int]int, len(order))
	var layers [][]int
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		node, err := gn.Node(id)
		if err != nil {
			continue
		}
		d := 0
		for _, sid := range node.FanOut {
			if depth[sid]+1 > d {
				d = depth[sid] + 1
			}
		}
		depth[id] = d
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}

	return layers
}

// runForwardLayer times every node in layer concurrently across a pool
// of workers. Each goroutine only reads the already-timed fan-in of the
// node it owns and only writes that node's own Timing fields, so no
// locking is needed beyond the WaitGroup barrier between layers.
func (e *Engine) runForwardLayer(layer []int, workers int) error {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	errs := make([]error, len(layer))

	for i, id := range layer {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, id int) {
			defer wg.Done()
			defer func() { <-sem }()

			node, err := e.gn.Node(id)
			if err != nil {
				errs[i] = err
				return
			}
			arrival, slew, err := e.timeNodeForward(node)
			if err != nil {
				errs[i] = err
				return
			}
			node.Timing.ArrivalPs = arrival
			node.Timing.OutputSlewPs = slew
			e.opts.obs.OnNodeTimed(id, arrival, slew)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// runBackwardLayer computes required time and slack for every node in
// layer concurrently. A primary output's required time was already
// seeded with margin before the layer walk began, whether or not it
// also carries a GateType; every other node's required time is the
// minimum, over its fan-out, of that fan-out's required time less the
// delay from this node to it.
func (e *Engine) runBackwardLayer(layer []int, workers int) error {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	errs := make([]error, len(layer))

	for i, id := range layer {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, id int) {
			defer wg.Done()
			defer func() { <-sem }()

			node, err := e.gn.Node(id)
			if err != nil {
				errs[i] = err
				return
			}
			isSink := node.IsPrimaryOutput

			if !isSink {
				if len(node.FanOut) == 0 {
					node.Timing.RequiredPs = math.Inf(1)
				} else {
					required := math.Inf(1)
					for _, sinkID := range node.FanOut {
						sink, err := e.gn.Node(sinkID)
						if err != nil {
							errs[i] = err
							return
						}

						var candidate float64
						if sink.GateType == "" {
							candidate = sink.Timing.RequiredPs
						} else {
							loadFF, err := e.loadCapacitance(sink)
							if err != nil {
								errs[i] = err
								return
							}
							delay, _, err := e.delayThrough(sink.GateType, node.Timing.OutputSlewPs, loadFF, len(sink.FanIn))
							if err != nil {
								errs[i] = err
								return
							}
							candidate = sink.Timing.RequiredPs - delay
						}
						if candidate < required {
							required = candidate
						}
					}
					node.Timing.RequiredPs = required
				}
			}

			node.Timing.SlackPs = node.Timing.RequiredPs - node.Timing.ArrivalPs
			e.opts.obs.OnBackwardDone(node.ID, node.Timing.RequiredPs, node.Timing.SlackPs)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// sinkArrivalMax returns the maximum arrival among primary outputs, or 0
// if the netlist has none.
func (e *Engine) sinkArrivalMax() float64 {
	circuitDelay := math.Inf(-1)
	sawSink := false
	for _, node := range e.gn.Nodes() {
		if node.IsPrimaryOutput {
			sawSink = true
			if node.Timing.ArrivalPs > circuitDelay {
				circuitDelay = node.Timing.ArrivalPs
			}
		}
	}
	if !sawSink {
		return 0
	}

	return circuitDelay
}
