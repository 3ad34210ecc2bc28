package toposort

import (
	"container/heap"

	"github.com/katalvlaran/lvlath-eda/netlist"
)

// Sort computes a topological order of g's nodes via Kahn's algorithm:
// in-degree of every node is computed up front, a min-heap of
// zero-in-degree node IDs is seeded, and nodes are repeatedly popped
// (smallest ID first, for a deterministic order among ties) and appended
// to the result, decrementing each fan-out's in-degree as it goes.
//
// Returns ErrGraphNil if g is nil, or a *CycleError (wrapping
// ErrCycleDetected) if fewer nodes were placed than g contains — the
// CycleError's UnplacedNodeIDs names every node that never reached
// zero in-degree.
//
// Dangling fan-outs (a FanOut entry naming a node ID absent from g) are
// reported to the configured Observer and otherwise ignored: they are
// warnings, not failures.
func Sort(g *netlist.GateNetlist, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	n := len(nodes)
	present := make(map[int]struct{}, n)
	for _, node := range nodes {
		present[node.ID] = struct{}{}
	}

	indeg := make(map[int]int, n)
	for _, node := range nodes {
		if _, ok := indeg[node.ID]; !ok {
			indeg[node.ID] = 0
		}
		for _, fo := range node.FanOut {
			if _, ok := present[fo]; !ok {
				o.obs.OnDanglingFanout(node.ID, fo)
				continue
			}
			indeg[fo]++
		}
	}

	pq := make(idHeap, 0, n)
	for _, node := range nodes {
		if indeg[node.ID] == 0 {
			pq = append(pq, node.ID)
		}
	}
	heap.Init(&pq)

	order := make([]int, 0, n)
	for pq.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		id := heap.Pop(&pq).(int)
		order = append(order, id)

		node, err := g.Node(id)
		if err != nil {
			continue
		}
		for _, fo := range node.FanOut {
			if _, ok := present[fo]; !ok {
				continue
			}
			indeg[fo]--
			if indeg[fo] == 0 {
				heap.Push(&pq, fo)
			}
		}
	}

	if len(order) < n {
		placed := make(map[int]struct{}, len(order))
		for _, id := range order {
			placed[id] = struct{}{}
		}
		unplaced := make([]int, 0, n-len(order))
		for _, node := range nodes {
			if _, ok := placed[node.ID]; !ok {
				unplaced = append(unplaced, node.ID)
			}
		}
		return nil, &CycleError{UnplacedNodeIDs: unplaced}
	}

	return order, nil
}

// idHeap is a min-heap of node IDs, used to break Kahn's-algorithm ties
// deterministically (smallest ID dequeues first).
type idHeap []int

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
