package sta

import (
	"context"

	"github.com/katalvlaran/lvlath-eda/celllib"
	"github.com/katalvlaran/lvlath-eda/netlist"
	"github.com/katalvlaran/lvlath-eda/toposort"
)

// Engine performs static timing analysis over a netlist.GateNetlist using
// a celllib.Library for per-gate-type delay/slew data. An Engine is
// reusable across Run calls; each Run resets all timing state first.
type Engine struct {
	gn           *netlist.GateNetlist
	lib          *celllib.Library
	opts         engineOptions
	circuitDelay float64
}

// NewEngine constructs an Engine over gn and lib. Returns ErrNilNetlist
// or ErrNilLibrary.
func NewEngine(gn *netlist.GateNetlist, lib *celllib.Library, opts ...Option) (*Engine, error) {
	if gn == nil {
		return nil, ErrNilNetlist
	}
	if lib == nil {
		return nil, ErrNilLibrary
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{gn: gn, lib: lib, opts: o}, nil
}

// CircuitDelay returns the maximum arrival among primary outputs from
// the most recently completed Run/RunParallel.
func (e *Engine) CircuitDelay() float64 { return e.circuitDelay }

// Run resets all timing state, computes a topological order, and runs the
// forward and backward passes serially. Returns the circuit delay.
func (e *Engine) Run(ctx context.Context) (float64, error) {
	e.gn.ResetAllTiming()

	order, err := toposort.Sort(e.gn, toposort.WithCancelContext(ctx))
	if err != nil {
		return 0, err
	}

	circuitDelay, err := e.forwardPass(order)
	if err != nil {
		return 0, err
	}
	e.circuitDelay = circuitDelay

	if err := e.backwardPass(order, circuitDelay); err != nil {
		return 0, err
	}

	return circuitDelay, nil
}
