package toposort

import "context"

// Observer receives notifications about non-fatal anomalies Sort
// encounters. It has no default logging implementation; a caller
// wanting text output supplies its own Observer that writes to whatever
// logger it prefers.
type Observer interface {
	// OnDanglingFanout fires once per fan-out edge that names a node ID
	// absent from the graph. Such edges are warnings, not failures.
	OnDanglingFanout(fromNodeID, missingNodeID int)
}

// NopObserver discards every notification. It is the zero value used
// when no Option supplies an Observer.
type NopObserver struct{}

func (NopObserver) OnDanglingFanout(int, int) {}

// Option configures Sort.
type Option func(*options)

type options struct {
	ctx context.Context
	obs Observer
}

func defaultOptions() options {
	return options{ctx: context.Background(), obs: NopObserver{}}
}

// WithCancelContext sets the context checked for cancellation between
// node placements. A nil context is ignored.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithObserver installs obs to receive dangling-fanout notifications. A
// nil obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.obs = obs
		}
	}
}
