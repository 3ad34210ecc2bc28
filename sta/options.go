package sta

// Observer receives per-node notifications as Run progresses.
type Observer interface {
	// OnNodeTimed fires after a node's forward arrival/slew has been set.
	OnNodeTimed(nodeID int, arrivalPs, outputSlewPs float64)
	// OnBackwardDone fires after a node's required time/slack has been set.
	OnBackwardDone(nodeID int, requiredPs, slackPs float64)
}

// NopObserver discards every notification.
type NopObserver struct{}

func (NopObserver) OnNodeTimed(int, float64, float64)    {}
func (NopObserver) OnBackwardDone(int, float64, float64) {}

// Option configures a new Engine.
type Option func(*engineOptions)

type engineOptions struct {
	obs     Observer
	workers int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		obs:     NopObserver{},
		workers: 1,
	}
}

// WithObserver installs obs to receive per-node timing notifications. A
// nil obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *engineOptions) {
		if obs != nil {
			o.obs = obs
		}
	}
}

// WithWorkers sets the worker-pool size RunParallel uses per topological
// layer. Values <= 1 are treated as 1 (no parallelism).
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		if n > 1 {
			o.workers = n
		}
	}
}
