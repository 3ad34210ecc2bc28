package fm

import "context"

// ThresholdFunc computes the stagnation threshold for the given
// 1-indexed pass number: RunPass stops early once its "moves since last
// improvement" counter reaches this value. The default,
// DefaultThresholdSchedule, keeps a pinned numeric sequence but exposes
// it as a swappable knob rather than a hardcoded constant.
type ThresholdFunc func(pass int) int

// DefaultThresholdSchedule is the default stagnation schedule: 2000 for
// pass 1, decreasing by 100 per pass, floored at 500.
func DefaultThresholdSchedule(pass int) int {
	const (
		start        = 2000
		min          = 500
		decreasePass = 100
	)
	t := start - (pass-1)*decreasePass
	if t < min {
		return min
	}
	return t
}

// Observer receives move-by-move and pass-by-pass notifications. The
// zero value to use when none is supplied is NopObserver; this mirrors
// the hook-based observability the rest of the module favors over a
// logging dependency, passed explicitly rather than reached through a
// global singleton.
type Observer interface {
	// OnMoveApplied fires after a move is applied within a pass.
	OnMoveApplied(pass int, m Move)
	// OnMoveReverted fires while undoing moves back to the best index.
	OnMoveReverted(pass int, m Move)
	// OnPassComplete fires once a pass finishes (after revert).
	OnPassComplete(pass int, improved bool, cutSize int)
}

// NopObserver discards every notification.
type NopObserver struct{}

func (NopObserver) OnMoveApplied(int, Move)       {}
func (NopObserver) OnMoveReverted(int, Move)      {}
func (NopObserver) OnPassComplete(int, bool, int) {}

// Option configures a new Engine.
type Option func(*engineOptions)

type engineOptions struct {
	threshold ThresholdFunc
	obs       Observer
	ctx       context.Context
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		threshold: DefaultThresholdSchedule,
		obs:       NopObserver{},
		ctx:       context.Background(),
	}
}

// WithThresholdSchedule overrides the default adaptive stagnation
// threshold. A nil fn is ignored.
func WithThresholdSchedule(fn ThresholdFunc) Option {
	return func(o *engineOptions) {
		if fn != nil {
			o.threshold = fn
		}
	}
}

// WithObserver installs obs to receive move/pass notifications. A nil
// obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *engineOptions) {
		if obs != nil {
			o.obs = obs
		}
	}
}

// WithCancelContext stores ctx in the Engine's options. A nil context is
// ignored. Run does not read this value; it checks only the ctx passed
// to it for cancellation between passes.
func WithCancelContext(ctx context.Context) Option {
	return func(o *engineOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
