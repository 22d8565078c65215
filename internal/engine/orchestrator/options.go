package orchestrator

// Option customises a single PrepareContext call.
type Option func(*options)

type options struct {
	topK        int
	tokenBudget int
	forceFull   bool
}

// WithTopK overrides the number of ranked files returned.
func WithTopK(k int) Option {
	return func(o *options) {
		o.topK = k
	}
}

// WithTokenBudget caps the payload at tokens. Zero means unlimited.
func WithTokenBudget(tokens int) Option {
	return func(o *options) {
		o.tokenBudget = tokens
	}
}

// WithForceFull requests a full context resend. The turn is still recorded by
// the tracker.
func WithForceFull() Option {
	return func(o *options) {
		o.forceFull = true
	}
}

func (e *Engine) options(opts []Option) options {
	o := options{
		topK:        e.cfg.Scorer.TopK,
		tokenBudget: e.cfg.Context.TokenBudget,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.topK <= 0 {
		o.topK = e.cfg.Scorer.TopK
	}
	if o.tokenBudget < 0 {
		o.tokenBudget = 0
	}
	return o
}
