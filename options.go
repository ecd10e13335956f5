package rtqueue

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// config holds the optional instrumentation a Queue may be constructed
// with. There is only one queue shape here, so Options configure
// observability rather than algorithm selection.
type config struct {
	logger  log.Logger
	metrics *metrics
}

func newConfig() config {
	return config{logger: log.NewNopLogger()}
}

// Option configures a [Queue] at construction time.
type Option func(*config)

// WithLogger attaches a structured logger. The queue only logs slow-wait
// diagnostics and invariant-violation errors (see [ErrOverflow]) — never
// anything on the uncontended hot path.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics registers push/pop counters, an occupancy gauge, and a
// gating-wait duration histogram under reg, prefixed by name.
func WithMetrics(reg prometheus.Registerer, name string) Option {
	return func(c *config) {
		c.metrics = newMetrics(reg, name)
	}
}
