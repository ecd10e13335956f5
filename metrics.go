package rtqueue

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the Prometheus collectors a Queue reports through when
// constructed with [WithMetrics].
type metrics struct {
	pushTotal   prometheus.Counter
	popTotal    prometheus.Counter
	occupancy   prometheus.Gauge
	waitSeconds prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer, name string) *metrics {
	m := &metrics{
		pushTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: name + "_push_total",
			Help: "Total number of successful pushes.",
		}),
		popTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: name + "_pop_total",
			Help: "Total number of successful pops.",
		}),
		occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name + "_occupancy",
			Help: "Approximate number of initialized slots.",
		}),
		waitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name + "_gating_wait_seconds",
			Help:    "Time spent in the push/pop gating semaphore wait.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.pushTotal, m.popTotal, m.occupancy, m.waitSeconds)
	return m
}
