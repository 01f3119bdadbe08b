package status

import "sync/atomic"

// Registry is the metrics facade the analytics sink writes into
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Labels   *MetricMap[AtomicString]
	Flags    *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
		Flags:    NewMetricMap[atomic.Bool](),
	}
}

// Counter returns the current value of a counter, 0 when never incremented
func (r *Registry) Counter(key string) int64 {
	if c, ok := r.Counters.Lookup(key); ok {
		return c.Load()
	}
	return 0
}

// Sum adds every counter under prefix, e.g. "gesture." for all resolved gestures
func (r *Registry) Sum(prefix string) int64 {
	var total int64
	r.Counters.Range(prefix, func(_ string, c *atomic.Int64) {
		total += c.Load()
	})
	return total
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count() + r.Flags.Count()
}
