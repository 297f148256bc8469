// Package status collects generator metrics for display by the commands.
package status

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64; zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is an atomic short string; zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// MaxLabelLen caps stored label length
const MaxLabelLen = 64

// Store sets the label, truncated to MaxLabelLen bytes
func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

// Load returns the label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry groups counters, gauges and labels
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
	Labels   *MetricMap[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
		Labels:   NewMetricMap[Label](),
	}
}

// Metric is one formatted entry of a snapshot
type Metric struct {
	Key   string
	Value string
}

// Snapshot returns all metrics formatted, counters first, then gauges, then labels
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Counters.Count()+r.Gauges.Count()+r.Labels.Count())
	r.Counters.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Gauges.Range(func(k string, v *Gauge) {
		out = append(out, Metric{k, fmt.Sprintf("%.3f", v.Get())})
	})
	r.Labels.Range(func(k string, v *Label) {
		out = append(out, Metric{k, v.Load()})
	})
	return out
}
