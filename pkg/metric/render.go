// Package metric exposes Prometheus instrumentation for menu rendering.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "navmenu"

const (
	resultRendered = "rendered"
	resultEmpty    = "empty"
)

// RenderRecorder records the outcome of menu renders.
type RenderRecorder interface {
	ObserveRender(route string, items int, d time.Duration)
}

// Renders tracks menu renders per route.
type Renders struct {
	total    IncrementalCounter
	duration prometheus.Histogram
	items    prometheus.Gauge
}

// NewRenders registers the render metrics with reg.
func NewRenders(reg prometheus.Registerer) *Renders {
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "render_duration_seconds",
		Help:      "Time spent normalizing and rendering a menu.",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
	})

	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "rendered_items",
		Help:      "Number of top-level items in the last rendered menu.",
	})

	reg.MustRegister(duration, items)

	return &Renders{
		total:    NewCounterWithRegistry(reg, "renders_total", "Menu renders by route and result.", "route", "result"),
		duration: duration,
		items:    items,
	}
}

// ObserveRender implements RenderRecorder.
func (r *Renders) ObserveRender(route string, items int, d time.Duration) {
	result := resultRendered
	if items == 0 {
		result = resultEmpty
	}

	r.total.Increment(route, result)
	r.duration.Observe(d.Seconds())
	r.items.Set(float64(items))
}
