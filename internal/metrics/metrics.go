// Package metrics wires CFTP driver diagnostics into Prometheus, optional
// instrumentation around the core that the core itself never reads.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"latticecftp/pkg/cftp"
)

// Collector records driver-loop diagnostics as Prometheus metrics, scoped
// to its own registry so multiple CLIs (or test runs) don't collide on the
// global default registry.
type Collector struct {
	registry        *prometheus.Registry
	restarts        prometheus.Counter
	windowDoublings prometheus.Counter
	finalWindow     prometheus.Gauge
	totalSteps      prometheus.Counter
}

// NewCollector registers a fresh set of metrics under the given variant
// label.
func NewCollector(variant string) *Collector {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"variant": variant}
	c := &Collector{
		registry: reg,
		restarts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "cftp_outer_restarts_total",
			Help:        "Number of CFTP outer-loop restarts before coalescence.",
			ConstLabels: labels,
		}),
		windowDoublings: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "cftp_window_doublings_total",
			Help:        "Number of times the look-back window was doubled.",
			ConstLabels: labels,
		}),
		finalWindow: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name:        "cftp_final_window",
			Help:        "Look-back window length at coalescence.",
			ConstLabels: labels,
		}),
		totalSteps: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "cftp_total_steps_total",
			Help:        "Total coupled steps applied across all restarts.",
			ConstLabels: labels,
		}),
	}
	return c
}

// Observe records a completed Sample call's stats.
func (c *Collector) Observe(stats cftp.Stats) {
	c.restarts.Add(float64(stats.Restarts))
	if stats.Restarts > 1 {
		c.windowDoublings.Add(float64(stats.Restarts - 1))
	}
	c.finalWindow.Set(float64(stats.FinalWindow))
	c.totalSteps.Add(float64(stats.TotalSteps))
}

// Handler returns the /metrics HTTP handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on addr. It runs until the
// process exits or the listener errs, and then returns that error. Both CLIs
// start it in a goroutine only when -metrics_addr is set, and discard the
// returned error.
func Serve(addr string, c *Collector) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return http.ListenAndServe(addr, mux)
}
