package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gemini_playground"

// Generation call modes.
const (
	ModeBlocking  = "blocking"
	ModeStreaming = "streaming"
	ModeChat      = "chat"
)

// Call outcomes.
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusIncomplete = "incomplete"
)

// Collector records generation calls on its own registry.
type Collector struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fragments *prometheus.CounterVec
}

// New creates a Collector with Go runtime and process collectors registered.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Generation calls by model, mode and outcome.",
		}, []string{"model", "mode", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of generation calls.",
			Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"model", "mode"}),
		fragments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_fragments_total",
			Help:      "Non-empty stream fragments delivered to clients.",
		}, []string{"model"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requests,
		c.duration,
		c.fragments,
	)
	return c
}

// ObserveCall records one finished generation call.
func (c *Collector) ObserveCall(model, mode, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(model, mode, status).Inc()
	c.duration.WithLabelValues(model, mode).Observe(elapsed.Seconds())
}

// ObserveFragment counts one rendered stream fragment.
func (c *Collector) ObserveFragment(model string) {
	if c == nil {
		return
	}
	c.fragments.WithLabelValues(model).Inc()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
