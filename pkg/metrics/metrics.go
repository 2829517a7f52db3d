package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the service's Prometheus registry. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	answers       *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	modelDuration *prometheus.HistogramVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "athena_answers_total",
			Help: "Structured answers returned, by source and rule",
		}, []string{"source", "rule"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "athena_fallbacks_total",
			Help: "Times the rule-based responder was used instead of the model, by reason",
		}, []string{"reason"}),
		modelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "athena_model_request_duration_seconds",
			Help:    "Latency of chat completion calls, by outcome",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		}, []string{"outcome"}),
	}

	r.registry.MustRegister(
		r.answers,
		r.fallbacks,
		r.modelDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) RecordAnswer(source, rule string) {
	if r == nil {
		return
	}
	r.answers.WithLabelValues(source, rule).Inc()
}

func (r *Recorder) RecordFallback(reason string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(reason).Inc()
}

func (r *Recorder) ObserveModelCall(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.modelDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
