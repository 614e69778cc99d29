package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	buildDuration  prom.Histogram
	buildOutcome   *prom.CounterVec
	documents      prom.Gauge
	indexPages     prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "yepindex",
			Name:      "build_duration_seconds",
			Help:      "Total index synthesis duration",
			Buckets:   prom.DefBuckets,
		})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "yepindex",
			Name:      "build_outcomes_total",
			Help:      "Synthesis outcomes by final status",
		}, []string{"outcome"})
		pr.documents = prom.NewGauge(prom.GaugeOpts{
			Namespace: "yepindex",
			Name:      "documents_parsed",
			Help:      "Proposal documents parsed in the last run",
		})
		pr.indexPages = prom.NewGauge(prom.GaugeOpts{
			Namespace: "yepindex",
			Name:      "index_pages_generated",
			Help:      "Index documents generated in the last run",
		})
		reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.documents, pr.indexPages)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) SetDocumentsParsed(n int) {
	pr.documents.Set(float64(n))
}

func (pr *PrometheusRecorder) SetIndexPagesGenerated(n int) {
	pr.indexPages.Set(float64(n))
}
