package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "validkit"

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	records    *prom.CounterVec
	violations *prom.CounterVec
	duration   *prom.HistogramVec
	batchSize  prom.Histogram
}

// NewPrometheusRecorder creates the collectors and registers them with reg.
// A nil reg gets a fresh registry. It panics if the collectors are already
// registered with reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		records: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Validated records by result",
		}, []string{"result"}),
		violations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Violation messages by field",
		}, []string{"field"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of a single record validation",
			Buckets:   prom.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"mode"}),
		batchSize: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of records per batch",
			Buckets:   prom.ExponentialBuckets(1, 2, 12),
		}),
	}
	reg.MustRegister(pr.records, pr.violations, pr.duration, pr.batchSize)
	return pr
}

func (p *PrometheusRecorder) IncRecords(result Result) {
	if p == nil {
		return
	}
	p.records.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddViolations(field string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.violations.WithLabelValues(field).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveValidationDuration(mode string, d time.Duration) {
	if p == nil {
		return
	}
	p.duration.WithLabelValues(mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBatchSize(n int) {
	if p == nil {
		return
	}
	p.batchSize.Observe(float64(n))
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prom.Gatherer) http.Handler {
	if g == nil {
		g = prom.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
