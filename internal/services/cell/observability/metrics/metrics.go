// Package metrics exposes Prometheus collectors for hosted cells.
package metrics

import (
	"net/http"

	"github.com/louisbranch/tracecell/internal/cell"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace = "tracecell"
	cellSubsystem    = "cell"
)

// Metrics holds the cell collectors. It implements cell.Observer.
type Metrics struct {
	committed     *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	historyLength prometheus.Histogram
	liveCells     prometheus.Gauge
	lifecycle     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		committed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: cellSubsystem,
			Name:      "operations_committed_total",
			Help:      "Operations appended to a cell history, by kind",
		}, []string{"kind"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: cellSubsystem,
			Name:      "operations_rejected_total",
			Help:      "Operations refused by a cell policy, by kind",
		}, []string{"kind"}),
		historyLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: cellSubsystem,
			Name:      "history_length",
			Help:      "History length after each commit",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		liveCells: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: cellSubsystem,
			Name:      "live",
			Help:      "Cells created and not yet disposed",
		}),
		lifecycle: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: cellSubsystem,
			Name:      "lifecycle_errors_total",
			Help:      "Calls that misused a cell lifecycle or token, by error code",
		}, []string{"code"}),
		gatherer: reg,
	}
}

// OnCommit records a committed operation.
func (m *Metrics) OnCommit(c cell.Commit) {
	m.committed.WithLabelValues(c.Op.Kind.String()).Inc()
	m.historyLength.Observe(float64(c.Length))
}

// OnReject records a rejected operation.
func (m *Metrics) OnReject(r cell.Rejection) {
	m.rejected.WithLabelValues(r.Op.Kind.String()).Inc()
}

// CellCreated records a new live cell.
func (m *Metrics) CellCreated() {
	m.liveCells.Inc()
}

// CellDisposed records a disposed cell.
func (m *Metrics) CellDisposed() {
	m.liveCells.Dec()
}

// LifecycleError records a misuse error by code.
func (m *Metrics) LifecycleError(code string) {
	m.lifecycle.WithLabelValues(code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
