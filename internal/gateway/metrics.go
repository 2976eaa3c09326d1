package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - prometheus метрики вызовов шлюза
type Metrics struct {
	reversals      *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchResults  prometheus.Histogram
	searchFailures prometheus.Counter
}

// NewMetrics регистрирует метрики в указанном registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		reversals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "braintree",
			Name:      "reversals_total",
			Help:      "Void/refund operations issued for hybrid PayPal transactions.",
		}, []string{"operation", "outcome"}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "braintree",
			Name:      "search_duration_seconds",
			Help:      "Duration of transaction search calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		searchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "braintree",
			Name:      "search_results",
			Help:      "Raw transactions returned by a single search call.",
			Buckets:   []float64{0, 1, 10, 100, 500, 1000, 5000, 10000},
		}),
		searchFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "braintree",
			Name:      "search_failures_total",
			Help:      "Failed transaction search calls.",
		}),
	}
}

func (m *Metrics) observeReversal(operation, outcome string) {
	if m == nil {
		return
	}
	m.reversals.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) observeSearch(seconds float64, results int, err error) {
	if m == nil {
		return
	}
	m.searchDuration.Observe(seconds)
	if err != nil {
		m.searchFailures.Inc()
		return
	}
	m.searchResults.Observe(float64(results))
}
