package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_overview"

// Metrics holds the Prometheus counters, histograms, and gauges for report generation.
type Metrics struct {
	ReportsGenerated  prometheus.Counter
	ReportErrors      prometheus.Counter
	ReportsPublished  prometheus.Counter
	PublishErrors     prometheus.Counter
	RowsLoaded        prometheus.Gauge
	PipelineRunning   prometheus.Gauge
	GenerationSeconds prometheus.Histogram

	TableCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsGenerated,
		m.ReportErrors,
		m.ReportsPublished,
		m.PublishErrors,
		m.RowsLoaded,
		m.PipelineRunning,
		m.GenerationSeconds,
		m.TableCache,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Total reports rendered from the data file.",
		}),
		ReportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_errors_total",
			Help:      "Total failures loading or rendering the data file.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Total reports written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Total failures writing reports to the sink topic.",
		}),
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rows_loaded",
			Help:      "Number of rows in the most recently loaded table.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the refresh loop is active, 0 when shut down.",
		}),
		GenerationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_generation_duration_seconds",
			Help:      "Duration of one load-and-render cycle.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		TableCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_cache_total",
			Help:      "Table cache lookups by result.",
		}, []string{"result"}),
	}
}
