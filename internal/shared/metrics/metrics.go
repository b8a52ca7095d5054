package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analysis outcomes used as the "outcome" label.
const (
	OutcomeSuccess           = "success"
	OutcomeConfiguration     = "configuration_error"
	OutcomeProvider          = "provider_error"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeUnexpectedFormat  = "unexpected_format"
)

// Registry holds the application collectors.
var Registry = prometheus.NewRegistry()

var (
	analysisTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "syllabus_analysis_total",
		Help: "Total syllabus/exam analyses by outcome",
	}, []string{"outcome"})

	analysisDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "syllabus_analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})

	analysisItems = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "syllabus_analysis_items",
		Help:    "Number of exam questions returned per successful analysis",
		Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
	})

	exportTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "syllabus_export_total",
		Help: "Total result exports by format",
	}, []string{"format"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveAnalysis records one analysis attempt.
func ObserveAnalysis(outcome string, elapsed time.Duration) {
	analysisTotal.WithLabelValues(outcome).Inc()
	ms := float64(elapsed.Microseconds()) / 1000.0
	if ms < 0 {
		ms = 0
	}
	analysisDuration.Observe(ms)
}

// ObserveItems records the size of a successful result.
func ObserveItems(n int) {
	analysisItems.Observe(float64(n))
}

// IncExport counts an export in the given format ("json", "xlsx").
func IncExport(format string) {
	exportTotal.WithLabelValues(format).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
