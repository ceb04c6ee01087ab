// Package metrics holds the Prometheus collectors of the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naglasak_http_requests_total",
		Help: "Total number of API requests by endpoint and status code.",
	}, []string{"endpoint", "code"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "naglasak_http_request_seconds",
		Help:    "Time spent serving an API request.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	FormsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naglasak_forms_generated_total",
		Help: "Total number of surface forms returned by declension requests.",
	})

	SynthesisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naglasak_synthesis_errors_total",
		Help: "Total number of failed declensions by error class.",
	}, []string{"class"})

	LexiconEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "naglasak_lexicon_entries",
		Help: "Number of entries in the loaded lexicon.",
	})
)
