package metrics

import (
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg                *prometheus.Registry
	RateLookups        *prometheus.CounterVec
	ExtractionFallback prometheus.Counter
	LineResolutions    *prometheus.CounterVec
	Materializations   *prometheus.CounterVec
}

var _ interfaces.IIntakeMetrics = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	rateLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_rate_lookups_total",
		Help: "Exchange rates resolved, by source tier (cache hits excluded).",
	}, []string{"source"})
	fallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "intake_extraction_fallback_total",
		Help: "Extraction parses that returned the fallback draft.",
	})
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_line_resolutions_total",
		Help: "Draft lines looked up in the catalog, by winning strategy.",
	}, []string{"strategy", "matched"})
	materializations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_materializations_total",
		Help: "Orders materialized, by branch (real or simulated).",
	}, []string{"kind"})

	r.MustRegister(rateLookups, fallback, lines, materializations)
	return &Registry{
		reg:                r,
		RateLookups:        rateLookups,
		ExtractionFallback: fallback,
		LineResolutions:    lines,
		Materializations:   materializations,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) ObserveRateLookup(source entities.RateSource) {
	if r == nil {
		return
	}
	r.RateLookups.WithLabelValues(string(source)).Inc()
}

func (r *Registry) ObserveExtractionFallback() {
	if r == nil {
		return
	}
	r.ExtractionFallback.Inc()
}

func (r *Registry) ObserveLineResolution(strategy string, matched bool) {
	if r == nil {
		return
	}
	m := "false"
	if matched {
		m = "true"
	}
	r.LineResolutions.WithLabelValues(strategy, m).Inc()
}

func (r *Registry) ObserveMaterialization(kind entities.MaterializationKind) {
	if r == nil {
		return
	}
	r.Materializations.WithLabelValues(string(kind)).Inc()
}
