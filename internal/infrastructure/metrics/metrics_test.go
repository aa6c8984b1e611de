package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"invoice_intake/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_Observe(t *testing.T) {
	r := NewRegistry()
	r.ObserveRateLookup(entities.RateSourceCatalog)
	r.ObserveRateLookup(entities.RateSourceCatalog)
	r.ObserveExtractionFallback()
	r.ObserveLineResolution("name_ilike", true)
	r.ObserveMaterialization(entities.MaterializationSimulated)

	if got := testutil.ToFloat64(r.RateLookups.WithLabelValues("catalog")); got != 2 {
		t.Fatalf("expected 2 catalog lookups, got %v", got)
	}
	if got := testutil.ToFloat64(r.ExtractionFallback); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
	if got := testutil.ToFloat64(r.LineResolutions.WithLabelValues("name_ilike", "true")); got != 1 {
		t.Fatalf("expected 1 line resolution, got %v", got)
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `intake_materializations_total{kind="simulated"} 1`) {
		t.Fatalf("metrics output missing materialization counter:\n%s", body)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	r.ObserveRateLookup(entities.RateSourceDefault)
	r.ObserveExtractionFallback()
	r.ObserveLineResolution("none", false)
	r.ObserveMaterialization(entities.MaterializationReal)
}
