package interfaces

import "invoice_intake/internal/domain/entities"

// IIntakeMetrics receives the counters the intake use cases emit. A nil value
// is allowed wherever it is injected.
type IIntakeMetrics interface {
	ObserveRateLookup(source entities.RateSource)
	ObserveExtractionFallback()
	ObserveLineResolution(strategy string, matched bool)
	ObserveMaterialization(kind entities.MaterializationKind)
}
