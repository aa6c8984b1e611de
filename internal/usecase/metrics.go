package usecase

import (
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) ObserveRateLookup(entities.RateSource) {}
func (noopMetrics) ObserveExtractionFallback() {}
func (noopMetrics) ObserveLineResolution(string, bool) {}
func (noopMetrics) ObserveMaterialization(entities.MaterializationKind) {}

func metricsOrNoop(m interfaces.IIntakeMetrics) interfaces.IIntakeMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
