package observability

import (
	"context"
	"log"

	"os_service_api/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "os_service_api/saga"

// SagaMetrics emits the saga outcome counters. Counter errors at construction
// fall back to no-op instruments so metric wiring never takes the consumer
// down.
type SagaMetrics struct {
	stockConfirmed  metric.Int64Counter
	sagaCompensated metric.Int64Counter
	criticalFailure metric.Int64Counter
}

var _ interfaces.ISagaMetrics = (*SagaMetrics)(nil)

func NewSagaMetrics() *SagaMetrics {
	meter := otel.GetMeterProvider().Meter(meterName)

	stockConfirmed, err := meter.Int64Counter("os_saga.stock_confirmed",
		metric.WithDescription("Stock reductions confirmed by the stock service"))
	if err != nil {
		log.Printf("[saga][metrics] could not create stock_confirmed counter: %v", err)
	}
	sagaCompensated, err := meter.Int64Counter("os_saga.compensated",
		metric.WithDescription("Service orders cancelled after a failed stock reduction"))
	if err != nil {
		log.Printf("[saga][metrics] could not create compensated counter: %v", err)
	}
	criticalFailure, err := meter.Int64Counter("os_saga.critical_failure",
		metric.WithDescription("Saga outcomes decided but not persisted"))
	if err != nil {
		log.Printf("[saga][metrics] could not create critical_failure counter: %v", err)
	}

	return &SagaMetrics{
		stockConfirmed:  stockConfirmed,
		sagaCompensated: sagaCompensated,
		criticalFailure: criticalFailure,
	}
}

func (m *SagaMetrics) RecordStockConfirmed(ctx context.Context, osID, itemSummary, correlationID string) {
	if m.stockConfirmed == nil {
		return
	}
	m.stockConfirmed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("os_id", osID),
		attribute.String("items", itemSummary),
		attribute.String("correlation_id", correlationID),
	))
}

func (m *SagaMetrics) RecordSagaCompensated(ctx context.Context, osID, failureReason, correlationID string) {
	if m.sagaCompensated == nil {
		return
	}
	m.sagaCompensated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("os_id", osID),
		attribute.String("reason", failureReason),
		attribute.String("correlation_id", correlationID),
	))
}

func (m *SagaMetrics) RecordSagaCriticalFailure(ctx context.Context, osID, errorDescription, correlationID string) {
	if m.criticalFailure == nil {
		return
	}
	m.criticalFailure.Add(ctx, 1, metric.WithAttributes(
		attribute.String("os_id", osID),
		attribute.String("error", errorDescription),
		attribute.String("correlation_id", correlationID),
	))
}
