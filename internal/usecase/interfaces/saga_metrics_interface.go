package interfaces

import "context"

// ISagaMetrics is the observability contract the saga consumer emits into.
// Implementations live in the adapter layer; the core only records facts.
//
// RecordSagaCriticalFailure marks an operator-visible inconsistency: a saga
// outcome was decided but could not be persisted. There is no automatic
// self-healing for that state.
type ISagaMetrics interface {
	RecordStockConfirmed(ctx context.Context, osID, itemSummary, correlationID string)
	RecordSagaCompensated(ctx context.Context, osID, failureReason, correlationID string)
	RecordSagaCriticalFailure(ctx context.Context, osID, errorDescription, correlationID string)
}
