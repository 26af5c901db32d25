package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
)

var ErrInvalidTimeoutThreshold = fmt.Errorf("%w: timeout threshold must be positive", entities.ErrInvalidInput)

// defaultPersistTimeout bounds the load/update calls made from the message
// handler, so a slow store cannot stall the consumer loop indefinitely.
const defaultPersistTimeout = 5 * time.Second

// IStockReductionSagaUseCase applies asynchronous stock-reduction results to
// service orders and surfaces orders whose saga never resolved.
//
// HandleStockReductionResult deliberately returns nothing: the transport
// assumes at-least-once delivery with no compensating retry policy, so the
// handler must never fail back into it. Failures degrade to log lines and
// the critical-failure metric instead.
type IStockReductionSagaUseCase interface {
	HandleStockReductionResult(ctx context.Context, res entities.StockReductionResult)
	ListStockReductionTimeouts(ctx context.Context, threshold time.Duration) ([]entities.ServiceOrder, error)
}

type StockReductionSagaUseCase struct {
	repo           interfaces.IServiceOrderRepository
	metrics        interfaces.ISagaMetrics
	persistTimeout time.Duration
}

var _ IStockReductionSagaUseCase = (*StockReductionSagaUseCase)(nil)

func NewStockReductionSagaUseCase(repo interfaces.IServiceOrderRepository, metrics interfaces.ISagaMetrics) *StockReductionSagaUseCase {
	return &StockReductionSagaUseCase{
		repo:           repo,
		metrics:        metrics,
		persistTimeout: defaultPersistTimeout,
	}
}

func (u *StockReductionSagaUseCase) HandleStockReductionResult(ctx context.Context, res entities.StockReductionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[saga][usecase] panic handling result os_id=%s correlation_id=%s panic=%v", res.OSID, res.CorrelationID, r)
			u.metrics.RecordSagaCriticalFailure(ctx, res.OSID, fmt.Sprintf("panic: %v", r), res.CorrelationID)
		}
	}()

	pctx, cancel := context.WithTimeout(ctx, u.persistTimeout)
	defer cancel()

	o, err := u.repo.GetByID(pctx, res.OSID)
	if err != nil {
		log.Printf("[saga][usecase] failed loading order os_id=%s correlation_id=%s err=%v", res.OSID, res.CorrelationID, err)
		return
	}
	if o.ID == "" {
		// Order may have been deleted, or the id is stale. Nothing to do.
		log.Printf("[saga][usecase] order not found, discarding result os_id=%s correlation_id=%s", res.OSID, res.CorrelationID)
		return
	}

	if !o.ResolverReducaoEstoque(res.Success) {
		// Duplicate delivery, or the order never asked for a reservation.
		log.Printf("[saga][usecase] result ignored os_id=%s correlation_id=%s must_reduce=%t outcome=%s",
			o.ID, res.CorrelationID, o.StockInteraction.MustReduceStock, o.StockInteraction.Outcome)
		return
	}

	updated, err := u.repo.Update(pctx, o)
	if err != nil {
		// The outcome was decided but not persisted. The order may be stuck;
		// only this metric (and, for failures, the timeout scan) reveals it.
		log.Printf("[saga][usecase] failed persisting resolution os_id=%s correlation_id=%s err=%v", o.ID, res.CorrelationID, err)
		u.metrics.RecordSagaCriticalFailure(pctx, o.ID, err.Error(), res.CorrelationID)
		return
	}
	if updated.ID == "" {
		// Conditional write lost: a concurrent delivery resolved the order
		// first. Treat exactly like the in-memory duplicate guard.
		log.Printf("[saga][usecase] resolution superseded concurrently os_id=%s correlation_id=%s", o.ID, res.CorrelationID)
		return
	}

	if res.Success {
		log.Printf("[saga][usecase] stock reduction confirmed os_id=%s correlation_id=%s", o.ID, res.CorrelationID)
		u.metrics.RecordStockConfirmed(pctx, o.ID, summarizeItems(o.IncludedItems), res.CorrelationID)
		return
	}

	reason := strings.TrimSpace(res.FailureReason)
	if reason == "" {
		reason = entities.UnknownFailureReason
	}
	log.Printf("[saga][usecase] stock reduction failed, order compensated os_id=%s correlation_id=%s reason=%s", o.ID, res.CorrelationID, reason)
	u.metrics.RecordSagaCompensated(pctx, o.ID, reason, res.CorrelationID)
}

// ListStockReductionTimeouts returns orders in execution whose reservation
// request got no result within the threshold. Read-only; remediation is an
// external, operational concern.
func (u *StockReductionSagaUseCase) ListStockReductionTimeouts(ctx context.Context, threshold time.Duration) ([]entities.ServiceOrder, error) {
	if threshold <= 0 {
		return nil, ErrInvalidTimeoutThreshold
	}
	return u.repo.ListInExecutionAwaitingStockTimeout(ctx, time.Now().UTC().Add(-threshold))
}

func summarizeItems(items []entities.IncludedItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.OriginalStockItemID, it.Quantity.Value()))
	}
	return strings.Join(parts, ", ")
}
