package entities

// StockReductionOutcome is the tri-state result of the stock-reduction saga
// for one order. It starts pendente and may move to confirmado or falhou
// exactly once; that single transition is the saga idempotency boundary.
type StockReductionOutcome string

const (
	StockOutcomePendente   StockReductionOutcome = "pendente"
	StockOutcomeConfirmado StockReductionOutcome = "confirmado"
	StockOutcomeFalhou     StockReductionOutcome = "falhou"
)

// StockInteraction records whether this order asked the inventory service to
// reserve stock, and how that request resolved. MustReduceStock only flips
// to true when a reservation request was actually published.
type StockInteraction struct {
	MustReduceStock bool
	Outcome         StockReductionOutcome
}

func newStockInteraction() StockInteraction {
	return StockInteraction{MustReduceStock: false, Outcome: StockOutcomePendente}
}

// StockReductionRequestItem is one stock line inside a reservation request.
type StockReductionRequestItem struct {
	StockItemID string `json:"stock_item_id"`
	Quantity    int    `json:"quantity"`
}

// StockReductionRequest is the outbound saga message asking the inventory
// service to reserve physical stock for an order. The correlation id ties
// the eventual result back to this exact attempt.
type StockReductionRequest struct {
	CorrelationID string                      `json:"correlation_id"`
	OSID          string                      `json:"os_id"`
	Items         []StockReductionRequestItem `json:"items"`
}

// StockReductionResult is the inbound saga message with the inventory
// service's decision. FailureReason may be empty when the upstream omitted
// it; consumers fall back to "desconhecido".
type StockReductionResult struct {
	CorrelationID string `json:"correlation_id"`
	OSID          string `json:"os_id"`
	Success       bool   `json:"success"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// UnknownFailureReason is recorded when a failed result carries no reason.
const UnknownFailureReason = "desconhecido"
