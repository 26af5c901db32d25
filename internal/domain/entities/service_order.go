package entities

import (
	"strings"
	"time"

	"os_service_api/internal/domain/valueobjects"

	"github.com/google/uuid"
)

// OSStatus is the lifecycle status of a service order (OS = ordem de serviço).
//
// Transitions are driven exclusively by the aggregate methods below; any
// other edge fails with a domain-rule error and leaves the order untouched.
type OSStatus string

const (
	OSStatusRecebida            OSStatus = "recebida"
	OSStatusEmDiagnostico       OSStatus = "em_diagnostico"
	OSStatusAguardandoAprovacao OSStatus = "aguardando_aprovacao"
	OSStatusEmExecucao          OSStatus = "em_execucao"
	OSStatusFinalizada          OSStatus = "finalizada"
	OSStatusEntregue            OSStatus = "entregue"
	OSStatusCancelada           OSStatus = "cancelada"
)

// OSHistory keeps the transition timestamps. Each pointer is set exactly
// once, by the matching transition, never earlier.
type OSHistory struct {
	CreatedAt          time.Time
	ExecutionStartedAt *time.Time
	FinalizedAt        *time.Time
	DeliveredAt        *time.Time
}

// ServiceOrder is the aggregate root for the repair-order lifecycle.
//
// Child entities (included services/items, budget) are created only through
// the aggregate methods and persisted with the whole aggregate
// (load-mutate-save); there is no partial-entity persistence.
type ServiceOrder struct {
	ID               string
	Code             string
	VehicleID        string
	Status           OSStatus
	History          OSHistory
	IncludedServices []IncludedService
	IncludedItems    []IncludedItem
	Budget           *Budget
	StockInteraction StockInteraction
}

// NewServiceOrder is the intake operation. The id is a UUIDv7 so orders sort
// by creation time; the human-readable code is generated once and immutable.
func NewServiceOrder(vehicleID string) (ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return ServiceOrder{}, ErrInvalidVehicleID
	}

	id, err := uuid.NewV7()
	if err != nil {
		return ServiceOrder{}, err
	}

	now := time.Now().UTC()
	return ServiceOrder{
		ID:               id.String(),
		Code:             newOSCode(now),
		VehicleID:        vehicleID,
		Status:           OSStatusRecebida,
		History:          OSHistory{CreatedAt: now},
		StockInteraction: newStockInteraction(),
	}, nil
}

func newOSCode(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "OS-" + now.Format("20060102") + "-" + suffix
}

func (o *ServiceOrder) IniciarDiagnostico() error {
	if o.Status != OSStatusRecebida {
		return ErrOrderNotReceived
	}
	o.Status = OSStatusEmDiagnostico
	return nil
}

// openForChanges reports whether line items may still be mutated.
func (o *ServiceOrder) openForChanges() bool {
	return o.Status == OSStatusRecebida || o.Status == OSStatusEmDiagnostico
}

// AdicionarServico includes a catalog service in the order. Including the
// same original service twice is a conflict.
func (o *ServiceOrder) AdicionarServico(originalServiceID string, name valueobjects.Name, unitPrice valueobjects.Money) error {
	if !o.openForChanges() {
		return ErrOrderNotOpenForChanges
	}
	originalServiceID = strings.TrimSpace(originalServiceID)
	if originalServiceID == "" {
		return ErrInvalidServiceRef
	}
	if o.findService(originalServiceID) >= 0 {
		return ErrServiceAlreadyIncluded
	}
	o.IncludedServices = append(o.IncludedServices, newIncludedService(originalServiceID, name, unitPrice))
	return nil
}

func (o *ServiceOrder) RemoverServico(originalServiceID string) error {
	if !o.openForChanges() {
		return ErrOrderNotOpenForChanges
	}
	idx := o.findService(strings.TrimSpace(originalServiceID))
	if idx < 0 {
		return ErrServiceNotIncluded
	}
	o.IncludedServices = append(o.IncludedServices[:idx], o.IncludedServices[idx+1:]...)
	return nil
}

// AdicionarItem includes a stock item in the order. Adding a stock item that
// is already present increments its quantity instead of duplicating the line.
func (o *ServiceOrder) AdicionarItem(originalStockItemID string, name valueobjects.Name, itemType ItemType, quantity valueobjects.Quantity, unitPrice valueobjects.Money) error {
	if !o.openForChanges() {
		return ErrOrderNotOpenForChanges
	}
	originalStockItemID = strings.TrimSpace(originalStockItemID)
	if originalStockItemID == "" {
		return ErrInvalidStockItemRef
	}
	if idx := o.findItem(originalStockItemID); idx >= 0 {
		o.IncludedItems[idx].Quantity = o.IncludedItems[idx].Quantity.Add(quantity)
		return nil
	}
	o.IncludedItems = append(o.IncludedItems, newIncludedItem(originalStockItemID, name, itemType, quantity, unitPrice))
	return nil
}

func (o *ServiceOrder) RemoverItem(originalStockItemID string) error {
	if !o.openForChanges() {
		return ErrOrderNotOpenForChanges
	}
	idx := o.findItem(strings.TrimSpace(originalStockItemID))
	if idx < 0 {
		return ErrItemNotIncluded
	}
	o.IncludedItems = append(o.IncludedItems[:idx], o.IncludedItems[idx+1:]...)
	return nil
}

// GerarOrcamento freezes the budget from the current line items and moves
// the order to awaiting approval.
func (o *ServiceOrder) GerarOrcamento() error {
	if o.Budget != nil {
		return ErrBudgetAlreadyGenerated
	}
	if o.Status != OSStatusEmDiagnostico {
		return ErrOrderNotInDiagnosis
	}
	if len(o.IncludedServices) == 0 && len(o.IncludedItems) == 0 {
		return ErrOrderHasNoLineItems
	}
	b := newBudget(o.IncludedServices, o.IncludedItems, time.Now().UTC())
	o.Budget = &b
	o.Status = OSStatusAguardandoAprovacao
	return nil
}

// AprovarOrcamento moves the order into execution and stamps the execution
// start. Whether a stock reservation must be published is decided by the
// caller (the approval use case) based on RequiresStockReduction.
func (o *ServiceOrder) AprovarOrcamento() error {
	if o.Status != OSStatusAguardandoAprovacao {
		return ErrOrderNotAwaitingBudget
	}
	if o.Budget == nil {
		return ErrOrderHasNoBudget
	}
	now := time.Now().UTC()
	o.Status = OSStatusEmExecucao
	o.History.ExecutionStartedAt = &now
	return nil
}

func (o *ServiceOrder) DesaprovarOrcamento() error {
	if o.Status != OSStatusAguardandoAprovacao {
		return ErrOrderNotAwaitingBudget
	}
	if o.Budget == nil {
		return ErrOrderHasNoBudget
	}
	o.Status = OSStatusCancelada
	return nil
}

func (o *ServiceOrder) FinalizarExecucao() error {
	if o.Status != OSStatusEmExecucao {
		return ErrOrderNotInExecution
	}
	now := time.Now().UTC()
	o.Status = OSStatusFinalizada
	o.History.FinalizedAt = &now
	return nil
}

func (o *ServiceOrder) Entregar() error {
	if o.Status != OSStatusFinalizada {
		return ErrOrderNotFinished
	}
	now := time.Now().UTC()
	o.Status = OSStatusEntregue
	o.History.DeliveredAt = &now
	return nil
}

// Cancelar is allowed from any status, with no guard. This is the
// administrative override and also the saga compensation path.
func (o *ServiceOrder) Cancelar() {
	o.Status = OSStatusCancelada
}

// RequiresStockReduction reports whether the order carries stock-backed
// items, i.e. whether approval must publish a reservation request.
func (o *ServiceOrder) RequiresStockReduction() bool {
	return len(o.IncludedItems) > 0
}

// MarcarReducaoEstoqueSolicitada records that a reservation request was
// actually published for this order.
func (o *ServiceOrder) MarcarReducaoEstoqueSolicitada() {
	o.StockInteraction.MustReduceStock = true
	o.StockInteraction.Outcome = StockOutcomePendente
}

// ResolverReducaoEstoque applies one saga result. It returns false when the
// order never asked for a reservation or the outcome was already resolved;
// duplicate and late deliveries are no-ops. On failure the order is
// compensated by cancelling it.
func (o *ServiceOrder) ResolverReducaoEstoque(success bool) bool {
	if !o.StockInteraction.MustReduceStock {
		return false
	}
	if o.StockInteraction.Outcome != StockOutcomePendente {
		return false
	}
	if success {
		o.StockInteraction.Outcome = StockOutcomeConfirmado
		return true
	}
	o.StockInteraction.Outcome = StockOutcomeFalhou
	o.Cancelar()
	return true
}

// StockReductionRequestFor builds the reservation request for this order's
// stock-backed items, tagged with the given correlation id.
func (o *ServiceOrder) StockReductionRequestFor(correlationID string) StockReductionRequest {
	items := make([]StockReductionRequestItem, 0, len(o.IncludedItems))
	for _, it := range o.IncludedItems {
		items = append(items, StockReductionRequestItem{
			StockItemID: it.OriginalStockItemID,
			Quantity:    it.Quantity.Value(),
		})
	}
	return StockReductionRequest{
		CorrelationID: correlationID,
		OSID:          o.ID,
		Items:         items,
	}
}

func (o *ServiceOrder) findService(originalServiceID string) int {
	for i, s := range o.IncludedServices {
		if s.OriginalServiceID == originalServiceID {
			return i
		}
	}
	return -1
}

func (o *ServiceOrder) findItem(originalStockItemID string) int {
	for i, it := range o.IncludedItems {
		if it.OriginalStockItemID == originalStockItemID {
			return i
		}
	}
	return -1
}
