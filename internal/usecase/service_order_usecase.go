package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/domain/valueobjects"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOSID          = fmt.Errorf("%w: invalid os id", entities.ErrInvalidInput)
	ErrInvalidItemQuantity  = fmt.Errorf("%w: item quantity must be greater than zero", entities.ErrInvalidInput)
	ErrServiceOrderNotFound = fmt.Errorf("%w: service order", entities.ErrNotFound)
	ErrVehicleNotFound      = fmt.Errorf("%w: vehicle", entities.ErrNotFound)
	ErrServiceNotInCatalog  = fmt.Errorf("%w: service not registered", entities.ErrNotFound)
	ErrItemNotInCatalog     = fmt.Errorf("%w: stock item not registered", entities.ErrNotFound)
	ErrUnknownItemType      = fmt.Errorf("%w: unknown stock item type", entities.ErrInvalidInput)

	ErrStockPublisherNotConfigured = errors.New("stock reduction publisher not configured")
)

// StockReductionTTL bounds how long a published reservation request stays
// actionable on the transport. Past it, the timeout scan is the only way to
// notice a missing result.
const StockReductionTTL = 60 * time.Second

// IServiceOrderUseCase exposes the service-order lifecycle.
//
// Each operation loads the whole aggregate, applies one state-machine
// transition and saves it back. Approving the budget is the only operation
// with a side effect beyond persistence: it publishes the stock reservation
// request when the order carries stock-backed items.
type IServiceOrderUseCase interface {
	CreateServiceOrder(ctx context.Context, vehicleID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, osID string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, osID string) error

	StartDiagnosis(ctx context.Context, osID string) (entities.ServiceOrder, error)
	AddService(ctx context.Context, osID, serviceID string) (entities.ServiceOrder, error)
	RemoveService(ctx context.Context, osID, serviceID string) (entities.ServiceOrder, error)
	AddItem(ctx context.Context, osID, stockItemID string, quantity int) (entities.ServiceOrder, error)
	RemoveItem(ctx context.Context, osID, stockItemID string) (entities.ServiceOrder, error)
	GenerateBudget(ctx context.Context, osID string) (entities.ServiceOrder, error)
	ApproveBudget(ctx context.Context, osID string) (entities.ServiceOrder, error)
	DisapproveBudget(ctx context.Context, osID string) (entities.ServiceOrder, error)
	FinishExecution(ctx context.Context, osID string) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, osID string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, osID string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo      interfaces.IServiceOrderRepository
	vehicles  interfaces.IVehicleRegistry
	services  interfaces.IServiceCatalog
	parts     interfaces.IPartsCatalog
	publisher interfaces.IStockReductionPublisher
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	vehicles interfaces.IVehicleRegistry,
	services interfaces.IServiceCatalog,
	parts interfaces.IPartsCatalog,
	publisher interfaces.IStockReductionPublisher,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:      repo,
		vehicles:  vehicles,
		services:  services,
		parts:     parts,
		publisher: publisher,
	}
}

func (u *ServiceOrderUseCase) CreateServiceOrder(ctx context.Context, vehicleID string) (entities.ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.ServiceOrder{}, entities.ErrInvalidVehicleID
	}

	exists, err := u.vehicles.VehicleExists(ctx, vehicleID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !exists {
		return entities.ServiceOrder{}, ErrVehicleNotFound
	}

	o, err := entities.NewServiceOrder(vehicleID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] service order created os_id=%s code=%s vehicle_id=%s", created.ID, created.Code, vehicleID)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.load(ctx, osID)
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, osID string) error {
	o, err := u.load(ctx, osID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}
	log.Printf("[os][usecase] service order deleted os_id=%s", o.ID)
	return nil
}

func (u *ServiceOrderUseCase) StartDiagnosis(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.IniciarDiagnostico()
	})
}

func (u *ServiceOrderUseCase) AddService(ctx context.Context, osID, serviceID string) (entities.ServiceOrder, error) {
	svc, err := u.services.GetService(ctx, strings.TrimSpace(serviceID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if svc.ID == "" {
		return entities.ServiceOrder{}, ErrServiceNotInCatalog
	}

	name, err := valueobjects.NewName(svc.Name)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", entities.ErrInvalidInput, err)
	}
	price, err := valueobjects.NewMoney(svc.Price)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", entities.ErrInvalidInput, err)
	}

	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.AdicionarServico(svc.ID, name, price)
	})
}

func (u *ServiceOrderUseCase) RemoveService(ctx context.Context, osID, serviceID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.RemoverServico(serviceID)
	})
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, osID, stockItemID string, quantity int) (entities.ServiceOrder, error) {
	qty, err := valueobjects.NewQuantity(quantity)
	if err != nil {
		return entities.ServiceOrder{}, ErrInvalidItemQuantity
	}

	item, err := u.parts.GetStockItem(ctx, strings.TrimSpace(stockItemID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if item.ID == "" {
		return entities.ServiceOrder{}, ErrItemNotInCatalog
	}

	itemType, err := parseItemType(item.ItemType)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	name, err := valueobjects.NewName(item.Name)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", entities.ErrInvalidInput, err)
	}
	price, err := valueobjects.NewMoney(item.Price)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", entities.ErrInvalidInput, err)
	}

	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.AdicionarItem(item.ID, name, itemType, qty, price)
	})
}

func (u *ServiceOrderUseCase) RemoveItem(ctx context.Context, osID, stockItemID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.RemoverItem(stockItemID)
	})
}

func (u *ServiceOrderUseCase) GenerateBudget(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.GerarOrcamento()
	})
}

// ApproveBudget moves the order into execution and, when the order carries
// stock-backed items, publishes exactly one reservation request before
// persisting. A publish failure aborts the whole operation: the mutated
// aggregate is discarded and the order stays awaiting approval.
func (u *ServiceOrderUseCase) ApproveBudget(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, osID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := o.AprovarOrcamento(); err != nil {
		return entities.ServiceOrder{}, err
	}

	if o.RequiresStockReduction() {
		if u.publisher == nil {
			return entities.ServiceOrder{}, ErrStockPublisherNotConfigured
		}
		correlationID := uuid.NewString()
		req := o.StockReductionRequestFor(correlationID)
		if err := u.publisher.Publish(ctx, req, StockReductionTTL); err != nil {
			log.Printf("[os][usecase] stock reduction publish failed os_id=%s correlation_id=%s err=%v", o.ID, correlationID, err)
			return entities.ServiceOrder{}, fmt.Errorf("publishing stock reduction request: %w", err)
		}
		o.MarcarReducaoEstoqueSolicitada()
		log.Printf("[os][usecase] stock reduction requested os_id=%s correlation_id=%s items=%d ttl=%s", o.ID, correlationID, len(req.Items), StockReductionTTL)
	}

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) DisapproveBudget(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.DesaprovarOrcamento()
	})
}

func (u *ServiceOrderUseCase) FinishExecution(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.FinalizarExecucao()
	})
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		return o.Entregar()
	})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, osID, func(o *entities.ServiceOrder) error {
		o.Cancelar()
		return nil
	})
}

func (u *ServiceOrderUseCase) load(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}

	o, err := u.repo.GetByID(ctx, osID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) mutate(ctx context.Context, osID string, fn func(o *entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, osID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := fn(&o); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return updated, nil
}

func parseItemType(raw string) (entities.ItemType, error) {
	switch entities.ItemType(strings.ToLower(strings.TrimSpace(raw))) {
	case entities.ItemTypePeca:
		return entities.ItemTypePeca, nil
	case entities.ItemTypeInsumo:
		return entities.ItemTypeInsumo, nil
	default:
		return "", ErrUnknownItemType
	}
}
