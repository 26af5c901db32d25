package interfaces

import (
	"context"
	"time"

	"os_service_api/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for the ServiceOrder
// aggregate. The aggregate is always persisted whole (load-mutate-save).
//
// Missing records follow the zero-value convention: Get/Update return an
// empty ServiceOrder with a nil error and callers check ID == "". Update must
// never upsert; it fails the conditional write when the order does not exist,
// and when the incoming aggregate carries a resolved stock outcome it also
// requires the stored outcome to still be pendente (or already identical), so
// concurrent saga deliveries cannot overwrite each other.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error

	// ListInExecutionAwaitingStockTimeout returns orders still in execution
	// whose stock reservation was requested but never resolved, and whose
	// execution started at or before the threshold instant.
	ListInExecutionAwaitingStockTimeout(ctx context.Context, threshold time.Time) ([]entities.ServiceOrder, error)
}
