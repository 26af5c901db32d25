package interfaces

import (
	"context"
	"time"

	"os_service_api/internal/domain/entities"
)

// IStockReductionPublisher emits stock reservation requests to the inventory
// service. The ttl bounds how long the transport keeps the request alive;
// after it expires the request may be silently dropped and the timeout scan
// becomes the only detection path.
//
// Publish is synchronous up to broker acknowledgment only; it never waits for
// the reservation result. A transport error must propagate to the caller so
// approval does not proceed believing stock is reserved.
type IStockReductionPublisher interface {
	Publish(ctx context.Context, req entities.StockReductionRequest, ttl time.Duration) error
}
