package entities

import (
	"time"

	"os_service_api/internal/domain/valueobjects"

	"github.com/google/uuid"
)

// Budget is the frozen pricing snapshot of a service order, computed once
// from the line items present at generation time. The order advances to
// awaiting-approval in the same transition, so the snapshot never goes stale.
type Budget struct {
	ID         string
	CreatedAt  time.Time
	TotalPrice valueobjects.Money
}

func newBudget(services []IncludedService, items []IncludedItem, now time.Time) Budget {
	var total valueobjects.Money
	for _, s := range services {
		total = total.Add(s.Subtotal())
	}
	for _, i := range items {
		total = total.Add(i.Subtotal())
	}
	return Budget{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		TotalPrice: total,
	}
}
