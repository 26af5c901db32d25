package entities

import (
	"os_service_api/internal/domain/valueobjects"

	"github.com/google/uuid"
)

// ItemType distinguishes physical parts from consumable supplies. Both are
// stock-backed and take part in the stock-reduction saga.
type ItemType string

const (
	ItemTypePeca   ItemType = "peca"
	ItemTypeInsumo ItemType = "insumo"
)

// IncludedService is a labor line item inside a service order. It references
// the catalog service it was created from but owns its name and price
// snapshot, so later catalog edits do not affect an open order.
type IncludedService struct {
	ID                string
	OriginalServiceID string
	Name              valueobjects.Name
	UnitPrice         valueobjects.Money
}

func newIncludedService(originalServiceID string, name valueobjects.Name, unitPrice valueobjects.Money) IncludedService {
	return IncludedService{
		ID:                uuid.NewString(),
		OriginalServiceID: originalServiceID,
		Name:              name,
		UnitPrice:         unitPrice,
	}
}

func (s IncludedService) Subtotal() valueobjects.Money {
	return s.UnitPrice
}

// IncludedItem is a stock-backed line item (part or supply). Quantity grows
// by increment when the same stock item is added again.
type IncludedItem struct {
	ID                  string
	OriginalStockItemID string
	Name                valueobjects.Name
	ItemType            ItemType
	Quantity            valueobjects.Quantity
	UnitPrice           valueobjects.Money
}

func newIncludedItem(originalStockItemID string, name valueobjects.Name, itemType ItemType, quantity valueobjects.Quantity, unitPrice valueobjects.Money) IncludedItem {
	return IncludedItem{
		ID:                  uuid.NewString(),
		OriginalStockItemID: originalStockItemID,
		Name:                name,
		ItemType:            itemType,
		Quantity:            quantity,
		UnitPrice:           unitPrice,
	}
}

func (i IncludedItem) Subtotal() valueobjects.Money {
	return i.UnitPrice.MultiplyBy(i.Quantity)
}
