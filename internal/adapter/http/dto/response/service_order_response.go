package response

import (
	"time"

	"os_service_api/internal/domain/entities"
)

type IncludedServiceResponse struct {
	ID                string  `json:"id"`
	OriginalServiceID string  `json:"original_service_id"`
	Name              string  `json:"name"`
	UnitPrice         float64 `json:"unit_price"`
	Subtotal          float64 `json:"subtotal"`
}

type IncludedItemResponse struct {
	ID                  string  `json:"id"`
	OriginalStockItemID string  `json:"original_stock_item_id"`
	Name                string  `json:"name"`
	ItemType            string  `json:"item_type"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	Subtotal            float64 `json:"subtotal"`
}

type BudgetResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	TotalPrice float64   `json:"total_price"`
}

type ServiceOrderResponse struct {
	ID                 string                    `json:"id"`
	Code               string                    `json:"code"`
	VehicleID          string                    `json:"vehicle_id"`
	Status             string                    `json:"status"`
	CreatedAt          time.Time                 `json:"created_at"`
	ExecutionStartedAt *time.Time                `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time                `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time                `json:"delivered_at,omitempty"`
	Services           []IncludedServiceResponse `json:"services"`
	Items              []IncludedItemResponse    `json:"items"`
	Budget             *BudgetResponse           `json:"budget,omitempty"`
	MustReduceStock    bool                      `json:"must_reduce_stock"`
	StockOutcome       string                    `json:"stock_outcome"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	services := make([]IncludedServiceResponse, 0, len(o.IncludedServices))
	for _, s := range o.IncludedServices {
		services = append(services, IncludedServiceResponse{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              s.Name.String(),
			UnitPrice:         s.UnitPrice.Amount(),
			Subtotal:          s.Subtotal().Amount(),
		})
	}

	items := make([]IncludedItemResponse, 0, len(o.IncludedItems))
	for _, i := range o.IncludedItems {
		items = append(items, IncludedItemResponse{
			ID:                  i.ID,
			OriginalStockItemID: i.OriginalStockItemID,
			Name:                i.Name.String(),
			ItemType:            string(i.ItemType),
			Quantity:            i.Quantity.Value(),
			UnitPrice:           i.UnitPrice.Amount(),
			Subtotal:            i.Subtotal().Amount(),
		})
	}

	var budget *BudgetResponse
	if o.Budget != nil {
		budget = &BudgetResponse{
			ID:         o.Budget.ID,
			CreatedAt:  o.Budget.CreatedAt,
			TotalPrice: o.Budget.TotalPrice.Amount(),
		}
	}

	return ServiceOrderResponse{
		ID:                 o.ID,
		Code:               o.Code,
		VehicleID:          o.VehicleID,
		Status:             string(o.Status),
		CreatedAt:          o.History.CreatedAt,
		ExecutionStartedAt: o.History.ExecutionStartedAt,
		FinalizedAt:        o.History.FinalizedAt,
		DeliveredAt:        o.History.DeliveredAt,
		Services:           services,
		Items:              items,
		Budget:             budget,
		MustReduceStock:    o.StockInteraction.MustReduceStock,
		StockOutcome:       string(o.StockInteraction.Outcome),
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
