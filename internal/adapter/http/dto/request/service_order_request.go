package request

import "strings"

// CreateServiceOrderRequest is the intake payload. Customer/vehicle data
// lives in the registries; intake only references the vehicle.
type CreateServiceOrderRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

func (r CreateServiceOrderRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}

// AddServiceRequest references a labor service from the catalog.
type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

func (r AddServiceRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

// AddItemRequest references a stock item (part or supply) and how many of it.
type AddItemRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

func (r AddItemRequest) ResolveStockItemID() string {
	return strings.TrimSpace(r.StockItemID)
}
