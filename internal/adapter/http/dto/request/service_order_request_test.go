package request

import "testing"

func TestCreateServiceOrderRequest_ResolveVehicleID(t *testing.T) {
	r := CreateServiceOrderRequest{VehicleID: "  veh-1  "}
	if got := r.ResolveVehicleID(); got != "veh-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}

	r = CreateServiceOrderRequest{VehicleID: "   "}
	if got := r.ResolveVehicleID(); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestAddServiceRequest_ResolveServiceID(t *testing.T) {
	r := AddServiceRequest{ServiceID: " svc-1 "}
	if got := r.ResolveServiceID(); got != "svc-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}

func TestAddItemRequest_ResolveStockItemID(t *testing.T) {
	r := AddItemRequest{StockItemID: " item-1 ", Quantity: 2}
	if got := r.ResolveStockItemID(); got != "item-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}
