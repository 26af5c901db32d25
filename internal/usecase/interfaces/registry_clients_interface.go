package interfaces

import "context"

// The customer/vehicle/service/item registries are separate services; this
// core only needs existence checks and price lookups from them.

// CatalogService is the registry view of a sellable labor service.
type CatalogService struct {
	ID    string
	Name  string
	Price float64
}

// CatalogStockItem is the registry view of a stock-backed part or supply.
// ItemType is the registry's `peca`/`insumo` discriminator.
type CatalogStockItem struct {
	ID       string
	Name     string
	ItemType string
	Price    float64
}

// IVehicleRegistry checks vehicle existence at intake.
type IVehicleRegistry interface {
	VehicleExists(ctx context.Context, vehicleID string) (bool, error)
}

// IServiceCatalog resolves labor services. Missing services follow the
// zero-value convention (empty ID, nil error).
type IServiceCatalog interface {
	GetService(ctx context.Context, serviceID string) (CatalogService, error)
}

// IPartsCatalog resolves stock items. Missing items follow the zero-value
// convention (empty ID, nil error).
type IPartsCatalog interface {
	GetStockItem(ctx context.Context, stockItemID string) (CatalogStockItem, error)
}
