package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"os_service_api/internal/usecase/interfaces"
)

const defaultRequestTimeout = 5 * time.Second

// registryClient is the shared plumbing of the registry HTTP clients. All
// registries speak the same plain JSON-over-REST dialect: 200 with a body,
// 404 for unknown ids.
type registryClient struct {
	baseURL    string
	httpClient *http.Client
}

func newRegistryClient(baseURL string) registryClient {
	return registryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// get performs the request and decodes the body into out. A 404 returns
// (false, nil) so callers can map misses to their zero-value convention.
func (c registryClient) get(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("could not build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("could not decode registry response: %w", err)
		}
		return true, nil
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return false, nil
	default:
		io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("registry returned unexpected status %d for %s", resp.StatusCode, path)
	}
}

// VehicleRegistryClient resolves vehicles on the vehicle registry service.
type VehicleRegistryClient struct {
	registryClient
}

var _ interfaces.IVehicleRegistry = (*VehicleRegistryClient)(nil)

func NewVehicleRegistryClient() *VehicleRegistryClient {
	return &VehicleRegistryClient{newRegistryClient(os.Getenv("VEHICLE_REGISTRY_URL"))}
}

func NewVehicleRegistryClientWithURL(baseURL string) *VehicleRegistryClient {
	return &VehicleRegistryClient{newRegistryClient(baseURL)}
}

func (c *VehicleRegistryClient) VehicleExists(ctx context.Context, vehicleID string) (bool, error) {
	var body struct {
		ID string `json:"id"`
	}
	found, err := c.get(ctx, "/vehicles/"+vehicleID, &body)
	if err != nil {
		return false, err
	}
	return found, nil
}

// ServiceCatalogClient resolves labor services on the catalog service.
type ServiceCatalogClient struct {
	registryClient
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogClient)(nil)

func NewServiceCatalogClient() *ServiceCatalogClient {
	return &ServiceCatalogClient{newRegistryClient(os.Getenv("SERVICE_CATALOG_URL"))}
}

func NewServiceCatalogClientWithURL(baseURL string) *ServiceCatalogClient {
	return &ServiceCatalogClient{newRegistryClient(baseURL)}
}

func (c *ServiceCatalogClient) GetService(ctx context.Context, serviceID string) (interfaces.CatalogService, error) {
	var body struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	found, err := c.get(ctx, "/services/"+serviceID, &body)
	if err != nil || !found {
		return interfaces.CatalogService{}, err
	}
	return interfaces.CatalogService{ID: body.ID, Name: body.Name, Price: body.Price}, nil
}

// PartsCatalogClient resolves parts and supplies on the stock service.
type PartsCatalogClient struct {
	registryClient
}

var _ interfaces.IPartsCatalog = (*PartsCatalogClient)(nil)

func NewPartsCatalogClient() *PartsCatalogClient {
	return &PartsCatalogClient{newRegistryClient(os.Getenv("PARTS_CATALOG_URL"))}
}

func NewPartsCatalogClientWithURL(baseURL string) *PartsCatalogClient {
	return &PartsCatalogClient{newRegistryClient(baseURL)}
}

func (c *PartsCatalogClient) GetStockItem(ctx context.Context, stockItemID string) (interfaces.CatalogStockItem, error) {
	var body struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		ItemType string  `json:"item_type"`
		Price    float64 `json:"price"`
	}
	found, err := c.get(ctx, "/stock-items/"+stockItemID, &body)
	if err != nil || !found {
		return interfaces.CatalogStockItem{}, err
	}
	return interfaces.CatalogStockItem{ID: body.ID, Name: body.Name, ItemType: body.ItemType, Price: body.Price}, nil
}
