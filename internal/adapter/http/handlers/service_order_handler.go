package handlers

import (
	"context"
	"errors"
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOSPayload = pkg.NewDomainErrorSimple("INVALID_OS_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the service-order lifecycle.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary      Open a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateServiceOrderRequest true "Intake payload"
// @Success      201 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	vehicleID := payload.ResolveVehicleID()
	if vehicleID == "" {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.CreateServiceOrder(c.Request.Context(), vehicleID)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(o))
}

// GetServiceOrder godoc
// @Summary      Get a service order by id
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// DeleteServiceOrder godoc
// @Summary      Delete a service order
// @Tags         service-orders
// @Param        id path string true "Service order id"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-orders/{id} [delete]
func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddService godoc
// @Summary      Add a labor service to the order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Service order id"
// @Param        payload body request.AddServiceRequest true "Catalog service reference"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/services [post]
func (h *ServiceOrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddService(c.Request.Context(), c.Param("id"), payload.ResolveServiceID())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// RemoveService godoc
// @Summary      Remove a labor service from the order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Param        service_id path string true "Original catalog service id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/services/{service_id} [delete]
func (h *ServiceOrderHandler) RemoveService(c *gin.Context) {
	o, err := h.usecase.RemoveService(c.Request.Context(), c.Param("id"), c.Param("service_id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// AddItem godoc
// @Summary      Add a stock item to the order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Service order id"
// @Param        payload body request.AddItemRequest true "Stock item reference"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/items [post]
func (h *ServiceOrderHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ResolveStockItemID(), payload.Quantity)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// RemoveItem godoc
// @Summary      Remove a stock item from the order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Param        stock_item_id path string true "Original stock item id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/items/{stock_item_id} [delete]
func (h *ServiceOrderHandler) RemoveItem(c *gin.Context) {
	o, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("stock_item_id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// StartDiagnosis godoc
// @Summary      Start the diagnosis phase
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/diagnosis [patch]
func (h *ServiceOrderHandler) StartDiagnosis(c *gin.Context) {
	h.patchStatus(c, h.usecase.StartDiagnosis)
}

// GenerateBudget godoc
// @Summary      Generate the budget from the current line items
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/budget [post]
func (h *ServiceOrderHandler) GenerateBudget(c *gin.Context) {
	h.patchStatus(c, h.usecase.GenerateBudget)
}

// ApproveBudget godoc
// @Summary      Approve the budget and start execution
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/budget/approve [patch]
func (h *ServiceOrderHandler) ApproveBudget(c *gin.Context) {
	h.patchStatus(c, h.usecase.ApproveBudget)
}

// DisapproveBudget godoc
// @Summary      Disapprove the budget and cancel the order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/budget/disapprove [patch]
func (h *ServiceOrderHandler) DisapproveBudget(c *gin.Context) {
	h.patchStatus(c, h.usecase.DisapproveBudget)
}

// FinishExecution godoc
// @Summary      Finish the execution phase
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/finish [patch]
func (h *ServiceOrderHandler) FinishExecution(c *gin.Context) {
	h.patchStatus(c, h.usecase.FinishExecution)
}

// Deliver godoc
// @Summary      Deliver the finished order to the customer
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /service-orders/{id}/deliver [patch]
func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.patchStatus(c, h.usecase.Deliver)
}

// Cancel godoc
// @Summary      Cancel the service order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-orders/{id}/cancel [patch]
func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *ServiceOrderHandler) patchStatus(
	c *gin.Context,
	transition func(ctx context.Context, osID string) (entities.ServiceOrder, error),
) {
	o, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// mapServiceOrderError translates the error taxonomy into HTTP statuses.
// State-machine violations are 422: the payload is well formed, the order
// just is not in a state that admits the transition.
func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrDomainRule):
		return pkg.NewDomainErrorSimple("DOMAIN_RULE_VIOLATION", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
