package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

const defaultTimeoutThresholdMinutes = 10

// StockTimeoutHandler exposes the saga timeout scan for operators.
type StockTimeoutHandler struct {
	saga usecase.IStockReductionSagaUseCase
}

func NewStockTimeoutHandler(saga usecase.IStockReductionSagaUseCase) *StockTimeoutHandler {
	return &StockTimeoutHandler{saga: saga}
}

// ListStockTimeouts godoc
// @Summary      List orders stuck waiting for a stock reduction result
// @Tags         service-orders
// @Produce      json
// @Param        threshold_minutes query int false "How long an order must be waiting to count as stuck" default(10)
// @Success      200 {array} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /service-orders/stock-timeouts [get]
func (h *StockTimeoutHandler) ListStockTimeouts(c *gin.Context) {
	minutes := defaultTimeoutThresholdMinutes
	if raw := c.Query("threshold_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_THRESHOLD", "threshold_minutes must be an integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		minutes = parsed
	}

	orders, err := h.saga.ListStockReductionTimeouts(c.Request.Context(), time.Duration(minutes)*time.Minute)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}
