package routes

import (
	"os_service_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, timeoutHandler *handlers.StockTimeoutHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		// Registered before the :id routes so the literal segment wins.
		orders.GET("/stock-timeouts", timeoutHandler.ListStockTimeouts)

		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.DELETE("/:id", orderHandler.DeleteServiceOrder)

		orders.PATCH("/:id/diagnosis", orderHandler.StartDiagnosis)

		orders.POST("/:id/services", orderHandler.AddService)
		orders.DELETE("/:id/services/:service_id", orderHandler.RemoveService)
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.DELETE("/:id/items/:stock_item_id", orderHandler.RemoveItem)

		orders.POST("/:id/budget", orderHandler.GenerateBudget)
		orders.PATCH("/:id/budget/approve", orderHandler.ApproveBudget)
		orders.PATCH("/:id/budget/disapprove", orderHandler.DisapproveBudget)

		orders.PATCH("/:id/finish", orderHandler.FinishExecution)
		orders.PATCH("/:id/deliver", orderHandler.Deliver)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
	}
}
