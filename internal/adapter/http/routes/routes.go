package routes

import (
	"log"
	"os"
	"strconv"

	_ "os_service_api/docs" // This will be auto-generated
	"os_service_api/internal/adapter/client"
	"os_service_api/internal/adapter/http/handlers"
	"os_service_api/internal/adapter/messaging/rabbitmq"
	"os_service_api/internal/adapter/observability"
	repository2 "os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/usecase"
	"os_service_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)

	// Approval publishes the stock reservation request, so the API side needs
	// the broker too. Without it, orders with stock items cannot be approved.
	var publisher interfaces.IStockReductionPublisher
	_, ch, err := rabbitmq.SetupConn(os.Getenv("RABBITMQ_URL"))
	if err != nil {
		log.Printf("[os][routes] stock reduction publisher not configured: %v", err)
	} else {
		publisher = rabbitmq.NewStockReductionPublisher(ch)
	}

	orderUseCase := usecase.NewServiceOrderUseCase(
		orderRepo,
		client.NewVehicleRegistryClient(),
		client.NewServiceCatalogClient(),
		client.NewPartsCatalogClient(),
		publisher,
	)
	sagaUseCase := usecase.NewStockReductionSagaUseCase(orderRepo, observability.NewSagaMetrics())

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	timeoutHandler := handlers.NewStockTimeoutHandler(sagaUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, orderHandler, timeoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
