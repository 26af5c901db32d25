package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"os_service_api/internal/adapter/messaging/rabbitmq"
	"os_service_api/internal/adapter/observability"
	"os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultScanIntervalSeconds     = 60
	defaultTimeoutThresholdMinutes = 10
)

// The worker owns the asynchronous half of the stock-reduction saga: it
// consumes reservation results from the broker and periodically scans for
// orders whose result never arrived.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB()
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)
	sagaUseCase := usecase.NewStockReductionSagaUseCase(orderRepo, observability.NewSagaMetrics())

	conn, ch, err := rabbitmq.SetupConn(os.Getenv("RABBITMQ_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()
	defer ch.Close()

	consumer := rabbitmq.NewStockReductionConsumer(ch, sagaUseCase)
	if err := consumer.Subscribe(ctx); err != nil {
		log.Fatalf("Failed to subscribe to stock reduction results: %v", err)
	}
	log.Printf("[worker] consuming stock reduction results queue=%s", rabbitmq.ResultQueueName)

	go runTimeoutScan(ctx, sagaUseCase)

	<-ctx.Done()
	log.Printf("[worker] shutting down")
}

// runTimeoutScan logs orders stuck in execution without a stock result. The
// scan only surfaces them; remediation is an operator decision.
func runTimeoutScan(ctx context.Context, saga usecase.IStockReductionSagaUseCase) {
	interval := time.Duration(envInt("STOCK_TIMEOUT_SCAN_INTERVAL_SECONDS", defaultScanIntervalSeconds)) * time.Second
	threshold := time.Duration(envInt("STOCK_TIMEOUT_THRESHOLD_MINUTES", defaultTimeoutThresholdMinutes)) * time.Minute

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			orders, err := saga.ListStockReductionTimeouts(ctx, threshold)
			if err != nil {
				log.Printf("[worker][scan] timeout scan failed err=%v", err)
				continue
			}
			for _, o := range orders {
				log.Printf("[worker][scan] stock reduction timed out os_id=%s code=%s execution_started_at=%v", o.ID, o.Code, o.History.ExecutionStartedAt)
			}
		}
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("[worker] ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return v
}
