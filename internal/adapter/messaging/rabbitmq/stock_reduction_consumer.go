package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
)

type stockReductionConsumer struct {
	ch   *amqp.Channel
	saga usecase.IStockReductionSagaUseCase
}

// NewStockReductionConsumer creates the saga result consumer.
func NewStockReductionConsumer(ch *amqp.Channel, saga usecase.IStockReductionSagaUseCase) *stockReductionConsumer {
	return &stockReductionConsumer{ch: ch, saga: saga}
}

// Subscribe binds the durable result queue and dispatches deliveries to the
// saga use case until ctx is cancelled. The use case never fails back into
// this loop, so deliveries are acked unconditionally; redelivery storms
// against a handler with no retry policy would only amplify failures.
func (c *stockReductionConsumer) Subscribe(ctx context.Context) error {
	q, err := c.ch.QueueDeclare(
		ResultQueueName, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("could not declare result queue: %w", err)
	}

	err = c.ch.QueueBind(
		q.Name,                    // queue name
		RoutingKeyReductionResult, // routing key
		ExchangeName,              // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("could not bind result queue: %w", err)
	}

	msgs, err := c.ch.Consume(
		q.Name, // queue
		"",     // consumer tag
		true,   // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("could not start consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				var res entities.StockReductionResult
				if err := json.Unmarshal(d.Body, &res); err != nil {
					log.Printf("[saga][rabbitmq] discarding malformed result correlation_id=%s err=%v", d.CorrelationId, err)
					continue
				}
				if res.CorrelationID == "" {
					res.CorrelationID = d.CorrelationId
				}
				c.saga.HandleStockReductionResult(ctx, res)
			}
		}
	}()

	return nil
}
