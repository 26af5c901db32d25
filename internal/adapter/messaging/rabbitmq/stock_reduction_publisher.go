package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

type stockReductionPublisher struct {
	ch *amqp.Channel
}

// NewStockReductionPublisher creates the saga publisher over an open channel.
func NewStockReductionPublisher(ch *amqp.Channel) interfaces.IStockReductionPublisher {
	return &stockReductionPublisher{ch: ch}
}

// Publish emits one reservation request. The per-message Expiration carries
// the saga TTL, so an unconsumed request dies on the broker instead of being
// actioned arbitrarily late. Broker errors propagate to the caller.
func (p *stockReductionPublisher) Publish(ctx context.Context, req entities.StockReductionRequest, ttl time.Duration) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("could not marshal stock reduction request: %w", err)
	}

	return p.ch.PublishWithContext(ctx,
		ExchangeName,               // exchange
		RoutingKeyReductionRequest, // routing key
		false,                      // mandatory
		false,                      // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: req.CorrelationID,
			Expiration:    strconv.FormatInt(ttl.Milliseconds(), 10),
			Body:          body,
		},
	)
}
