package client

import (
	"context"

	"orbiont.com/meetmetrics/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier publishes pipeline lifecycle events to the broker.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyBatchIngested(ctx context.Context, message *domain.ActivityBatchIngestedMessage) error {
	return n.publisher.Publish(ctx, domain.MeetExchange, domain.RoutingKeyBatchIngested, message)
}
