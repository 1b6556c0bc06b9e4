package ports

import (
	"context"

	"food-delivery-api/internal/infrastructure/mq"
)

type EventPublisher interface {
	Publish(e mq.Event)
	PublisherWorker(ctx context.Context)
}
