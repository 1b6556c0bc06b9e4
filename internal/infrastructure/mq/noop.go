package mq

import (
	"context"

	"go.uber.org/zap"
)

// Noop stands in for RabbitMQ when no broker is configured.
type Noop struct {
	log *zap.Logger
}

func NewNoop(logger *zap.Logger) *Noop { return &Noop{log: logger} }

func (n *Noop) Publish(e Event) {
	n.log.Debug("event discarded, mq disabled",
		zap.String("entity", e.Entity),
		zap.String("entity_id", e.EntityID),
		zap.String("action", e.Method),
	)
}

func (n *Noop) PublisherWorker(ctx context.Context) { <-ctx.Done() }
