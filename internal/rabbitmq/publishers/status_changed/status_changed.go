package statuschanged

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/rabbitmq/schema"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQ publishes status changes to a queue through the default
// exchange.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (p *RabbitMQ) NotifyStatusChanged(ctx context.Context, change place.StatusChange) error {
	message := schema.FromStatusChange(change)
	body, err := message.Marshal()
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    change.At,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("placeID", change.PlaceID))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", p.queue),
		logging.Entry("placeID", change.PlaceID),
	)
	return nil
}
