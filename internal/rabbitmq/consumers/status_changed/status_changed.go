package statuschanged

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/rabbitmq"
	"openhours/internal/rabbitmq/schema"
)

// Consumer forwards status changes from the queue to a notifier, such
// as the server-sent events relay.
type Consumer struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	queue    string
	notifier place.StatusNotifier
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	notifier place.StatusNotifier,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, notifier: notifier}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		logging.Error(context.Background(), c.log, err, logging.Entry("queue", c.queue))
		return err
	}
	go c.process(deliveries)
	return nil
}

func (c *Consumer) process(deliveries <-chan amqp.Delivery) {
	for delivery := range deliveries {
		c.handle(context.Background(), delivery)
	}
}

// handle acks every delivery. Undecodable messages would never succeed
// and a relay failure only affects the listeners connected right now.
func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	defer c.ack(ctx, delivery)

	message := &schema.StatusChange{}
	if err := message.Unmarshal(delivery.Body); err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("body", string(delivery.Body)))
		return
	}
	change, err := message.ToStatusChange()
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("message", message))
		return
	}
	if err := c.notifier.NotifyStatusChanged(ctx, change); err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("placeID", change.PlaceID))
		return
	}
	c.log.Debug(ctx, "Got place status change.", logging.Entry("placeID", change.PlaceID))
}

func (c *Consumer) ack(ctx context.Context, delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		logging.Error(ctx, c.log, err)
	}
}
