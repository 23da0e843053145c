package rabbitmq

import (
	"context"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
)

// reconnect after delay
const delay = 3 * time.Second

// Connection wraps amqp.Connection and redials when the broker drops it.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	connection := &Connection{Connection: conn, log: log}
	go connection.watch(url)
	return connection, nil
}

func (c *Connection) watch(url string) {
	ctx := context.Background()
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error, 1))
		if !ok {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}
		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(delay)
			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(ctx, "RabbitMQ reconnect success.")
				break
			}
			logging.Error(ctx, c.log, err)
		}
	}
}

// Channel opens a channel that is recreated after the broker closes
// it, until it is closed with Close.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	channel := &Channel{Channel: ch, log: c.log}
	go channel.watch(c)
	return channel, nil
}

type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) watch(c *Connection) {
	ctx := context.Background()
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error, 1))
		if !ok || ch.IsClosed() {
			// ensures the closed flag is set when the connection went away
			ch.Close()
			return
		}
		ch.log.Warning(ctx, "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(delay)
			recreated, err := c.Connection.Channel()
			if err == nil {
				ch.log.Info(ctx, "RabbitMQ channel recreated.")
				ch.Channel = recreated
				break
			}
			logging.Error(ctx, ch.log, err)
		}
	}
}

// IsClosed reports whether Close was called.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	return ch.Channel.Close()
}

// DeclareQueue declares a durable queue with the given name.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.Channel.QueueDeclare(name, true, false, false, false, nil)
	return err
}

// Consume keeps consuming across channel recreation. The returned
// channel is closed only after Close.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)
	ctx := context.Background()

	go func() {
		defer close(deliveries)
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				logging.Error(ctx, ch.log, err, logging.Entry("queue", queue))
				time.Sleep(delay)
				continue
			}
			for msg := range d {
				deliveries <- msg
			}
			// the closed flag may be set only after the deliveries end
			time.Sleep(delay)
			if ch.IsClosed() {
				ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}
