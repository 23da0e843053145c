package consumers

import (
	"context"

	"openhours/internal/app/deps"
	dl "openhours/internal/core/domain/logging"
	statuschanged "openhours/internal/rabbitmq/consumers/status_changed"
)

func initStatusChangedConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.StatusChangedQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	statusChangedConsumer := statuschanged.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.StatusRelay,
	)
	if err = statusChangedConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownStatusChangedConsumer := initStatusChangedConsumer(deps)

	return func() {
		shutdownStatusChangedConsumer()
	}
}
