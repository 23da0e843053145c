package sserelay

import (
	"context"

	"github.com/r3labs/sse/v2"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/rabbitmq/schema"
)

const STREAM = "places"
const EVENT = "status"

// Relay pushes status changes to every client subscribed to one
// server-sent events stream.
type Relay struct {
	log    logging.Logger
	server *sse.Server
	stream string
}

func New(log logging.Logger, server *sse.Server, stream string) *Relay {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	if stream == "" {
		stream = STREAM
	}
	if !server.StreamExists(stream) {
		server.CreateStream(stream)
	}
	return &Relay{log: log, server: server, stream: stream}
}

func (r *Relay) Stream() string {
	return r.stream
}

func (r *Relay) NotifyStatusChanged(ctx context.Context, change place.StatusChange) error {
	message := schema.FromStatusChange(change)
	data, err := message.Marshal()
	if err != nil {
		return err
	}
	r.server.Publish(r.stream, &sse.Event{Event: []byte(EVENT), Data: data})
	r.log.Debug(
		ctx,
		"Relayed place status change.",
		logging.Entry("placeID", change.PlaceID),
		logging.Entry("status", message.Status),
	)
	return nil
}
