package placeevents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openhours/internal/core/domain/logging"
)

func TestPlaceEventsRejectsOtherStreams(t *testing.T) {
	server := sse.New()
	defer server.Close()
	server.CreateStream("places")

	for _, url := range []string{"/places/events", "/places/events?stream=other"} {
		t.Run(url, func(t *testing.T) {
			rr := httptest.NewRecorder()
			New(logging.NewFakeLogger(), server, "places").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestPlaceEventsStreamsEvents(t *testing.T) {
	assert := require.New(t)
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream("places")
	log := logging.NewFakeLogger()
	ts := httptest.NewServer(New(log, server, "places"))

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		server.Close()
		ts.Close()
	}()

	events := make(chan *sse.Event, 16)
	client := sse.NewClient(ts.URL)
	go client.SubscribeChanWithContext(ctx, "places", events)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(5 * time.Second)

	var got *sse.Event
	for got == nil {
		select {
		case event := <-events:
			got = event
		case <-ticker.C:
			server.Publish("places", &sse.Event{Event: []byte("status"), Data: []byte(`{"place_id":1}`)})
		case <-timeout:
			t.Fatal("no event received")
		}
	}

	assert.Equal(`{"place_id":1}`, string(got.Data))
	assert.NotEmpty(log.Records(logging.INFO))
	assert.True(server.StreamExists("places"))
}

func TestNewPanicsOnNilArguments(t *testing.T) {
	assert := require.New(t)
	assert.Panics(func() { New(nil, sse.New(), "places") })
	assert.Panics(func() { New(logging.NewFakeLogger(), nil, "places") })
	assert.Panics(func() { New(logging.NewFakeLogger(), sse.New(), "") })
}
