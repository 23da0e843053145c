package placeevents

import (
	"net/http"

	"github.com/r3labs/sse/v2"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/http/handlers/response"
)

// Handler subscribes clients to the shared stream of place status
// changes. The stream outlives its subscribers.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	stream    string
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	stream string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if stream == "" {
		panic("stream must not be empty")
	}
	return &Handler{log: log, sseServer: sseServer, stream: stream}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	streamID := r.URL.Query().Get("stream")
	if streamID != h.stream {
		response.RenderError(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from place events.", logging.Entry("remoteAddr", r.RemoteAddr))
	}()

	h.log.Info(r.Context(), "Subscribed to place events.", logging.Entry("remoteAddr", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
}
