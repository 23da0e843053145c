package getplacestatus

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/get_place_status"
	"openhours/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Place  response.Place  `json:"place"`
	Status response.Status `json:"status"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawPlaceID := chi.URLParam(r, "placeID")
	placeID, err := strconv.ParseInt(rawPlaceID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid place ID", http.StatusBadRequest)
		return
	}
	at, err := parseAt(r.URL.Query().Get("at"))
	if err != nil {
		response.RenderError(rw, "invalid at query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{PlaceID: place.ID(placeID), At: at})
	if err != nil {
		switch {
		case errors.Is(err, place.ErrPlaceDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case hours.IsInputError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{}
	res.Place.FromDomainPlace(result.Place)
	res.Status.FromDomainModifier(result.Status, result.At)
	response.Render(rw, res, http.StatusOK)
}

func parseAt(raw string) (at c.Optional[time.Time], err error) {
	if raw == "" {
		return at, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return at, err
	}
	return c.Some(t), nil
}
