package listplaces

import (
	"fmt"
	"net/http"
	"strconv"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/list_places"
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
	Places []response.Place `json:"places"`
	// NextAfterID is the cursor for the following page, absent on the
	// last one.
	NextAfterID *int64 `json:"next_after_id"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}
	afterID, err := parseAfterID(r.URL.Query().Get("after_id"))
	if err != nil {
		response.RenderError(rw, "invalid after_id query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Limit: limit, AfterID: afterID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	places := make([]response.Place, 0, len(result.Places))
	for _, p := range result.Places {
		rp := response.Place{}
		rp.FromDomainPlace(p)
		places = append(places, rp)
	}
	res := Result{Places: places}
	pageSize := limit
	if pageSize == 0 {
		pageSize = place.DEFAULT_READ_LIMIT
	}
	if n := len(places); n > 0 && uint(n) == pageSize {
		next := places[n-1].ID
		res.NextAfterID = &next
	}
	response.Render(rw, res, http.StatusOK)
}

func parseLimit(raw string) (limit uint, err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > place.MAX_READ_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", place.MAX_READ_LIMIT)
	}
	return uint(l), nil
}

func parseAfterID(raw string) (afterID c.Optional[place.ID], err error) {
	if raw == "" {
		return afterID, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return afterID, err
	}
	return c.Some(place.ID(id)), nil
}
