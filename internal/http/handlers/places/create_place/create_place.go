package createplace

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/create_place"
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

type Input struct {
	Name         string             `json:"name"`
	OpeningHours string             `json:"opening_hours"`
	Location     *response.Location `json:"location"`
	Country      string             `json:"country"`
	Subdivision  string             `json:"subdivision"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, place.MAX_NAME_LENGTH)),
		validation.Field(&i.OpeningHours, validation.Required, validation.Length(1, place.MAX_OPENING_HOURS_LENGTH)),
		validation.Field(&i.Location),
		validation.Field(&i.Country, validation.Length(0, 3)),
		validation.Field(&i.Subdivision, validation.Length(0, 8)),
	)
}

type Result struct {
	Place response.Place `json:"place"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{
		Name:         input.Name,
		OpeningHours: input.OpeningHours,
		Region:       hours.Region{Country: input.Country, Subdivision: input.Subdivision},
	}
	if input.Location != nil {
		loc, err := input.Location.ToDomain()
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.Location = c.Some(loc)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		if response.RenderValidationError(rw, err) {
			return
		}
		switch {
		case errors.Is(err, place.ErrSubdivisionWithoutCountry):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, place.ErrPlaceAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusConflict)
		case errors.Is(err, place.ErrInvalidOpeningHours):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	p := response.Place{}
	p.FromDomainPlace(result.Place)
	response.Render(rw, Result{Place: p}, http.StatusCreated)
}
