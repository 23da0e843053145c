package evaluateopeninghours

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
	ratelimiter "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/evaluate_opening_hours"
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
	OpeningHours string             `json:"opening_hours"`
	At           *time.Time         `json:"at"`
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
		validation.Field(&i.OpeningHours, validation.Required, validation.Length(1, place.MAX_OPENING_HOURS_LENGTH)),
		validation.Field(&i.Location),
		validation.Field(&i.Country, validation.Length(0, 3)),
		validation.Field(&i.Subdivision, validation.Length(0, 8)),
	)
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
	if input.Country == "" && input.Subdivision != "" {
		response.RenderError(rw, place.ErrSubdivisionWithoutCountry.Error(), http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{
		OpeningHours:  input.OpeningHours,
		ClientAddress: clientAddress(r),
	}
	if input.At != nil {
		serviceInput.At = c.Some(*input.At)
	}
	if input.Location != nil {
		loc, err := input.Location.ToDomain()
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.Location = c.Some(loc)
	}
	if input.Country != "" {
		serviceInput.Region = c.Some(hours.Region{
			Country:     strings.ToUpper(input.Country),
			Subdivision: strings.ToUpper(input.Subdivision),
		})
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		if response.RenderValidationError(rw, err) {
			return
		}
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case hours.IsInputError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	status := response.Status{}
	status.FromDomainModifier(hours.RuleModifier{Status: result.Status, Comment: result.Comment}, result.At)
	response.Render(rw, status, http.StatusOK)
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
