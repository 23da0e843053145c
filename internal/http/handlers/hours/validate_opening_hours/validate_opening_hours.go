package validateopeninghours

import (
	"encoding/json"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
	service "openhours/internal/core/services/validate_opening_hours"
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
	OpeningHours string `json:"opening_hours"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.OpeningHours, validation.Required, validation.Length(1, place.MAX_OPENING_HOURS_LENGTH)),
	)
}

// Result lists the normalized rules of a valid string. For an invalid
// one it carries the byte offset of the error and the tokens accepted
// there.
type Result struct {
	Valid    bool     `json:"valid"`
	Rules    []string `json:"rules"`
	Error    *string  `json:"error,omitempty"`
	Position *int     `json:"position,omitempty"`
	Expected []string `json:"expected,omitempty"`
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

	result, err := h.service.Run(r.Context(), service.Input{OpeningHours: input.OpeningHours})
	if err != nil {
		if !response.RenderValidationError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Valid: result.Valid, Rules: make([]string, 0, len(result.Rules))}
	for _, rule := range result.Rules {
		res.Rules = append(res.Rules, rule.String())
	}
	if result.SyntaxError.IsPresent {
		syntaxErr := result.SyntaxError.Value
		msg := syntaxErr.Error()
		pos := syntaxErr.Pos
		res.Error = &msg
		res.Position = &pos
		res.Expected = syntaxErr.Expected
	}
	response.Render(rw, res, http.StatusOK)
}
