package validateopeninghours

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type Input struct {
	OpeningHours string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(
		&i,
		validation.Field(&i.OpeningHours, validation.Length(0, place.MAX_OPENING_HOURS_LENGTH)),
	)
}

// Result describes a string that does not parse through SyntaxError
// instead of failing the call.
type Result struct {
	Valid       bool
	Rules       []hours.Rule
	SyntaxError c.Optional[*hours.SyntaxError]
}

type service struct {
	log    logging.Logger
	engine *hours.Engine
}

func New(log logging.Logger, engine *hours.Engine) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if engine == nil {
		panic(e.NewNilArgumentError("engine"))
	}
	return &service{log: log, engine: engine}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	schedule, err := s.engine.Compile(input.OpeningHours)

	var syntaxErr *hours.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Result{SyntaxError: c.Some(syntaxErr)}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Valid: true, Rules: schedule.Rules()}, nil
}
