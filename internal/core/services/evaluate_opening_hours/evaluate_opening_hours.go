package evaluateopeninghours

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type Input struct {
	OpeningHours  string
	At            c.Optional[time.Time]
	Location      c.Optional[hours.Location]
	Region        c.Optional[hours.Region]
	ClientAddress string
}

func (i Input) Validate() error {
	err := validation.ValidateStruct(
		&i,
		validation.Field(&i.OpeningHours, validation.Required, validation.Length(1, place.MAX_OPENING_HOURS_LENGTH)),
	)
	if err != nil {
		return err
	}
	if i.Location.IsPresent {
		return place.ValidateLocation(i.Location.Value)
	}
	return nil
}

func (i Input) GetRateLimitKey() string {
	return "evaluate::" + i.ClientAddress
}

type Result struct {
	Status  hours.RuleStatus
	Comment c.Optional[hours.Comment]
	At      time.Time
}

type service struct {
	log    logging.Logger
	engine *hours.Engine
	now    func() time.Time
}

func New(log logging.Logger, engine *hours.Engine, now func() time.Time) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if engine == nil {
		panic(e.NewNilArgumentError("engine"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, engine: engine, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	schedule, err := s.engine.Compile(input.OpeningHours)
	if err != nil {
		return result, err
	}

	at := input.At.ValueOr(s.now())
	var modifier hours.RuleModifier
	if input.Region.IsPresent {
		modifier, err = schedule.EvaluateIn(at, input.Location, input.Region.Value)
	} else {
		modifier, err = schedule.Evaluate(at, input.Location)
	}
	if err != nil {
		if !hours.IsInputError(err) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	s.log.Debug(
		ctx,
		"Opening hours evaluated.",
		logging.Entry("openingHours", input.OpeningHours),
		logging.Entry("at", at),
		logging.Entry("status", modifier.Status.String()),
	)
	return Result{Status: modifier.Status, Comment: modifier.Comment, At: at}, nil
}
