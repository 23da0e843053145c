package getplacestatus

import (
	"context"
	"errors"
	"time"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type Input struct {
	PlaceID place.ID
	At      c.Optional[time.Time]
}

type Result struct {
	Place  place.Place
	Status hours.RuleModifier
	At     time.Time
}

type service struct {
	log        logging.Logger
	engine     *hours.Engine
	repository place.Repository
	now        func() time.Time
}

func New(
	log logging.Logger,
	engine *hours.Engine,
	repository place.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if engine == nil {
		panic(e.NewNilArgumentError("engine"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, engine: engine, repository: repository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.repository.GetByID(ctx, input.PlaceID)
	if errors.Is(err, place.ErrPlaceDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	schedule, err := s.engine.Compile(p.OpeningHours)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("placeID", p.ID))
		return result, err
	}
	at := input.At.ValueOr(s.now())
	status, err := p.StatusAt(schedule, at)
	if err != nil {
		if !hours.IsInputError(err) {
			logging.Error(ctx, s.log, err, logging.Entry("placeID", p.ID))
		}
		return result, err
	}
	return Result{Place: p, Status: status, At: at}, nil
}
