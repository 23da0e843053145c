package createplace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type Input struct {
	Name         string
	OpeningHours string
	Location     c.Optional[hours.Location]
	Region       hours.Region
}

type Result struct {
	Place place.Place
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
	draft := place.Place{
		Name:         strings.TrimSpace(input.Name),
		OpeningHours: strings.TrimSpace(input.OpeningHours),
		Location:     input.Location,
		Region: hours.Region{
			Country:     strings.ToUpper(input.Region.Country),
			Subdivision: strings.ToUpper(input.Region.Subdivision),
		},
	}
	if err := draft.Validate(); err != nil {
		return result, err
	}

	if _, err := s.engine.Compile(draft.OpeningHours); err != nil {
		var syntaxErr *hours.SyntaxError
		if !errors.As(err, &syntaxErr) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, fmt.Errorf("%w: %w", place.ErrInvalidOpeningHours, err)
	}

	created, err := s.repository.Create(ctx, place.CreateInput{
		Name:         draft.Name,
		OpeningHours: draft.OpeningHours,
		Location:     draft.Location,
		Region:       draft.Region,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, place.ErrPlaceAlreadyExists) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Place successfully created.",
		logging.Entry("placeID", created.ID),
		logging.Entry("name", created.Name),
	)
	return Result{Place: created}, nil
}
