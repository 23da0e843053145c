package listplaces

import (
	"context"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type Input struct {
	Limit   uint
	AfterID c.Optional[place.ID]
}

type Result struct {
	Places []place.Place
}

type service struct {
	log        logging.Logger
	repository place.Repository
}

func New(log logging.Logger, repository place.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	return &service{log: log, repository: repository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	limit := input.Limit
	if limit == 0 {
		limit = place.DEFAULT_READ_LIMIT
	}
	if limit > place.MAX_READ_LIMIT {
		limit = place.MAX_READ_LIMIT
	}
	places, err := s.repository.Read(ctx, place.ReadOptions{Limit: limit, AfterID: input.AfterID})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Places: places}, nil
}
