package services

import (
	"openhours/internal/app/deps"
	drl "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/services"
	createplace "openhours/internal/core/services/create_place"
	evaluateopeninghours "openhours/internal/core/services/evaluate_opening_hours"
	getplacestatus "openhours/internal/core/services/get_place_status"
	listplaces "openhours/internal/core/services/list_places"
	ratelimiting "openhours/internal/core/services/rate_limiting"
	trackplacestatuses "openhours/internal/core/services/track_place_statuses"
	validateopeninghours "openhours/internal/core/services/validate_opening_hours"
)

type Services struct {
	EvaluateOpeningHours services.Service[evaluateopeninghours.Input, evaluateopeninghours.Result]
	ValidateOpeningHours services.Service[validateopeninghours.Input, validateopeninghours.Result]

	CreatePlace    services.Service[createplace.Input, createplace.Result]
	ListPlaces     services.Service[listplaces.Input, listplaces.Result]
	GetPlaceStatus services.Service[getplacestatus.Input, getplacestatus.Result]

	TrackPlaceStatuses services.Service[trackplacestatuses.Input, trackplacestatuses.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.EvaluateOpeningHours = ratelimiting.New(
		deps.Logger,
		deps.RateLimiter,
		drl.PerMinute(deps.Config.EvaluateRateLimit),
		evaluateopeninghours.New(
			deps.Logger,
			deps.Engine,
			deps.Now,
		),
	)
	s.ValidateOpeningHours = validateopeninghours.New(
		deps.Logger,
		deps.Engine,
	)
	s.CreatePlace = createplace.New(
		deps.Logger,
		deps.Engine,
		deps.PlaceRepository,
		deps.Now,
	)
	s.ListPlaces = listplaces.New(
		deps.Logger,
		deps.PlaceRepository,
	)
	s.GetPlaceStatus = getplacestatus.New(
		deps.Logger,
		deps.Engine,
		deps.PlaceRepository,
		deps.Now,
	)
	s.TrackPlaceStatuses = trackplacestatuses.New(
		deps.Logger,
		deps.Engine,
		deps.PlaceRepository,
		deps.StatusStore,
		deps.StatusPublisher,
		deps.Now,
	)

	return s
}
