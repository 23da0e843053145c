package trackplacestatuses

import (
	"context"
	"sync"
	"time"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

const PAGE_SIZE = 100

type Input struct{}

type Result struct {
	Checked int
	Changed int
	Failed  int
}

type compiled struct {
	text     string
	schedule *hours.Schedule
}

type service struct {
	log        logging.Logger
	engine     *hours.Engine
	repository place.Repository
	store      place.StatusStore
	notifier   place.StatusNotifier
	now        func() time.Time

	lock      sync.Mutex
	schedules map[place.ID]compiled
}

func New(
	log logging.Logger,
	engine *hours.Engine,
	repository place.Repository,
	store place.StatusStore,
	notifier place.StatusNotifier,
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
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		engine:     engine,
		repository: repository,
		store:      store,
		notifier:   notifier,
		now:        now,
		schedules:  make(map[place.ID]compiled),
	}
}

// Run evaluates every place at the same instant. A place that fails is
// logged and skipped, only repository errors abort the run.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	options := place.ReadOptions{Limit: PAGE_SIZE}
	for {
		places, err := s.repository.Read(ctx, options)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("options", options))
			return result, err
		}
		for _, p := range places {
			result.Checked++
			changed, err := s.track(ctx, p, now)
			if err != nil {
				result.Failed++
				logging.Error(ctx, s.log, err, logging.Entry("placeID", p.ID))
				continue
			}
			if changed {
				result.Changed++
			}
		}
		if len(places) < PAGE_SIZE {
			break
		}
		options.AfterID = c.Some(places[len(places)-1].ID)
	}

	s.log.Info(
		ctx,
		"Place statuses tracked.",
		logging.Entry("checked", result.Checked),
		logging.Entry("changed", result.Changed),
		logging.Entry("failed", result.Failed),
	)
	return result, nil
}

func (s *service) track(ctx context.Context, p place.Place, now time.Time) (bool, error) {
	schedule, err := s.schedule(p)
	if err != nil {
		return false, err
	}
	status, err := p.StatusAt(schedule, now)
	if err != nil {
		return false, err
	}
	previous, err := s.store.Swap(ctx, p.ID, status.Status)
	if err != nil {
		return false, err
	}
	if previous.IsPresent && previous.Value == status.Status {
		return false, nil
	}

	change := place.StatusChange{PlaceID: p.ID, Previous: previous, Current: status, At: now}
	if err := s.notifier.NotifyStatusChanged(ctx, change); err != nil {
		return false, err
	}
	s.log.Info(
		ctx,
		"Place status changed.",
		logging.Entry("placeID", p.ID),
		logging.Entry("previous", previous),
		logging.Entry("status", status.Status.String()),
	)
	return true, nil
}

// schedule compiles opening hours once per place and recompiles when
// they change.
func (s *service) schedule(p place.Place) (*hours.Schedule, error) {
	if cached, ok := s.schedules[p.ID]; ok && cached.text == p.OpeningHours {
		return cached.schedule, nil
	}
	schedule, err := s.engine.Compile(p.OpeningHours)
	if err != nil {
		return nil, err
	}
	s.schedules[p.ID] = compiled{text: p.OpeningHours, schedule: schedule}
	return schedule, nil
}
