package place

import (
	"context"
	"errors"
	"sort"
	"sync"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
)

type FakeRepository struct {
	Places      []Place
	CreateError error
	ReadError   error
	lock        sync.Mutex
}

func NewFakeRepository(places ...Place) *FakeRepository {
	return &FakeRepository{Places: places}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Place, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.CreateError != nil {
		return p, r.CreateError
	}
	for _, existing := range r.Places {
		if existing.Name == input.Name {
			return p, ErrPlaceAlreadyExists
		}
	}
	p = Place{
		ID:           ID(len(r.Places) + 1),
		Name:         input.Name,
		OpeningHours: input.OpeningHours,
		Location:     input.Location,
		Region:       input.Region,
		CreatedAt:    input.CreatedAt,
	}
	r.Places = append(r.Places, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Place, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReadError != nil {
		return p, r.ReadError
	}
	for _, existing := range r.Places {
		if existing.ID == id {
			return existing, nil
		}
	}
	return p, ErrPlaceDoesNotExist
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Place, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	places := make([]Place, 0, len(r.Places))
	for _, p := range r.Places {
		if options.AfterID.IsPresent && p.ID <= options.AfterID.Value {
			continue
		}
		places = append(places, p)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	if options.Limit > 0 && uint(len(places)) > options.Limit {
		places = places[:options.Limit]
	}
	return places, nil
}

type FakeStatusStore struct {
	Statuses map[ID]hours.RuleStatus
	Error    error
	lock     sync.Mutex
}

func NewFakeStatusStore() *FakeStatusStore {
	return &FakeStatusStore{Statuses: make(map[ID]hours.RuleStatus)}
}

func (s *FakeStatusStore) Swap(ctx context.Context, id ID, status hours.RuleStatus) (c.Optional[hours.RuleStatus], error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Error != nil {
		return c.Optional[hours.RuleStatus]{}, s.Error
	}
	previous, ok := s.Statuses[id]
	s.Statuses[id] = status
	return c.NewOptional(previous, ok), nil
}

type FakeStatusNotifier struct {
	Notified []StatusChange
	Error    error
	lock     sync.Mutex
}

func NewFakeStatusNotifier() *FakeStatusNotifier {
	return &FakeStatusNotifier{}
}

func (n *FakeStatusNotifier) NotifyStatusChanged(ctx context.Context, change StatusChange) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.Error != nil {
		return n.Error
	}
	n.Notified = append(n.Notified, change)
	return nil
}

// ErrFake can be assigned to the error fields of the fakes.
var ErrFake = errors.New("fake error")
