package holidaycalendar

import (
	"sync"

	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
)

type cacheKey struct {
	kind   hours.HolidayType
	region hours.Region
}

type cacheEntry struct {
	once     sync.Once
	calendar hours.HolidayCalendar
	err      error
}

// Cache builds each calendar of the wrapped provider at most once.
// Concurrent first lookups of a key wait for the same computation,
// later lookups do not lock. Errors are cached as well.
type Cache struct {
	provider hours.HolidayProvider
	entries  sync.Map
}

func NewCache(provider hours.HolidayProvider) *Cache {
	if provider == nil {
		panic(e.NewNilArgumentError("provider"))
	}
	return &Cache{provider: provider}
}

func (c *Cache) HolidaysFor(kind hours.HolidayType, region hours.Region) (hours.HolidayCalendar, error) {
	key := cacheKey{kind: kind, region: region}
	value, ok := c.entries.Load(key)
	if !ok {
		value, _ = c.entries.LoadOrStore(key, &cacheEntry{})
	}
	entry := value.(*cacheEntry)
	entry.once.Do(func() {
		entry.calendar, entry.err = c.provider.HolidaysFor(kind, region)
	})
	return entry.calendar, entry.err
}
