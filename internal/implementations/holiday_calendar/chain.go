package holidaycalendar

import (
	"errors"
	"fmt"

	"openhours/internal/core/domain/hours"
)

// Chain asks each provider in turn and returns the first calendar
// found. Errors other than hours.ErrUnknownRegion stop the search.
type Chain struct {
	providers []hours.HolidayProvider
}

func NewChain(providers ...hours.HolidayProvider) *Chain {
	return &Chain{providers: providers}
}

func (ch *Chain) HolidaysFor(kind hours.HolidayType, region hours.Region) (hours.HolidayCalendar, error) {
	for _, p := range ch.providers {
		calendar, err := p.HolidaysFor(kind, region)
		if errors.Is(err, hours.ErrUnknownRegion) {
			continue
		}
		return calendar, err
	}
	return nil, fmt.Errorf("%s in %s: %w", kind, region, hours.ErrUnknownRegion)
}

// NewDefault returns the cached provider used by the commands: the
// dataset at datasetPath, when given, takes precedence over the
// built-in calendars.
func NewDefault(datasetPath string) (*Cache, error) {
	if datasetPath == "" {
		return NewCache(NewBuiltin()), nil
	}
	dataset, err := LoadDataset(datasetPath)
	if err != nil {
		return nil, err
	}
	return NewCache(NewChain(dataset, NewBuiltin())), nil
}
