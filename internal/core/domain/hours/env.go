package hours

import (
	"time"

	c "openhours/internal/core/domain/common"
)

// Location is a point on Earth together with the time zone its
// opening hours are expressed in.
type Location struct {
	Latitude  float64
	Longitude float64
	TimeZone  *time.Location
}

// Region identifies a holiday calendar.
type Region struct {
	Country     string
	Subdivision string
}

func (r Region) String() string {
	if r.Subdivision == "" {
		return r.Country
	}
	return r.Country + "-" + r.Subdivision
}

// SolarResolver returns the instant of a solar event on the given
// local date at the given location.
type SolarResolver interface {
	Resolve(event Event, date time.Time, loc Location) (time.Time, error)
}

type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// HolidayProvider must return calendars with identical membership
// for repeated calls with the same arguments.
type HolidayProvider interface {
	HolidaysFor(kind HolidayType, region Region) (HolidayCalendar, error)
}

type Parser interface {
	Parse(text string) ([]Rule, error)
}

// Env is everything a selector may consult besides the instant itself.
type Env struct {
	Location c.Optional[Location]
	Region   Region
	Sun      SolarResolver
	Holidays HolidayProvider

	// ReferenceMonthdays makes monthday spans fail with
	// ErrUnsupportedSelector instead of being evaluated.
	ReferenceMonthdays bool
}
