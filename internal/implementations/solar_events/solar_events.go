package solarevents

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"openhours/internal/core/domain/hours"
)

// Civil twilight starts and ends with the sun 6 degrees below the horizon.
const civilTwilightElevation = -6

type SunResolver struct{}

func New() *SunResolver {
	return &SunResolver{}
}

// Resolve computes the event for the calendar date of date as seen in
// the location's time zone. The result is in the same time zone.
func (r *SunResolver) Resolve(event hours.Event, date time.Time, loc hours.Location) (time.Time, error) {
	tz := loc.TimeZone
	if tz == nil {
		tz = date.Location()
	}
	y, m, d := date.In(tz).Date()

	var morning, evening time.Time
	switch event {
	case hours.Sunrise, hours.Sunset:
		morning, evening = sunrise.SunriseSunset(loc.Latitude, loc.Longitude, y, m, d)
	case hours.Dawn, hours.Dusk:
		morning, evening = sunrise.TimeOfElevation(loc.Latitude, loc.Longitude, civilTwilightElevation, y, m, d)
	default:
		return time.Time{}, fmt.Errorf("unknown solar event %s", event)
	}

	instant := evening
	if event == hours.Sunrise || event == hours.Dawn {
		instant = morning
	}
	if instant.IsZero() {
		return time.Time{}, fmt.Errorf("%s at (%.4f, %.4f): %w", event, loc.Latitude, loc.Longitude, hours.ErrNoSolarEvent)
	}
	return instant.In(tz), nil
}
