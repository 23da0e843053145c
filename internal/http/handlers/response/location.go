package response

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"openhours/internal/core/domain/hours"
)

type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	TimeZone  string  `json:"tz"`
}

func (l Location) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&l.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&l.TimeZone, validation.Required, validation.Length(1, 64)),
	)
}

func (l *Location) FromDomain(dl hours.Location) {
	l.Latitude = dl.Latitude
	l.Longitude = dl.Longitude
	l.TimeZone = dl.TimeZone.String()
}

func (l Location) ToDomain() (hours.Location, error) {
	tz, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return hours.Location{}, fmt.Errorf("invalid time zone %q", l.TimeZone)
	}
	return hours.Location{Latitude: l.Latitude, Longitude: l.Longitude, TimeZone: tz}, nil
}
