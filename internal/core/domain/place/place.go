package place

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
)

const (
	MAX_NAME_LENGTH          = 200
	MAX_OPENING_HOURS_LENGTH = 1024
	DEFAULT_READ_LIMIT       = 100
	MAX_READ_LIMIT           = 1000
)

type ID int64

type Place struct {
	ID           ID
	Name         string
	OpeningHours string
	Location     c.Optional[hours.Location]
	// Region selects the holiday calendars. An empty Country means the
	// service default.
	Region    hours.Region
	CreatedAt time.Time
}

func (p *Place) Validate() error {
	err := validation.ValidateStruct(
		p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, MAX_NAME_LENGTH)),
		validation.Field(&p.OpeningHours, validation.Required, validation.Length(1, MAX_OPENING_HOURS_LENGTH)),
	)
	if err != nil {
		return err
	}
	if p.Location.IsPresent {
		if err := ValidateLocation(p.Location.Value); err != nil {
			return err
		}
	}
	if p.Region.Country == "" && p.Region.Subdivision != "" {
		return ErrSubdivisionWithoutCountry
	}
	return nil
}

func ValidateLocation(loc hours.Location) error {
	return validation.ValidateStruct(
		&loc,
		validation.Field(&loc.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&loc.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&loc.TimeZone, validation.NotNil),
	)
}

// StatusChange is emitted when the evaluated status of a place differs
// from the last one seen.
type StatusChange struct {
	PlaceID  ID
	Previous c.Optional[hours.RuleStatus]
	Current  hours.RuleModifier
	At       time.Time
}

// StatusAt evaluates schedule for this place. Places without a region
// use the engine's default region.
func (p *Place) StatusAt(schedule *hours.Schedule, at time.Time) (hours.RuleModifier, error) {
	if p.Region.Country == "" {
		return schedule.Evaluate(at, p.Location)
	}
	return schedule.EvaluateIn(at, p.Location, p.Region)
}
