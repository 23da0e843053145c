package holidaycalendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"

	"openhours/internal/core/domain/hours"
)

var builtinHolidays = map[string][]*cal.Holiday{
	"CA": ca.Holidays,
	"DE": de.Holidays,
	"FR": fr.Holidays,
	"GB": gb.Holidays,
	"US": us.Holidays,
}

// Builtin serves national public holidays shipped with rickar/cal.
// Subdivisions get the national calendar. School holidays are unknown.
type Builtin struct{}

func NewBuiltin() *Builtin {
	return &Builtin{}
}

func (b *Builtin) HolidaysFor(kind hours.HolidayType, region hours.Region) (hours.HolidayCalendar, error) {
	if kind != hours.PublicHoliday {
		return nil, fmt.Errorf("%s in %s: %w", kind, region, hours.ErrUnknownRegion)
	}
	holidays, ok := builtinHolidays[strings.ToUpper(region.Country)]
	if !ok {
		return nil, fmt.Errorf("%s in %s: %w", kind, region, hours.ErrUnknownRegion)
	}
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(holidays...)
	return &builtinCalendar{calendar: calendar}, nil
}

type builtinCalendar struct {
	calendar *cal.BusinessCalendar
}

// IsHoliday counts both the actual and the observed day.
func (bc *builtinCalendar) IsHoliday(date time.Time) bool {
	y, m, d := date.Date()
	actual, observed, _ := bc.calendar.IsHoliday(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
	return actual || observed
}
