package hours

import (
	"fmt"
	"strings"
	"time"

	c "openhours/internal/core/domain/common"
)

// DayOfWeek counts from Monday (0) to Sunday (6).
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return weekdayNames[d]
}

func ParseDayOfWeek(s string) (DayOfWeek, bool) {
	for i, name := range weekdayNames {
		if name == s {
			return DayOfWeek(i), true
		}
	}
	return 0, false
}

func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek((int(date.Weekday()) + 6) % 7)
}

func (d DayOfWeek) Tomorrow() DayOfWeek {
	return (d + 1) % 7
}

// Until returns the days on the cyclic path from d to end, both
// included. The result always ends with end and has at most seven days.
func (d DayOfWeek) Until(end DayOfWeek) []DayOfWeek {
	days := []DayOfWeek{d}
	for day := d; day != end; {
		day = day.Tomorrow()
		days = append(days, day)
	}
	return days
}

// WeekdaySpan is a weekday, a weekday range, or the nth occurrences of a
// weekday within its month shifted by Offset days.
type WeekdaySpan struct {
	Start  DayOfWeek
	End    c.Optional[DayOfWeek]
	Nth    []int
	Offset int
}

func (ws WeekdaySpan) String() string {
	var b strings.Builder
	b.WriteString(ws.Start.String())
	if ws.End.IsPresent {
		b.WriteString("-" + ws.End.Value.String())
	}
	if len(ws.Nth) > 0 {
		nth := make([]string, len(ws.Nth))
		for i, n := range ws.Nth {
			nth[i] = fmt.Sprint(n)
		}
		b.WriteString("[" + strings.Join(nth, ",") + "]")
	}
	if ws.Offset != 0 {
		fmt.Fprintf(&b, " %+d days", ws.Offset)
	}
	return b.String()
}

func (ws WeekdaySpan) ContainsDate(date time.Time) bool {
	switch {
	case ws.End.IsPresent:
		wday := DayOfWeekFromDate(date)
		for _, d := range ws.Start.Until(ws.End.Value) {
			if d == wday {
				return true
			}
		}
		return false
	case len(ws.Nth) > 0:
		return ws.containsNth(date)
	default:
		return DayOfWeekFromDate(date) == ws.Start
	}
}

func (ws WeekdaySpan) containsNth(date time.Time) bool {
	shifted := date.AddDate(0, 0, -ws.Offset)
	if DayOfWeekFromDate(shifted) != ws.Start {
		return false
	}
	nth := NthWeekdayOfMonth(shifted)
	count := len(WeekdaysInMonth(shifted))
	for _, n := range ws.Nth {
		// -1 is the last occurrence, -count the first
		if n == nth || (n < 0 && count+n+1 == nth) {
			return true
		}
	}
	return false
}

type HolidayType int

const (
	PublicHoliday HolidayType = iota + 1
	SchoolHoliday
)

func (h HolidayType) String() string {
	switch h {
	case PublicHoliday:
		return "PH"
	case SchoolHoliday:
		return "SH"
	default:
		return fmt.Sprintf("HolidayType(%d)", int(h))
	}
}

// Holiday matches dates that are Offset days after a holiday of Type.
type Holiday struct {
	Type   HolidayType
	Offset int
}

func (h Holiday) String() string {
	if h.Offset == 0 {
		return h.Type.String()
	}
	return fmt.Sprintf("%s %+d days", h.Type, h.Offset)
}

func (h Holiday) ContainsDate(date time.Time, env Env) (bool, error) {
	if env.Holidays == nil {
		return false, fmt.Errorf("%s: holiday provider is not configured", h.Type)
	}
	calendar, err := env.Holidays.HolidaysFor(h.Type, env.Region)
	if err != nil {
		return false, fmt.Errorf("could not get %s calendar for %s: %w", h.Type, env.Region, err)
	}
	return calendar.IsHoliday(date.AddDate(0, 0, -h.Offset)), nil
}

type WeekdaySelector struct {
	Weekdays []WeekdaySpan
	Holidays []Holiday
}

func (s WeekdaySelector) String() string {
	parts := make([]string, 0, len(s.Weekdays)+len(s.Holidays))
	for _, h := range s.Holidays {
		parts = append(parts, h.String())
	}
	for _, ws := range s.Weekdays {
		parts = append(parts, ws.String())
	}
	return strings.Join(parts, ",")
}

func (s WeekdaySelector) ContainsDate(date time.Time, env Env) (bool, error) {
	for _, ws := range s.Weekdays {
		if ws.ContainsDate(date) {
			return true, nil
		}
	}
	for _, h := range s.Holidays {
		ok, err := h.ContainsDate(date, env)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
