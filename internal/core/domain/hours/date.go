package hours

import (
	"fmt"
	"strings"
	"time"

	c "openhours/internal/core/domain/common"
)

type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

func ParseMonth(s string) (Month, bool) {
	for i, name := range monthNames {
		if name == s {
			return Month(i + 1), true
		}
	}
	return 0, false
}

type SpecialDate int

const (
	Easter SpecialDate = iota + 1
)

func (s SpecialDate) String() string {
	switch s {
	case Easter:
		return "easter"
	default:
		return fmt.Sprintf("SpecialDate(%d)", int(s))
	}
}

func (SpecialDate) isDateValue() {}

// DateValue is one of MonthDay, DayOfMonth or SpecialDate.
type DateValue interface {
	String() string
	isDateValue()
}

// MonthDay is a day of a month, or the whole month when Day is absent.
type MonthDay struct {
	Month Month
	Day   c.Optional[int]
}

func (md MonthDay) String() string {
	if !md.Day.IsPresent {
		return md.Month.String()
	}
	return fmt.Sprintf("%s %02d", md.Month, md.Day.Value)
}

func (MonthDay) isDateValue() {}

// DayOfMonth is a bare day number. It only appears as the end of a
// span and takes its month from the start.
type DayOfMonth int

func (d DayOfMonth) String() string {
	return fmt.Sprintf("%02d", int(d))
}

func (DayOfMonth) isDateValue() {}

type Date struct {
	Year  c.Optional[int]
	Value DateValue
}

func (d Date) String() string {
	if d.Year.IsPresent {
		return fmt.Sprintf("%d %s", d.Year.Value, d.Value)
	}
	return d.Value.String()
}

func (d Date) ContainsDate(date time.Time) (bool, error) {
	if d.Year.IsPresent && d.Year.Value != date.Year() {
		return false, nil
	}
	switch v := d.Value.(type) {
	case SpecialDate:
		return v == Easter && IsEaster(date), nil
	case MonthDay:
		if v.Day.IsPresent {
			if err := d.validate(v.Month, v.Day.Value); err != nil {
				return false, err
			}
		}
		if time.Month(v.Month) != date.Month() {
			return false, nil
		}
		return !v.Day.IsPresent || v.Day.Value == date.Day(), nil
	case DayOfMonth:
		if v < 1 || v > 31 {
			return false, fmt.Errorf("%s: %w", d, ErrInvalidDate)
		}
		return int(v) == date.Day(), nil
	default:
		return false, fmt.Errorf("%v: %w", d.Value, ErrUnsupportedSelector)
	}
}

// validate rejects days that never exist in month. Without a year
// Feb 29 is accepted.
func (d Date) validate(month Month, dayNum int) error {
	year := 2000
	if d.Year.IsPresent {
		year = d.Year.Value
	}
	if month < January || month > December || dayNum < 1 || dayNum > DaysInMonth(year, time.Month(month)) {
		return fmt.Errorf("%s: %w", d, ErrInvalidDate)
	}
	return nil
}

// bounds returns the first and last day d covers in year. ok is false
// when the date does not occur in that year (Feb 29 of a common year).
// DayOfMonth values take their month from inherit.
func (d Date) bounds(year int, inherit Month, loc *time.Location) (first, last time.Time, ok bool, err error) {
	if d.Year.IsPresent {
		year = d.Year.Value
	}
	switch v := d.Value.(type) {
	case SpecialDate:
		easter := EasterDate(year, loc)
		return easter, easter, true, nil
	case MonthDay:
		if !v.Day.IsPresent {
			if v.Month < January || v.Month > December {
				return first, last, false, fmt.Errorf("%s: %w", d, ErrInvalidDate)
			}
			first = time.Date(year, time.Month(v.Month), 1, 0, 0, 0, 0, loc)
			last = time.Date(year, time.Month(v.Month), DaysInMonth(year, time.Month(v.Month)), 0, 0, 0, 0, loc)
			return first, last, true, nil
		}
		return d.singleDay(year, v.Month, v.Day.Value, loc)
	case DayOfMonth:
		return d.singleDay(year, inherit, int(v), loc)
	default:
		return first, last, false, fmt.Errorf("%v: %w", d.Value, ErrUnsupportedSelector)
	}
}

func (d Date) singleDay(year int, month Month, dayNum int, loc *time.Location) (t, t2 time.Time, ok bool, err error) {
	if err := d.validate(month, dayNum); err != nil {
		return t, t2, false, err
	}
	if dayNum > DaysInMonth(year, time.Month(month)) {
		return t, t2, false, nil
	}
	t = time.Date(year, time.Month(month), dayNum, 0, 0, 0, 0, loc)
	return t, t, true, nil
}

// month returns the month a DayOfMonth end inherits from d.
func (d Date) month(year int, loc *time.Location) Month {
	switch v := d.Value.(type) {
	case MonthDay:
		return v.Month
	case SpecialDate:
		return Month(EasterDate(year, loc).Month())
	default:
		return 0
	}
}

// WeekdayAnchor moves a date to the next (Plus) or previous (Minus)
// given weekday.
type WeekdayAnchor struct {
	Sign PlusOrMinus
	Day  DayOfWeek
}

type DateOffset struct {
	Weekday c.Optional[WeekdayAnchor]
	Days    int
}

func (o DateOffset) String() string {
	var parts []string
	if o.Weekday.IsPresent {
		parts = append(parts, o.Weekday.Value.Sign.String()+o.Weekday.Value.Day.String())
	}
	if o.Days != 0 {
		parts = append(parts, fmt.Sprintf("%+d days", o.Days))
	}
	return strings.Join(parts, " ")
}

// Apply moves date strictly past it to the anchor weekday, if any, and
// then adds Days.
func (o DateOffset) Apply(date time.Time) time.Time {
	if o.Weekday.IsPresent {
		step := o.Weekday.Value.Sign.Apply(1)
		date = date.AddDate(0, 0, step)
		for DayOfWeekFromDate(date) != o.Weekday.Value.Day {
			date = date.AddDate(0, 0, step)
		}
	}
	return date.AddDate(0, 0, o.Days)
}

// MonthdaySpan is a range of calendar dates.
//
// Without an end the span covers its start date, or the whole month
// for a month without a day. Ranges are inclusive. A year-less range
// whose end precedes its start runs over New Year. A year-less open end
// runs to Dec 31, a year-qualified one never ends.
type MonthdaySpan struct {
	Start       Date
	StartOffset c.Optional[DateOffset]
	End         c.Optional[Date]
	EndOffset   c.Optional[DateOffset]
	OpenEnd     bool
}

func (ms MonthdaySpan) String() string {
	s := ms.Start.String()
	if ms.StartOffset.IsPresent {
		s += " " + ms.StartOffset.Value.String()
	}
	if ms.OpenEnd {
		return s + "+"
	}
	if ms.End.IsPresent {
		s += "-" + ms.End.Value.String()
		if ms.EndOffset.IsPresent {
			s += " " + ms.EndOffset.Value.String()
		}
	}
	return s
}

func (ms MonthdaySpan) ContainsDate(date time.Time, env Env) (bool, error) {
	if env.ReferenceMonthdays {
		return false, fmt.Errorf("%s: %w", ms, ErrUnsupportedSelector)
	}
	date = dateOf(date)
	if ms.isSingleDate() {
		return ms.Start.ContainsDate(date)
	}
	years := []int{date.Year() - 1, date.Year(), date.Year() + 1}
	if ms.Start.Year.IsPresent {
		years = []int{ms.Start.Year.Value}
	}
	for _, year := range years {
		from, to, ok, err := ms.interval(year, date.Location())
		if err != nil {
			return false, err
		}
		if ok && !date.Before(from) && (to.IsZero() || !date.After(to)) {
			return true, nil
		}
	}
	return false, nil
}

// isSingleDate reports whether the span is just its start date or
// month, without any shifting.
func (ms MonthdaySpan) isSingleDate() bool {
	return !ms.End.IsPresent && !ms.StartOffset.IsPresent && !ms.OpenEnd
}

// interval resolves the span for a start in year. A zero to means the
// span never ends.
func (ms MonthdaySpan) interval(year int, loc *time.Location) (from, to time.Time, ok bool, err error) {
	first, last, ok, err := ms.Start.bounds(year, 0, loc)
	if err != nil || !ok {
		return from, to, false, err
	}
	from = first
	if ms.StartOffset.IsPresent {
		from = ms.StartOffset.Value.Apply(first)
	}

	switch {
	case ms.OpenEnd:
		if ms.Start.Year.IsPresent {
			return from, time.Time{}, true, nil
		}
		return from, time.Date(from.Year(), time.December, 31, 0, 0, 0, 0, loc), true, nil
	case !ms.End.IsPresent:
		to = last
		if ms.StartOffset.IsPresent {
			to = ms.StartOffset.Value.Apply(last)
		}
		return from, to, true, nil
	}

	end := ms.End.Value
	endYear := first.Year()
	inherit := ms.Start.month(first.Year(), loc)
	_, to, ok, err = end.bounds(endYear, inherit, loc)
	if err != nil || !ok {
		return from, to, false, err
	}
	if ms.EndOffset.IsPresent {
		to = ms.EndOffset.Value.Apply(to)
	}
	if to.Before(from) && !end.Year.IsPresent {
		_, to, ok, err = end.bounds(endYear+1, inherit, loc)
		if err != nil || !ok {
			return from, to, false, err
		}
		if ms.EndOffset.IsPresent {
			to = ms.EndOffset.Value.Apply(to)
		}
	}
	return from, to, true, nil
}

// WeekSpan is a range of ISO week numbers.
type WeekSpan struct {
	Start int
	End   c.Optional[int]
	Every c.Optional[int]
}

func (ws WeekSpan) String() string {
	s := fmt.Sprintf("%02d", ws.Start)
	if ws.End.IsPresent {
		s += fmt.Sprintf("-%02d", ws.End.Value)
	}
	if ws.Every.IsPresent {
		s += fmt.Sprintf("/%d", ws.Every.Value)
	}
	return s
}

func (ws WeekSpan) ContainsDate(date time.Time) bool {
	_, week := date.ISOWeek()
	return week >= ws.Start &&
		(!ws.End.IsPresent || week <= ws.End.Value) &&
		(!ws.Every.IsPresent || ws.Every.Value <= 0 || (week-ws.Start)%ws.Every.Value == 0)
}

// YearSpan is a range of years. Without End and OpenEnd it is the
// single year Start.
type YearSpan struct {
	Start   int
	End     c.Optional[int]
	OpenEnd bool
	Every   c.Optional[int]
}

func (ys YearSpan) String() string {
	s := fmt.Sprint(ys.Start)
	if ys.End.IsPresent {
		s += fmt.Sprintf("-%d", ys.End.Value)
	}
	if ys.Every.IsPresent {
		s += fmt.Sprintf("/%d", ys.Every.Value)
	} else if ys.OpenEnd {
		s += "+"
	}
	return s
}

func (ys YearSpan) ContainsDate(date time.Time) bool {
	year := date.Year()
	return year >= ys.Start &&
		(ys.OpenEnd || year <= ys.End.ValueOr(ys.Start)) &&
		(!ys.Every.IsPresent || ys.Every.Value <= 0 || (year-ys.Start)%ys.Every.Value == 0)
}
