package hours

import (
	"fmt"
	"time"

	c "openhours/internal/core/domain/common"
)

const day = 24 * time.Hour

// Time is a wall clock time. Hours above 24 only appear as the end of
// a span and mean "past midnight".
type Time struct {
	Hour   int
	Minute int
}

func NewTime(hour, minute int) Time {
	return Time{Hour: hour, Minute: minute}
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t Time) Resolve(date time.Time, env Env) (time.Duration, error) {
	return t.Duration(), nil
}

func (Time) isExtendedTime() {}

type Event int

const (
	Dawn Event = iota + 1
	Sunrise
	Sunset
	Dusk
)

var eventNames = map[Event]string{
	Dawn:    "dawn",
	Sunrise: "sunrise",
	Sunset:  "sunset",
	Dusk:    "dusk",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

func ParseEvent(s string) (Event, bool) {
	for e, name := range eventNames {
		if name == s {
			return e, true
		}
	}
	return 0, false
}

type PlusOrMinus int

const (
	Plus PlusOrMinus = iota
	Minus
)

func (pm PlusOrMinus) Apply(n int) int {
	switch pm {
	case Minus:
		return -n
	default:
		return n
	}
}

func (pm PlusOrMinus) String() string {
	switch pm {
	case Minus:
		return "-"
	default:
		return "+"
	}
}

// VariableTime is a solar event shifted by a fixed offset.
type VariableTime struct {
	Event  Event
	Sign   PlusOrMinus
	Offset Time
}

func NewVariableTime(event Event) VariableTime {
	return VariableTime{Event: event, Sign: Plus}
}

func (v VariableTime) String() string {
	if v.Offset == (Time{}) {
		return v.Event.String()
	}
	return fmt.Sprintf("(%s%s%s)", v.Event, v.Sign, v.Offset)
}

func (v VariableTime) Resolve(date time.Time, env Env) (time.Duration, error) {
	if !env.Location.IsPresent {
		return 0, fmt.Errorf("%s: %w", v.Event, ErrLocationRequired)
	}
	if env.Sun == nil {
		return 0, fmt.Errorf("%s: solar resolver is not configured", v.Event)
	}
	loc := env.Location.Value
	instant, err := env.Sun.Resolve(v.Event, date, loc)
	if err != nil {
		return 0, fmt.Errorf("could not resolve %s on %s: %w", v.Event, date.Format("2006-01-02"), err)
	}
	tz := loc.TimeZone
	if tz == nil {
		tz = date.Location()
	}
	shifted := instant.In(tz).Add(time.Duration(v.Sign.Apply(1)) * v.Offset.Duration())
	return timeOfDay(shifted), nil
}

func (VariableTime) isExtendedTime() {}

// ExtendedTime is either a fixed Time or a VariableTime.
type ExtendedTime interface {
	// Resolve returns the offset from local midnight of date.
	Resolve(date time.Time, env Env) (time.Duration, error)
	String() string
	isExtendedTime()
}

// TimeSpan is an interval within one day. End is nil when no end was
// written, which is either an open end or a single point in time.
type TimeSpan struct {
	Start   ExtendedTime
	End     ExtendedTime
	OpenEnd bool
	Every   c.Optional[Time]
}

func (ts TimeSpan) String() string {
	s := ts.Start.String()
	if ts.End != nil {
		s += "-" + ts.End.String()
	}
	if ts.OpenEnd {
		s += "+"
	}
	if ts.Every.IsPresent {
		s += "/" + ts.Every.Value.String()
	}
	return s
}

func (ts TimeSpan) Contains(at time.Time, env Env) (bool, error) {
	date := dateOf(at)
	t := timeOfDay(at)

	start, err := ts.Start.Resolve(date, env)
	if err != nil {
		return false, err
	}
	if ts.OpenEnd {
		return t >= start, nil
	}
	if ts.End == nil {
		return t >= start && t < start+time.Minute, nil
	}

	end, err := ts.End.Resolve(date, env)
	if err != nil {
		return false, err
	}
	if end > day {
		end -= day
	}
	if start <= end {
		return start <= t && t <= end, nil
	}
	// wraps past midnight, e.g. 21:00-05:00
	return t >= start || t <= end, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
