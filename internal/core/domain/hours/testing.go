package hours

import (
	"fmt"
	"sync"
	"time"
)

// FakeSolarResolver returns fixed times of day for every date.
type FakeSolarResolver struct {
	Times map[Event]time.Duration
	Error error
	Calls int
	lock  sync.Mutex
}

func NewFakeSolarResolver() *FakeSolarResolver {
	return &FakeSolarResolver{
		Times: map[Event]time.Duration{
			Dawn:    5*time.Hour + 30*time.Minute,
			Sunrise: 6 * time.Hour,
			Sunset:  20 * time.Hour,
			Dusk:    20*time.Hour + 30*time.Minute,
		},
	}
}

func (r *FakeSolarResolver) Resolve(event Event, date time.Time, loc Location) (time.Time, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Calls++
	if r.Error != nil {
		return time.Time{}, r.Error
	}
	offset, ok := r.Times[event]
	if !ok {
		return time.Time{}, fmt.Errorf("%s: %w", event, ErrNoSolarEvent)
	}
	tz := loc.TimeZone
	if tz == nil {
		tz = date.Location()
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, tz).Add(offset), nil
}

type FakeHolidayCalendar struct {
	Dates []time.Time
}

func (cal FakeHolidayCalendar) IsHoliday(date time.Time) bool {
	for _, d := range cal.Dates {
		if sameDate(d, date) {
			return true
		}
	}
	return false
}

// FakeHolidayProvider serves calendars keyed by type and region and
// counts lookups.
type FakeHolidayProvider struct {
	Calendars map[HolidayType]map[Region]FakeHolidayCalendar
	Error     error
	Calls     int
	lock      sync.Mutex
}

func NewFakeHolidayProvider() *FakeHolidayProvider {
	return &FakeHolidayProvider{Calendars: make(map[HolidayType]map[Region]FakeHolidayCalendar)}
}

func (p *FakeHolidayProvider) Add(kind HolidayType, region Region, dates ...time.Time) *FakeHolidayProvider {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.Calendars[kind] == nil {
		p.Calendars[kind] = make(map[Region]FakeHolidayCalendar)
	}
	cal := p.Calendars[kind][region]
	cal.Dates = append(cal.Dates, dates...)
	p.Calendars[kind][region] = cal
	return p
}

func (p *FakeHolidayProvider) HolidaysFor(kind HolidayType, region Region) (HolidayCalendar, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Calls++
	if p.Error != nil {
		return nil, p.Error
	}
	cal, ok := p.Calendars[kind][region]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", kind, region, ErrUnknownRegion)
	}
	return cal, nil
}

// FakeParser returns Rules for every input.
type FakeParser struct {
	Rules  []Rule
	Error  error
	Parsed []string
	lock   sync.Mutex
}

func NewFakeParser(rules ...Rule) *FakeParser {
	return &FakeParser{Rules: rules}
}

func (p *FakeParser) Parse(text string) ([]Rule, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Parsed = append(p.Parsed, text)
	if p.Error != nil {
		return nil, p.Error
	}
	return p.Rules, nil
}
