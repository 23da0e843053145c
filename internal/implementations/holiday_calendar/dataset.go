package holidaycalendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"openhours/internal/core/domain/hours"
)

const dateLayout = "2006-01-02"

// date is a comparable calendar day used as a map key.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

type datasetFile struct {
	Regions []datasetRegion `yaml:"regions"`
}

type datasetRegion struct {
	Country     string          `yaml:"country"`
	Subdivision string          `yaml:"subdivision"`
	Public      []string        `yaml:"public"`
	School      []datasetPeriod `yaml:"school"`
}

type datasetPeriod struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type period struct {
	from date
	to   date
}

type regionDays struct {
	public map[date]bool
	school []period
}

// Dataset serves public and school holidays listed in a YAML file:
//
//	regions:
//	  - country: US
//	    subdivision: PA
//	    public: [2022-06-19]
//	    school:
//	      - {from: 2022-06-15, to: 2022-08-31}
//
// A subdivision without its own entry falls back to its country.
type Dataset struct {
	regions map[hours.Region]*regionDays
}

func LoadDataset(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read holidays file: %w", err)
	}
	return ParseDataset(content)
}

func ParseDataset(content []byte) (*Dataset, error) {
	var file datasetFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("could not parse holidays file: %w", err)
	}

	ds := &Dataset{regions: make(map[hours.Region]*regionDays)}
	for _, r := range file.Regions {
		if r.Country == "" {
			return nil, fmt.Errorf("holidays file: region without country")
		}
		region := normalizeRegion(hours.Region{Country: r.Country, Subdivision: r.Subdivision})
		days, ok := ds.regions[region]
		if !ok {
			days = &regionDays{public: make(map[date]bool)}
			ds.regions[region] = days
		}
		for _, s := range r.Public {
			d, err := parseDate(s)
			if err != nil {
				return nil, fmt.Errorf("holidays file, %s: %w", region, err)
			}
			days.public[d] = true
		}
		for _, p := range r.School {
			from, err := parseDate(p.From)
			if err != nil {
				return nil, fmt.Errorf("holidays file, %s: %w", region, err)
			}
			to, err := parseDate(p.To)
			if err != nil {
				return nil, fmt.Errorf("holidays file, %s: %w", region, err)
			}
			if to.before(from) {
				return nil, fmt.Errorf("holidays file, %s: school holiday ends before it starts: %s", region, p.From)
			}
			days.school = append(days.school, period{from: from, to: to})
		}
	}
	return ds, nil
}

func (ds *Dataset) HolidaysFor(kind hours.HolidayType, region hours.Region) (hours.HolidayCalendar, error) {
	region = normalizeRegion(region)
	days, ok := ds.regions[region]
	if !ok && region.Subdivision != "" {
		days, ok = ds.regions[hours.Region{Country: region.Country}]
	}
	if !ok {
		return nil, fmt.Errorf("%s in %s: %w", kind, region, hours.ErrUnknownRegion)
	}

	switch kind {
	case hours.PublicHoliday:
		return publicCalendar(days.public), nil
	case hours.SchoolHoliday:
		return schoolCalendar(days.school), nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, hours.ErrUnsupportedSelector)
	}
}

type publicCalendar map[date]bool

func (pc publicCalendar) IsHoliday(t time.Time) bool {
	return pc[dateFromTime(t)]
}

type schoolCalendar []period

func (sc schoolCalendar) IsHoliday(t time.Time) bool {
	d := dateFromTime(t)
	for _, p := range sc {
		if !d.before(p.from) && !p.to.before(d) {
			return true
		}
	}
	return false
}

func parseDate(s string) (date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return dateFromTime(t), nil
}

func normalizeRegion(r hours.Region) hours.Region {
	return hours.Region{Country: strings.ToUpper(r.Country), Subdivision: strings.ToUpper(r.Subdivision)}
}
