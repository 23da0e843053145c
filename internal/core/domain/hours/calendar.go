package hours

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// FirstWeekdayInMonth returns the first day of date's month that falls
// on the same weekday as date, e.g. 2022-06-10 (Fr) -> 2022-06-03.
func FirstWeekdayInMonth(date time.Time) time.Time {
	y, m, _ := date.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
	days := (int(date.Weekday()) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, days)
}

// NthWeekdayOfMonth returns which occurrence (1-based) of its weekday
// date is within its month.
func NthWeekdayOfMonth(date time.Time) int {
	first := FirstWeekdayInMonth(date)
	return (date.Day()-first.Day())/7 + 1
}

// WeekdaysInMonth returns every day of date's month that falls on the
// same weekday as date, in order.
func WeekdaysInMonth(date time.Time) []time.Time {
	first := FirstWeekdayInMonth(date)
	n := DaysInMonth(first.Year(), first.Month())
	var days []time.Time
	for d := first.Day(); d <= n; d += 7 {
		days = append(days, first.AddDate(0, 0, d-first.Day()))
	}
	return days
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	// mid-month noon stays in the same month whatever zone carbon reads it in
	return carbon.Time2Carbon(time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)).DaysInMonth()
}

// EasterDate returns Western Easter Sunday of year, using the
// anonymous Gregorian algorithm.
func EasterDate(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

func IsEaster(date time.Time) bool {
	return sameDate(date, EasterDate(date.Year(), date.Location()))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
