package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "openhours/internal/core/domain/common"
)

func monthDay(m Month, d int) Date {
	return Date{Value: MonthDay{Month: m, Day: c.Some(d)}}
}

func month(m Month) Date {
	return Date{Value: MonthDay{Month: m}}
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("Sep")
	assert.True(t, ok)
	assert.Equal(t, September, m)

	_, ok = ParseMonth("Sept")
	assert.False(t, ok)
}

func TestDateContainsDate(t *testing.T) {
	cases := []struct {
		name string
		d    Date
		on   time.Time
		want bool
	}{
		{name: "month day", d: monthDay(December, 25), on: date(2022, time.December, 25), want: true},
		{name: "month day other day", d: monthDay(December, 25), on: date(2022, time.December, 24), want: false},
		{name: "year mismatch", d: Date{Year: c.Some(2023), Value: MonthDay{Month: December, Day: c.Some(25)}}, on: date(2022, time.December, 25), want: false},
		{name: "whole month", d: month(March), on: date(2022, time.March, 17), want: true},
		{name: "easter", d: Date{Value: Easter}, on: date(2022, time.April, 17), want: true},
		{name: "not easter", d: Date{Value: Easter}, on: date(2022, time.April, 18), want: false},
		{name: "day of month", d: Date{Value: DayOfMonth(15)}, on: date(2022, time.May, 15), want: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			got, err := testcase.d.ContainsDate(testcase.on)
			require.NoError(t, err)
			assert.Equal(t, testcase.want, got)
		})
	}
}

func TestDateInvalid(t *testing.T) {
	for _, d := range []Date{
		monthDay(February, 30),
		monthDay(April, 31),
		{Year: c.Some(2022), Value: MonthDay{Month: February, Day: c.Some(29)}},
		{Value: DayOfMonth(0)},
		{Value: DayOfMonth(32)},
	} {
		t.Run(d.String(), func(t *testing.T) {
			_, err := d.ContainsDate(date(2022, time.February, 1))
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestDateOffsetApply(t *testing.T) {
	christmas := date(2022, time.December, 25) // Sunday

	nextSunday := DateOffset{Weekday: c.Some(WeekdayAnchor{Sign: Plus, Day: Sunday})}
	assert.Equal(t, date(2023, time.January, 1), nextSunday.Apply(christmas))

	previousFriday := DateOffset{Weekday: c.Some(WeekdayAnchor{Sign: Minus, Day: Friday}), Days: 1}
	assert.Equal(t, date(2022, time.December, 24), previousFriday.Apply(christmas))

	assert.Equal(t, date(2022, time.December, 23), DateOffset{Days: -2}.Apply(christmas))
}

func TestMonthdaySpanContainsDate(t *testing.T) {
	cases := []struct {
		name string
		span MonthdaySpan
		on   time.Time
		want bool
	}{
		{
			name: "single date",
			span: MonthdaySpan{Start: monthDay(December, 25)},
			on:   date(2022, time.December, 25),
			want: true,
		},
		{
			name: "single month",
			span: MonthdaySpan{Start: month(March)},
			on:   date(2022, time.March, 31),
			want: true,
		},
		{
			name: "month range",
			span: MonthdaySpan{Start: month(January), End: c.Some(month(March))},
			on:   date(2022, time.February, 15),
			want: true,
		},
		{
			name: "month range end",
			span: MonthdaySpan{Start: month(January), End: c.Some(month(March))},
			on:   date(2022, time.April, 1),
			want: false,
		},
		{
			name: "day of month end",
			span: MonthdaySpan{Start: monthDay(January, 5), End: c.Some(Date{Value: DayOfMonth(15)})},
			on:   date(2022, time.January, 15),
			want: true,
		},
		{
			name: "day of month past end",
			span: MonthdaySpan{Start: monthDay(January, 5), End: c.Some(Date{Value: DayOfMonth(15)})},
			on:   date(2022, time.January, 16),
			want: false,
		},
		{
			name: "over new year in january",
			span: MonthdaySpan{Start: monthDay(December, 24), End: c.Some(monthDay(January, 6))},
			on:   date(2023, time.January, 3),
			want: true,
		},
		{
			name: "over new year in december",
			span: MonthdaySpan{Start: monthDay(December, 24), End: c.Some(monthDay(January, 6))},
			on:   date(2022, time.December, 30),
			want: true,
		},
		{
			name: "over new year outside",
			span: MonthdaySpan{Start: monthDay(December, 24), End: c.Some(monthDay(January, 6))},
			on:   date(2023, time.January, 10),
			want: false,
		},
		{
			name: "year-less open end",
			span: MonthdaySpan{Start: monthDay(June, 1), OpenEnd: true},
			on:   date(2022, time.December, 31),
			want: true,
		},
		{
			name: "year-less open end stops at new year",
			span: MonthdaySpan{Start: monthDay(June, 1), OpenEnd: true},
			on:   date(2023, time.January, 1),
			want: false,
		},
		{
			name: "year open end",
			span: MonthdaySpan{Start: Date{Year: c.Some(2022), Value: MonthDay{Month: June, Day: c.Some(1)}}, OpenEnd: true},
			on:   date(2030, time.January, 1),
			want: true,
		},
		{
			name: "year open end before start",
			span: MonthdaySpan{Start: Date{Year: c.Some(2022), Value: MonthDay{Month: June, Day: c.Some(1)}}, OpenEnd: true},
			on:   date(2022, time.May, 31),
			want: false,
		},
		{
			name: "weekday offset into next year",
			span: MonthdaySpan{
				Start:       monthDay(December, 25),
				StartOffset: c.Some(DateOffset{Weekday: c.Some(WeekdayAnchor{Sign: Plus, Day: Sunday})}),
			},
			on:   date(2023, time.January, 1),
			want: true,
		},
		{
			name: "easter offset",
			span: MonthdaySpan{Start: Date{Value: Easter}, StartOffset: c.Some(DateOffset{Days: -2})},
			on:   date(2022, time.April, 15),
			want: true,
		},
		{
			name: "easter to end offset",
			span: MonthdaySpan{
				Start:     Date{Value: Easter},
				End:       c.Some(Date{Value: Easter}),
				EndOffset: c.Some(DateOffset{Days: 1}),
			},
			on:   date(2022, time.April, 18),
			want: true,
		},
		{
			name: "single date of another year",
			span: MonthdaySpan{Start: Date{Year: c.Some(2023), Value: MonthDay{Month: December, Day: c.Some(25)}}},
			on:   date(2022, time.December, 25),
			want: false,
		},
		{
			name: "single easter",
			span: MonthdaySpan{Start: Date{Value: Easter}},
			on:   date(2023, time.April, 9),
			want: true,
		},
		{
			name: "leap day in common year",
			span: MonthdaySpan{Start: monthDay(February, 29)},
			on:   date(2022, time.March, 1),
			want: false,
		},
		{
			name: "leap day in leap year",
			span: MonthdaySpan{Start: monthDay(February, 29)},
			on:   date(2024, time.February, 29),
			want: true,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			got, err := testcase.span.ContainsDate(testcase.on, Env{})
			require.NoError(t, err)
			assert.Equal(t, testcase.want, got)
		})
	}
}

func TestMonthdaySpanInvalidDate(t *testing.T) {
	ms := MonthdaySpan{Start: monthDay(February, 30)}

	_, err := ms.ContainsDate(date(2022, time.February, 1), Env{})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthdaySpanReferenceBehavior(t *testing.T) {
	ms := MonthdaySpan{Start: monthDay(January, 1), End: c.Some(monthDay(March, 15))}

	_, err := ms.ContainsDate(date(2022, time.February, 1), Env{ReferenceMonthdays: true})

	assert.ErrorIs(t, err, ErrUnsupportedSelector)
}

func TestWeekSpanContainsDate(t *testing.T) {
	ws := WeekSpan{Start: 1, End: c.Some(10), Every: c.Some(2)}

	assert.True(t, ws.ContainsDate(date(2022, time.January, 3)))   // week 1
	assert.False(t, ws.ContainsDate(date(2022, time.January, 10))) // week 2
	assert.True(t, ws.ContainsDate(date(2022, time.January, 17)))  // week 3
	assert.False(t, ws.ContainsDate(date(2022, time.March, 14)))   // week 11

	// Jan 1 2022 is in week 52 of 2021
	assert.False(t, WeekSpan{Start: 1, End: c.Some(1)}.ContainsDate(date(2022, time.January, 1)))
}

func TestYearSpanContainsDate(t *testing.T) {
	cases := []struct {
		name string
		ys   YearSpan
		year int
		want bool
	}{
		{name: "single", ys: YearSpan{Start: 2022}, year: 2022, want: true},
		{name: "single other", ys: YearSpan{Start: 2022}, year: 2023, want: false},
		{name: "range", ys: YearSpan{Start: 2020, End: c.Some(2025)}, year: 2025, want: true},
		{name: "open end", ys: YearSpan{Start: 2020, OpenEnd: true}, year: 2100, want: true},
		{name: "before open end", ys: YearSpan{Start: 2020, OpenEnd: true}, year: 2019, want: false},
		{name: "every", ys: YearSpan{Start: 2020, OpenEnd: true, Every: c.Some(2)}, year: 2024, want: true},
		{name: "every off year", ys: YearSpan{Start: 2020, OpenEnd: true, Every: c.Some(2)}, year: 2023, want: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			assert.Equal(t, testcase.want, testcase.ys.ContainsDate(date(testcase.year, time.June, 1)))
		})
	}
}
