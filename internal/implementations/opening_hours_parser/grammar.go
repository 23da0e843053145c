package openinghoursparser

import (
	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
)

// grammar holds one production per method. A production either
// succeeds and returns its node, or fails and restores the cursor.
// Optional parts are greedy: once matched they are not retried
// without, except that a comma inside a list gives way to a rule
// separator when no list element follows it.
type grammar struct {
	scanner
}

func (g *grammar) timeDomain() ([]hours.Rule, bool) {
	var rules []hours.Rule
	for {
		rule, ok := g.rule()
		if !ok {
			return nil, false
		}
		rules = append(rules, rule)
		if !g.separator() {
			break
		}
	}
	if !g.atEnd() {
		g.expect("end of input")
		return nil, false
	}
	return rules, true
}

// separator accepts ";", "," and "||" alike.
func (g *grammar) separator() bool {
	return g.lit(";") || g.lit(",") || g.lit("||")
}

func (g *grammar) rule() (hours.Rule, bool) {
	g.skipSpace()
	start := g.pos
	selector := g.selector()
	modifier := g.modifier()
	if g.pos == start {
		g.expect("rule")
		return hours.Rule{}, false
	}
	return hours.Rule{Selector: selector, Modifier: modifier}, true
}

func (g *grammar) selector() hours.TimeSelector {
	if g.lit("24/7") {
		return hours.TimeSelector{Always: true}
	}
	var sel hours.TimeSelector
	g.wideRange(&sel)
	g.smallRange(&sel)
	return sel
}

func (g *grammar) wideRange(sel *hours.TimeSelector) {
	mark := g.pos
	if text, ok := g.quoted(); ok && g.lit(":") {
		sel.Comment = c.Some(hours.Comment{Text: text})
		return
	}
	g.pos = mark

	sel.Years = list(g, g.yearRange)
	sel.Monthdays = list(g, g.monthdayRange)
	sel.Weeks = g.weeks()
	g.lit(":")
}

func (g *grammar) smallRange(sel *hours.TimeSelector) {
	if ws, ok := g.weekdaySelector(); ok {
		sel.Weekdays = c.Some(ws)
	}
	sel.Times = list(g, g.timeSpan)
}

// list parses item { "," item }.
func list[T any](g *grammar, item func() (T, bool)) []T {
	first, ok := item()
	if !ok {
		return nil
	}
	items := []T{first}
	for {
		mark := g.pos
		if !g.lit(",") {
			return items
		}
		next, ok := item()
		if !ok {
			g.pos = mark
			return items
		}
		items = append(items, next)
	}
}

func (g *grammar) year() (int, bool) {
	return g.number("year", 4, 4)
}

func (g *grammar) positive() (int, bool) {
	return g.number("number", 1, 9)
}

func (g *grammar) yearRange() (hours.YearSpan, bool) {
	start, ok := g.year()
	if !ok {
		return hours.YearSpan{}, false
	}
	ys := hours.YearSpan{Start: start}
	mark := g.pos

	if g.lit("+") {
		ys.OpenEnd = true
		return ys, true
	}
	if g.lit("/") {
		if every, ok := g.positive(); ok {
			ys.Every = c.Some(every)
			ys.OpenEnd = true
			return ys, true
		}
	}
	g.pos = mark
	if g.lit("-") {
		if end, ok := g.year(); ok {
			ys.End = c.Some(end)
			afterEnd := g.pos
			if g.lit("/") {
				if every, ok := g.positive(); ok {
					ys.Every = c.Some(every)
					return ys, true
				}
			}
			g.pos = afterEnd
			return ys, true
		}
	}
	g.pos = mark
	return ys, true
}

func (g *grammar) month() (hours.Month, bool) {
	w, ok := g.keyword("month", false, "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec")
	if !ok {
		return 0, false
	}
	m, _ := hours.ParseMonth(w)
	return m, true
}

func (g *grammar) weekday() (hours.DayOfWeek, bool) {
	w, ok := g.keyword("weekday", false, "Mo", "Tu", "We", "Th", "Fr", "Sa", "Su")
	if !ok {
		return 0, false
	}
	d, _ := hours.ParseDayOfWeek(w)
	return d, true
}

func (g *grammar) dayNum() (int, bool) {
	return g.number("day", 1, 2)
}

func (g *grammar) optYear() c.Optional[int] {
	mark := g.pos
	if y, ok := g.year(); ok {
		return c.Some(y)
	}
	g.pos = mark
	return c.Optional[int]{}
}

func (g *grammar) dateFrom() (hours.Date, bool) {
	mark := g.pos
	year := g.optYear()
	if m, ok := g.month(); ok {
		if d, ok := g.dayNum(); ok {
			return hours.Date{Year: year, Value: hours.MonthDay{Month: m, Day: c.Some(d)}}, true
		}
	}
	g.pos = mark
	year = g.optYear()
	if _, ok := g.keyword(`"easter"`, false, "easter"); ok {
		return hours.Date{Year: year, Value: hours.Easter}, true
	}
	g.pos = mark
	return hours.Date{}, false
}

func (g *grammar) dateTo() (hours.Date, bool) {
	if d, ok := g.dateFrom(); ok {
		return d, true
	}
	mark := g.pos
	if n, ok := g.dayNum(); ok {
		return hours.Date{Value: hours.DayOfMonth(n)}, true
	}
	g.pos = mark
	return hours.Date{}, false
}

// dayOffset parses ("+"|"-") N ("day"|"days").
func (g *grammar) dayOffset() (int, bool) {
	mark := g.pos
	if sign, ok := g.sign(); ok {
		if n, ok := g.positive(); ok {
			if _, ok := g.keyword(`"days"`, false, "days", "day"); ok {
				return sign.Apply(n), true
			}
		}
	}
	g.pos = mark
	return 0, false
}

func (g *grammar) dateOffset() (hours.DateOffset, bool) {
	var offset hours.DateOffset
	found := false

	mark := g.pos
	if sign, ok := g.sign(); ok {
		if d, ok := g.weekday(); ok {
			offset.Weekday = c.Some(hours.WeekdayAnchor{Sign: sign, Day: d})
			found = true
		}
	}
	if !found {
		g.pos = mark
	}
	if n, ok := g.dayOffset(); ok {
		offset.Days = n
		found = true
	}
	return offset, found
}

func (g *grammar) monthdayRange() (hours.MonthdaySpan, bool) {
	mark := g.pos
	if from, ok := g.dateFrom(); ok {
		ms := hours.MonthdaySpan{Start: from}
		if offset, ok := g.dateOffset(); ok {
			ms.StartOffset = c.Some(offset)
		}
		g.monthdayTail(&ms)
		return ms, true
	}

	g.pos = mark
	year := g.optYear()
	start, ok := g.month()
	if !ok {
		g.pos = mark
		return hours.MonthdaySpan{}, false
	}
	ms := hours.MonthdaySpan{Start: hours.Date{Year: year, Value: hours.MonthDay{Month: start}}}
	afterStart := g.pos
	if g.lit("-") {
		if end, ok := g.month(); ok {
			ms.End = c.Some(hours.Date{Value: hours.MonthDay{Month: end}})
			return ms, true
		}
	}
	g.pos = afterStart
	return ms, true
}

// monthdayTail parses an optional open end or "-" date_to [date_offset].
func (g *grammar) monthdayTail(ms *hours.MonthdaySpan) {
	mark := g.pos
	if g.lit("+") {
		ms.OpenEnd = true
		return
	}
	if g.lit("-") {
		if to, ok := g.dateTo(); ok {
			ms.End = c.Some(to)
			if offset, ok := g.dateOffset(); ok {
				ms.EndOffset = c.Some(offset)
			}
			return
		}
	}
	g.pos = mark
}

func (g *grammar) weeks() []hours.WeekSpan {
	mark := g.pos
	if _, ok := g.keyword(`"week"`, true, "week"); !ok {
		return nil
	}
	weeks := list(g, g.week)
	if len(weeks) == 0 {
		g.pos = mark
	}
	return weeks
}

func (g *grammar) weekNum() (int, bool) {
	return g.number("week number", 1, 2)
}

func (g *grammar) week() (hours.WeekSpan, bool) {
	start, ok := g.weekNum()
	if !ok {
		return hours.WeekSpan{}, false
	}
	ws := hours.WeekSpan{Start: start}
	mark := g.pos
	if g.lit("-") {
		if end, ok := g.weekNum(); ok {
			ws.End = c.Some(end)
			afterEnd := g.pos
			if g.lit("/") {
				if every, ok := g.positive(); ok {
					ws.Every = c.Some(every)
					return ws, true
				}
			}
			g.pos = afterEnd
			return ws, true
		}
	}
	g.pos = mark
	return ws, true
}

func (g *grammar) weekdaySelector() (hours.WeekdaySelector, bool) {
	if holidays := list(g, g.holiday); len(holidays) > 0 {
		afterHolidays := g.pos
		g.lit(",")
		if weekdays := list(g, g.weekdayRange); len(weekdays) > 0 {
			return hours.WeekdaySelector{Weekdays: weekdays, Holidays: holidays}, true
		}
		g.pos = afterHolidays
		return hours.WeekdaySelector{Holidays: holidays}, true
	}
	if weekdays := list(g, g.weekdayRange); len(weekdays) > 0 {
		afterWeekdays := g.pos
		if g.lit(",") {
			if holidays := list(g, g.holiday); len(holidays) > 0 {
				return hours.WeekdaySelector{Weekdays: weekdays, Holidays: holidays}, true
			}
		}
		g.pos = afterWeekdays
		return hours.WeekdaySelector{Weekdays: weekdays}, true
	}
	return hours.WeekdaySelector{}, false
}

// holiday parses "PH" [day_offset] or "SH". School holidays take no
// offset.
func (g *grammar) holiday() (hours.Holiday, bool) {
	w, ok := g.keyword("holiday", false, "PH", "SH")
	if !ok {
		return hours.Holiday{}, false
	}
	if w == "SH" {
		return hours.Holiday{Type: hours.SchoolHoliday}, true
	}
	h := hours.Holiday{Type: hours.PublicHoliday}
	if n, ok := g.dayOffset(); ok {
		h.Offset = n
	}
	return h, true
}

func (g *grammar) weekdayRange() (hours.WeekdaySpan, bool) {
	start, ok := g.weekday()
	if !ok {
		return hours.WeekdaySpan{}, false
	}
	ws := hours.WeekdaySpan{Start: start}
	mark := g.pos

	if g.lit("-") {
		if end, ok := g.weekday(); ok {
			ws.End = c.Some(end)
			return ws, true
		}
	}
	g.pos = mark
	if g.lit("[") {
		if nth := list(g, g.nthEntry); len(nth) > 0 && g.lit("]") {
			for _, entry := range nth {
				ws.Nth = append(ws.Nth, entry...)
			}
			if n, ok := g.dayOffset(); ok {
				ws.Offset = n
			}
			return ws, true
		}
	}
	g.pos = mark
	return ws, true
}

// nthEntry parses -N, N or N-M with N and M in 1..5. Ranges expand to
// every index they cover.
func (g *grammar) nthEntry() ([]int, bool) {
	g.skipSpace()
	mark := g.pos
	if g.pos+1 < len(g.input) && g.input[g.pos] == '-' && isDigit(g.input[g.pos+1]) {
		g.pos++
		if n, ok := g.nthDigit(); ok {
			return []int{-n}, true
		}
		g.pos = mark
		return nil, false
	}
	start, ok := g.nthDigit()
	if !ok {
		return nil, false
	}
	afterStart := g.pos
	if g.lit("-") {
		if end, ok := g.nthDigit(); ok && end >= start {
			indices := make([]int, 0, end-start+1)
			for n := start; n <= end; n++ {
				indices = append(indices, n)
			}
			return indices, true
		}
	}
	g.pos = afterStart
	return []int{start}, true
}

func (g *grammar) nthDigit() (int, bool) {
	mark := g.pos
	n, ok := g.number("1-5", 1, 1)
	if !ok || n < 1 || n > 5 {
		g.pos = mark
		if ok {
			g.expect("1-5")
		}
		return 0, false
	}
	return n, true
}

func (g *grammar) event() (hours.Event, bool) {
	w, ok := g.keyword("event", false, "dawn", "sunrise", "sunset", "dusk")
	if !ok {
		return 0, false
	}
	e, _ := hours.ParseEvent(w)
	return e, true
}

// variableTime parses event or "(" event ("+"|"-") HH:MM ")".
func (g *grammar) variableTime() (hours.VariableTime, bool) {
	mark := g.pos
	if e, ok := g.event(); ok {
		return hours.NewVariableTime(e), true
	}
	g.pos = mark
	if g.lit("(") {
		if e, ok := g.event(); ok {
			if sign, ok := g.sign(); ok {
				if offset, ok := g.clock(24); ok && g.lit(")") {
					return hours.VariableTime{Event: e, Sign: sign, Offset: offset}, true
				}
			}
		}
	}
	g.pos = mark
	return hours.VariableTime{}, false
}

func (g *grammar) extendedTime(maxHour int) (hours.ExtendedTime, bool) {
	mark := g.pos
	if t, ok := g.clock(maxHour); ok {
		return t, true
	}
	g.pos = mark
	if v, ok := g.variableTime(); ok {
		return v, true
	}
	return nil, false
}

func (g *grammar) timeSpan() (hours.TimeSpan, bool) {
	start, ok := g.extendedTime(24)
	if !ok {
		return hours.TimeSpan{}, false
	}
	ts := hours.TimeSpan{Start: start}
	mark := g.pos

	if g.lit("+") {
		ts.OpenEnd = true
		return ts, true
	}
	if g.lit("-") {
		if end, ok := g.extendedTime(48); ok {
			ts.End = end
			afterEnd := g.pos
			if g.lit("+") {
				ts.OpenEnd = true
				return ts, true
			}
			if g.lit("/") {
				if every, ok := g.every(); ok {
					ts.Every = c.Some(every)
					return ts, true
				}
			}
			g.pos = afterEnd
			return ts, true
		}
	}
	g.pos = mark
	return ts, true
}

// every parses HH:MM or a number of minutes.
func (g *grammar) every() (hours.Time, bool) {
	mark := g.pos
	if t, ok := g.clock(24); ok {
		return t, true
	}
	g.pos = mark
	if minutes, ok := g.positive(); ok {
		return hours.NewTime(minutes/60, minutes%60), true
	}
	g.pos = mark
	return hours.Time{}, false
}

func (g *grammar) modifier() hours.RuleModifier {
	mark := g.pos
	if w, ok := g.keyword("status", true, "open", "closed", "off", "unknown"); ok {
		status, _ := hours.ParseRuleStatus(w)
		m := hours.RuleModifier{Status: status}
		afterStatus := g.pos
		if text, ok := g.quoted(); ok {
			m.Comment = c.Some(hours.Comment{Text: text})
		} else {
			g.pos = afterStatus
		}
		return m
	}
	g.pos = mark
	if text, ok := g.quoted(); ok {
		return hours.RuleModifier{Status: hours.Open, Comment: c.Some(hours.Comment{Text: text})}
	}
	g.pos = mark
	return hours.DefaultModifier()
}
