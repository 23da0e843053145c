package hours

import (
	"fmt"
	"strings"
	"time"

	c "openhours/internal/core/domain/common"
)

type Comment struct {
	Text string
}

func (cm Comment) String() string {
	return fmt.Sprintf("%q", cm.Text)
}

// TimeSelector is the left hand side of a rule. Categories are ANDed,
// members of one category are ORed. Empty categories match everything.
type TimeSelector struct {
	Always    bool
	Comment   c.Optional[Comment]
	Years     []YearSpan
	Monthdays []MonthdaySpan
	Weeks     []WeekSpan
	Weekdays  c.Optional[WeekdaySelector]
	Times     []TimeSpan
}

func (s TimeSelector) String() string {
	if s.Always {
		return "24/7"
	}
	var parts []string
	if s.Comment.IsPresent {
		parts = append(parts, s.Comment.Value.String()+":")
	}
	if len(s.Years) > 0 {
		parts = append(parts, joinStrings(s.Years))
	}
	if len(s.Monthdays) > 0 {
		parts = append(parts, joinStrings(s.Monthdays))
	}
	if len(s.Weeks) > 0 {
		parts = append(parts, "week "+joinStrings(s.Weeks))
	}
	if s.Weekdays.IsPresent {
		parts = append(parts, s.Weekdays.Value.String())
	}
	if len(s.Times) > 0 {
		parts = append(parts, joinStrings(s.Times))
	}
	return strings.Join(parts, " ")
}

func (s TimeSelector) Contains(at time.Time, env Env) (bool, error) {
	if s.Always {
		return true, nil
	}
	date := dateOf(at)

	if len(s.Years) > 0 && !anyOf(s.Years, func(ys YearSpan) bool { return ys.ContainsDate(date) }) {
		return false, nil
	}
	if len(s.Monthdays) > 0 {
		ok, err := anyOfErr(s.Monthdays, func(ms MonthdaySpan) (bool, error) { return ms.ContainsDate(date, env) })
		if err != nil || !ok {
			return false, err
		}
	}
	if len(s.Weeks) > 0 && !anyOf(s.Weeks, func(ws WeekSpan) bool { return ws.ContainsDate(date) }) {
		return false, nil
	}
	if s.Weekdays.IsPresent {
		ok, err := s.Weekdays.Value.ContainsDate(date, env)
		if err != nil || !ok {
			return false, err
		}
	}
	if len(s.Times) == 0 {
		return true, nil
	}
	return anyOfErr(s.Times, func(ts TimeSpan) (bool, error) { return ts.Contains(at, env) })
}

func anyOf[T any](items []T, match func(T) bool) bool {
	for _, item := range items {
		if match(item) {
			return true
		}
	}
	return false
}

func anyOfErr[T any](items []T, match func(T) (bool, error)) (bool, error) {
	for _, item := range items {
		ok, err := match(item)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func joinStrings[T fmt.Stringer](items []T) string {
	s := make([]string, len(items))
	for i, item := range items {
		s[i] = item.String()
	}
	return strings.Join(s, ",")
}
