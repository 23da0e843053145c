package hours

import (
	"fmt"
	"time"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
)

type EngineOptions struct {
	DefaultRegion      Region
	ReferenceMonthdays bool
}

// Engine compiles opening hours strings into schedules bound to the
// solar resolver and holiday provider.
type Engine struct {
	parser   Parser
	sun      SolarResolver
	holidays HolidayProvider
	options  EngineOptions
}

func NewEngine(parser Parser, sun SolarResolver, holidays HolidayProvider, options EngineOptions) *Engine {
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if sun == nil {
		panic(e.NewNilArgumentError("sun"))
	}
	if holidays == nil {
		panic(e.NewNilArgumentError("holidays"))
	}
	return &Engine{parser: parser, sun: sun, holidays: holidays, options: options}
}

func (en *Engine) Compile(text string) (*Schedule, error) {
	rules, err := en.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Schedule{engine: en, text: text, rules: rules}, nil
}

// Schedule is a compiled opening hours string. It is safe for
// concurrent use.
type Schedule struct {
	engine *Engine
	text   string
	rules  []Rule
}

func (s *Schedule) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

func (s *Schedule) String() string {
	return s.text
}

func (s *Schedule) Evaluate(at time.Time, loc c.Optional[Location]) (RuleModifier, error) {
	return s.EvaluateIn(at, loc, s.engine.options.DefaultRegion)
}

// EvaluateIn evaluates the schedule with the holiday calendars of
// region. If loc has a time zone, at is read as a wall clock there.
func (s *Schedule) EvaluateIn(at time.Time, loc c.Optional[Location], region Region) (RuleModifier, error) {
	if loc.IsPresent && loc.Value.TimeZone != nil {
		at = at.In(loc.Value.TimeZone)
	}
	env := Env{
		Location:           loc,
		Region:             region,
		Sun:                s.engine.sun,
		Holidays:           s.engine.holidays,
		ReferenceMonthdays: s.engine.options.ReferenceMonthdays,
	}
	modifier, err := Evaluate(s.rules, at, env)
	if err != nil {
		return RuleModifier{}, fmt.Errorf("could not evaluate %q at %s: %w", s.text, at.Format(time.RFC3339), err)
	}
	return modifier, nil
}
