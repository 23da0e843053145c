// ohcheck evaluates an opening_hours string at one instant and prints
// the resulting status.
//
// Usage:
//
//	ohcheck [--at RFC3339] [--lat N --lon N] [--tz ZONE]
//	        [--country CC] [--subdivision SUB] [--holidays FILE] "<opening_hours>"
//
// The exit status is 1 on errors and 2 when the string does not parse.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	holidaycalendar "openhours/internal/implementations/holiday_calendar"
	openinghoursparser "openhours/internal/implementations/opening_hours_parser"
	solarevents "openhours/internal/implementations/solar_events"
)

const (
	exitOK          = 0
	exitError       = 1
	exitSyntaxError = 2
)

func main() {
	os.Exit(run(os.Args[1:], time.Now(), os.Stdout, os.Stderr))
}

type options struct {
	at                 string
	latitude           float64
	longitude          float64
	timeZone           string
	country            string
	subdivision        string
	holidays           string
	referenceMonthdays bool
}

func run(args []string, now time.Time, stdout, stderr io.Writer) int {
	var opts options
	flagSet := pflag.NewFlagSet("ohcheck", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, `usage: ohcheck [flags] "<opening_hours>"`)
		flagSet.PrintDefaults()
	}
	flagSet.StringVar(&opts.at, "at", "", "instant to evaluate at, RFC 3339 (default now)")
	flagSet.Float64Var(&opts.latitude, "lat", 0, "latitude for sunrise, sunset, dawn and dusk")
	flagSet.Float64Var(&opts.longitude, "lon", 0, "longitude for sunrise, sunset, dawn and dusk")
	flagSet.StringVar(&opts.timeZone, "tz", "", "IANA time zone the opening hours are expressed in")
	flagSet.StringVar(&opts.country, "country", "US", "country of the holiday calendars")
	flagSet.StringVar(&opts.subdivision, "subdivision", "", "subdivision of the holiday calendars")
	flagSet.StringVar(&opts.holidays, "holidays", "", "YAML holiday dataset to consult before the built-in calendars")
	flagSet.BoolVar(&opts.referenceMonthdays, "reference-monthdays", false, "reject monthday ranges instead of evaluating them")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if flagSet.NArg() != 1 {
		fmt.Fprintln(stderr, "error: expected exactly one opening_hours argument")
		flagSet.Usage()
		return exitError
	}
	hasLocation := flagSet.Changed("lat") || flagSet.Changed("lon")

	modifier, err := evaluate(flagSet.Arg(0), opts, hasLocation, now)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, hours.ErrSyntax) {
			return exitSyntaxError
		}
		return exitError
	}

	fmt.Fprintln(stdout, modifier.String())
	return exitOK
}

func evaluate(text string, opts options, hasLocation bool, now time.Time) (hours.RuleModifier, error) {
	var modifier hours.RuleModifier

	tz := time.UTC
	if opts.timeZone != "" {
		loaded, err := time.LoadLocation(opts.timeZone)
		if err != nil {
			return modifier, fmt.Errorf("invalid time zone %q: %w", opts.timeZone, err)
		}
		tz = loaded
	}

	at := now.In(tz)
	if opts.at != "" {
		parsed, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return modifier, fmt.Errorf("invalid --at value: %w", err)
		}
		at = parsed.In(tz)
	}

	var location c.Optional[hours.Location]
	if hasLocation {
		location = c.Some(hours.Location{Latitude: opts.latitude, Longitude: opts.longitude, TimeZone: tz})
	}

	if opts.country == "" && opts.subdivision != "" {
		return modifier, errors.New("--subdivision requires --country")
	}
	holidays, err := holidaycalendar.NewDefault(opts.holidays)
	if err != nil {
		return modifier, err
	}
	engine := hours.NewEngine(
		openinghoursparser.New(),
		solarevents.New(),
		holidays,
		hours.EngineOptions{
			DefaultRegion: hours.Region{
				Country:     strings.ToUpper(opts.country),
				Subdivision: strings.ToUpper(opts.subdivision),
			},
			ReferenceMonthdays: opts.referenceMonthdays,
		},
	)

	schedule, err := engine.Compile(text)
	if err != nil {
		return modifier, err
	}
	return schedule.Evaluate(at, location)
}
