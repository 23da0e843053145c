package hours

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax              = errors.New("invalid opening hours syntax")
	ErrLocationRequired    = errors.New("location is required to evaluate solar event times")
	ErrUnsupportedSelector = errors.New("selector is not supported")
	ErrInvalidDate         = errors.New("invalid calendar date")
	ErrUnknownRegion       = errors.New("no holiday calendar for region")
	ErrNoSolarEvent        = errors.New("solar event does not occur on this date")
)

// SyntaxError describes the furthest position the parser could reach
// and what it expected to find there.
type SyntaxError struct {
	Input    string
	Pos      int
	Expected []string
}

func (e *SyntaxError) Error() string {
	near := "end of input"
	if e.Pos < len(e.Input) {
		rest := e.Input[e.Pos:]
		if len(rest) > 12 {
			rest = rest[:12] + "..."
		}
		near = fmt.Sprintf("%q", rest)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at position %d near %s", ErrSyntax, e.Pos, near)
	}
	return fmt.Sprintf(
		"%s at position %d near %s, expected one of: %s",
		ErrSyntax, e.Pos, near, strings.Join(e.Expected, ", "),
	)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// IsInputError reports whether err is caused by the opening hours
// string or its evaluation context rather than by a failing
// collaborator.
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrSyntax, ErrLocationRequired, ErrUnsupportedSelector,
		ErrInvalidDate, ErrUnknownRegion, ErrNoSolarEvent,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
