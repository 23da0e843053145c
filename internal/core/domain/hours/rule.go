package hours

import (
	"fmt"
	"strings"
	"time"

	c "openhours/internal/core/domain/common"
)

type RuleStatus int

const (
	Unknown RuleStatus = iota
	Open
	Closed
)

func (s RuleStatus) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("RuleStatus(%d)", int(s))
	}
}

// ParseRuleStatus accepts any letter case. "off" is another spelling
// of closed.
func ParseRuleStatus(s string) (RuleStatus, bool) {
	switch strings.ToLower(s) {
	case "unknown":
		return Unknown, true
	case "open":
		return Open, true
	case "closed", "off":
		return Closed, true
	default:
		return 0, false
	}
}

type RuleModifier struct {
	Status  RuleStatus
	Comment c.Optional[Comment]
}

func DefaultModifier() RuleModifier {
	return RuleModifier{Status: Open}
}

func (m RuleModifier) String() string {
	if m.Comment.IsPresent {
		return m.Status.String() + " " + m.Comment.Value.String()
	}
	return m.Status.String()
}

type Rule struct {
	Selector TimeSelector
	Modifier RuleModifier
}

func (r Rule) String() string {
	sel := r.Selector.String()
	if sel == "" {
		return r.Modifier.String()
	}
	return sel + " " + r.Modifier.String()
}

func (r Rule) Contains(at time.Time, env Env) (bool, error) {
	return r.Selector.Contains(at, env)
}

// Evaluate returns the modifier of the first matching closed rule.
// Without one it returns the first matching open modifier, then the
// first matching unknown one, and closed without comment otherwise.
func Evaluate(rules []Rule, at time.Time, env Env) (RuleModifier, error) {
	var open, unknown c.Optional[RuleModifier]
	for i, rule := range rules {
		ok, err := rule.Contains(at, env)
		if err != nil {
			return RuleModifier{}, fmt.Errorf("rule %d (%s): %w", i+1, rule, err)
		}
		if !ok {
			continue
		}
		switch rule.Modifier.Status {
		case Closed:
			return rule.Modifier, nil
		case Open:
			if !open.IsPresent {
				open = c.Some(rule.Modifier)
			}
		case Unknown:
			if !unknown.IsPresent {
				unknown = c.Some(rule.Modifier)
			}
		}
	}
	if open.IsPresent {
		return open.Value, nil
	}
	if unknown.IsPresent {
		return unknown.Value, nil
	}
	return RuleModifier{Status: Closed}, nil
}
