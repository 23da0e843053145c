package schema

import (
	"encoding/json"
	"fmt"
	"time"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
)

// StatusChange is the message body published when a place opens or
// closes. Previous is omitted for the first observed status.
type StatusChange struct {
	PlaceID  int64     `json:"place_id"`
	Previous string    `json:"previous,omitempty"`
	Status   string    `json:"status"`
	Comment  string    `json:"comment,omitempty"`
	At       time.Time `json:"at"`
}

func (s *StatusChange) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *StatusChange) Unmarshal(data []byte) error {
	return json.Unmarshal(data, s)
}

func FromStatusChange(change place.StatusChange) StatusChange {
	s := StatusChange{
		PlaceID: int64(change.PlaceID),
		Status:  change.Current.Status.String(),
		At:      change.At.UTC(),
	}
	if change.Previous.IsPresent {
		s.Previous = change.Previous.Value.String()
	}
	if change.Current.Comment.IsPresent {
		s.Comment = change.Current.Comment.Value.Text
	}
	return s
}

func (s *StatusChange) ToStatusChange() (change place.StatusChange, err error) {
	status, ok := hours.ParseRuleStatus(s.Status)
	if !ok {
		return change, fmt.Errorf("invalid status %q", s.Status)
	}
	change = place.StatusChange{
		PlaceID: place.ID(s.PlaceID),
		Current: hours.RuleModifier{Status: status},
		At:      s.At,
	}
	if s.Previous != "" {
		previous, ok := hours.ParseRuleStatus(s.Previous)
		if !ok {
			return change, fmt.Errorf("invalid previous status %q", s.Previous)
		}
		change.Previous = c.Some(previous)
	}
	if s.Comment != "" {
		change.Current.Comment = c.Some(hours.Comment{Text: s.Comment})
	}
	return change, nil
}
