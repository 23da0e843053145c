package response

import (
	"time"

	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
)

type Place struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	OpeningHours string    `json:"opening_hours"`
	Location     *Location `json:"location"`
	Country      string    `json:"country,omitempty"`
	Subdivision  string    `json:"subdivision,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Place) FromDomainPlace(dp place.Place) {
	p.ID = int64(dp.ID)
	p.Name = dp.Name
	p.OpeningHours = dp.OpeningHours
	if dp.Location.IsPresent {
		loc := &Location{}
		loc.FromDomain(dp.Location.Value)
		p.Location = loc
	}
	p.Country = dp.Region.Country
	p.Subdivision = dp.Region.Subdivision
	p.CreatedAt = dp.CreatedAt
}

type Status struct {
	Status  string    `json:"status"`
	Comment *string   `json:"comment"`
	At      time.Time `json:"at"`
}

func (s *Status) FromDomainModifier(m hours.RuleModifier, at time.Time) {
	s.Status = m.Status.String()
	if m.Comment.IsPresent {
		text := m.Comment.Value.Text
		s.Comment = &text
	}
	s.At = at
}
