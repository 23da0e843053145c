package place

import (
	"context"
	"time"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
)

type CreateInput struct {
	Name         string
	OpeningHours string
	Location     c.Optional[hours.Location]
	Region       hours.Region
	CreatedAt    time.Time
}

type ReadOptions struct {
	Limit   uint
	AfterID c.Optional[ID]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Place, error)
	GetByID(ctx context.Context, id ID) (Place, error)
	// Read returns places ordered by ID.
	Read(ctx context.Context, options ReadOptions) ([]Place, error)
}

// StatusStore keeps the last known status per place.
type StatusStore interface {
	// Swap stores status and returns the previous one, if any.
	Swap(ctx context.Context, id ID, status hours.RuleStatus) (c.Optional[hours.RuleStatus], error)
}

type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, change StatusChange) error
}
