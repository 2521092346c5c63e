package ports

import (
	"context"
	"time"

	"shipment-leg-service/internal/domain"
)

// LegFilter narrows a leg listing. Zero values mean "no constraint"; the
// real-start range applies only when at least one bound is set, so legs
// without a real start stay visible in unfiltered listings.
type LegFilter struct {
	Status     domain.LegStatus
	TruckPlate string
	RequestID  int64
	StartFrom  time.Time
	StartTo    time.Time
	Limit      int
	Offset     int
}

// Port: persistence boundary for Leg entities.
//
// Get returns domain.ErrNotFound (wrapped) when the leg does not exist.
// Save is a full-row update and is the single atomic commit point of every
// lifecycle operation.
type LegRepository interface {
	Create(ctx context.Context, leg *domain.Leg) (*domain.Leg, error)
	Get(ctx context.Context, id int64) (*domain.Leg, error)
	Save(ctx context.Context, leg *domain.Leg) error
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f LegFilter) ([]*domain.Leg, error)
}
