package ports

import (
	"context"

	"shipment-leg-service/internal/domain"
)

// Contract for the external fleet inventory service.
//
// Both operations are remote calls with no local fallback. Implementations
// must surface unreachability and malformed responses as errors, distinct
// from a well-formed "capacity insufficient" answer, so the engine can apply
// its conservative default during assignment.
type TruckGateway interface {
	// CheckCapacity asks whether the truck can carry the given weight (kg)
	// and volume (m3).
	CheckCapacity(ctx context.Context, plate string, weight, volume float64) (bool, error)

	// GetTruck returns the full truck record for a plate.
	GetTruck(ctx context.Context, plate string) (*domain.TruckRecord, error)

	// FleetStatus returns the fleet service's free/busy overview as-is.
	FleetStatus(ctx context.Context) (map[string]any, error)
}
