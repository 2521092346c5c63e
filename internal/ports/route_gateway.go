package ports

import (
	"context"

	"shipment-leg-service/internal/domain"
)

// Routed distance and travel duration between two coordinate pairs.
type RouteResult struct {
	DistanceKm      float64
	DurationMinutes int64
}

// Contract for the external routing service.
//
// Failure (including timeout) must propagate as an error, never as zero or
// placeholder values: a silently substituted zero distance would corrupt the
// cost computation without signaling it.
type RouteGateway interface {
	GetDistanceAndDuration(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
