package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/platform/obs"
	"shipment-leg-service/internal/ports"
)

// EstimateCostAndTime computes the leg's estimated cost and time window from
// a live route lookup combined with the assigned truck's per-kilometer rate.
//
// The two gateway calls are independent I/O and run concurrently; the join is
// all-or-nothing. If either call fails the leg is left untouched — no partial
// result is ever persisted. This is not a state transition and may be called
// repeatedly while a truck is assigned: the estimated start is set at most
// once per leg lifetime, cost and estimated end are recomputed every call.
func (s *LegService) EstimateCostAndTime(
	ctx context.Context,
	legID int64,
	origin, destination domain.Coordinates,
) (_ *domain.Leg, err error) {
	defer obs.Time(ctx, "legs.EstimateCostAndTime")(&err)

	leg, err := s.legs.Get(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("estimate leg: %w", err)
	}

	if !leg.Assigned() {
		return nil, fmt.Errorf("estimate leg %d: no truck assigned: %w", legID, domain.ErrPreconditionFailed)
	}
	plate := *leg.TruckPlate

	var (
		route ports.RouteResult
		truck *domain.TruckRecord
	)

	// Fan-out: a failure in either task cancels the group context so the
	// other call can stop early; its result is discarded either way.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, e := s.routes.GetDistanceAndDuration(gctx, origin, destination)
		if e != nil {
			return fmt.Errorf("route lookup: %w: %w", domain.ErrUpstreamFailure, e)
		}
		route = r
		return nil
	})
	g.Go(func() error {
		t, e := s.fleet.GetTruck(gctx, plate)
		if e != nil {
			return fmt.Errorf("truck lookup %s: %w: %w", plate, domain.ErrUpstreamFailure, e)
		}
		truck = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("estimate leg %d: %w", legID, err)
	}

	if truck.BaseRatePerKm == nil {
		return nil, fmt.Errorf("estimate leg %d: base rate unavailable for truck %s: %w",
			legID, plate, domain.ErrDataUnavailable)
	}
	rate := *truck.BaseRatePerKm
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("estimate leg %d: base rate %v invalid for truck %s: %w",
			legID, rate, plate, domain.ErrDataUnavailable)
	}

	cost := route.DistanceKm * rate
	leg.ApproximateCost = &cost

	if leg.EstimatedStart == nil {
		start := s.now()
		leg.EstimatedStart = &start
	}
	end := leg.EstimatedStart.Add(time.Duration(route.DurationMinutes) * time.Minute)
	leg.EstimatedEnd = &end

	if err := s.legs.Save(ctx, leg); err != nil {
		return nil, fmt.Errorf("estimate leg: persist leg %d: %w: %w", legID, domain.ErrStorage, err)
	}
	return leg, nil
}
