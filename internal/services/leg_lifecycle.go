package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/platform/obs"
	"shipment-leg-service/internal/ports"
)

// LegService is the leg lifecycle engine. It owns the state machine, the
// truck assignment protocol and the cost/time estimation orchestration, and
// talks to the outside world only through ports.
type LegService struct {
	legs     ports.LegRepository
	requests ports.RequestRepository
	fleet    ports.TruckGateway
	routes   ports.RouteGateway
	now      func() time.Time
}

func NewLegService(
	legs ports.LegRepository,
	requests ports.RequestRepository,
	fleet ports.TruckGateway,
	routes ports.RouteGateway,
) *LegService {
	return &LegService{
		legs:     legs,
		requests: requests,
		fleet:    fleet,
		routes:   routes,
		now:      time.Now,
	}
}

// CreateLegInput carries the caller-supplied fields for a new leg. Status
// defaults to PENDING when empty; the owning request must already exist.
type CreateLegInput struct {
	Origin      string
	Destination string
	TruckPlate  *string
	Status      domain.LegStatus
	RealStart   *time.Time
	RealEnd     *time.Time
	RealCost    *float64
}

func (s *LegService) CreateLeg(ctx context.Context, requestID int64, in CreateLegInput) (*domain.Leg, error) {
	ok, err := s.requests.Exists(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("create leg: check request %d: %w: %w", requestID, domain.ErrStorage, err)
	}
	if !ok {
		return nil, fmt.Errorf("create leg: request %d: %w", requestID, domain.ErrNotFound)
	}

	status := in.Status
	if status == "" {
		status = domain.LegPending
	}
	if !domain.KnownLegStatus(status) {
		return nil, fmt.Errorf("create leg: unknown status %q: %w", status, domain.ErrPreconditionFailed)
	}

	leg := &domain.Leg{
		RequestID:   requestID,
		Origin:      in.Origin,
		Destination: in.Destination,
		TruckPlate:  in.TruckPlate,
		Status:      status,
		RealStart:   in.RealStart,
		RealEnd:     in.RealEnd,
		RealCost:    in.RealCost,
	}

	created, err := s.legs.Create(ctx, leg)
	if err != nil {
		return nil, fmt.Errorf("create leg: %w: %w", domain.ErrStorage, err)
	}
	return created, nil
}

func (s *LegService) GetLeg(ctx context.Context, id int64) (*domain.Leg, error) {
	return s.legs.Get(ctx, id)
}

func (s *LegService) ListLegs(ctx context.Context, f ports.LegFilter) ([]*domain.Leg, error) {
	return s.legs.List(ctx, f)
}

// UpdateLegInput overwrites the listed fields verbatim, including status.
type UpdateLegInput struct {
	Origin      string
	Destination string
	TruckPlate  *string
	Status      domain.LegStatus
	RealStart   *time.Time
	RealEnd     *time.Time
	RealCost    *float64
}

// UpdateLeg is an unguarded field overwrite that bypasses the state machine.
// It exists as an administrative escape hatch; the guarded operations below
// are the intended workflow.
func (s *LegService) UpdateLeg(ctx context.Context, id int64, in UpdateLegInput) (*domain.Leg, error) {
	leg, err := s.legs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update leg: %w", err)
	}

	if in.Status != "" && !domain.KnownLegStatus(in.Status) {
		return nil, fmt.Errorf("update leg: unknown status %q: %w", in.Status, domain.ErrPreconditionFailed)
	}
	if in.Status != "" && !domain.CanTransition(leg.Status, in.Status) {
		log.WithFields(log.Fields{
			"leg_id": id,
			"from":   leg.Status,
			"to":     in.Status,
		}).Warn("administrative status overwrite outside the canonical order")
	}

	leg.Origin = in.Origin
	leg.Destination = in.Destination
	leg.TruckPlate = in.TruckPlate
	if in.Status != "" {
		leg.Status = in.Status
	}
	leg.RealStart = in.RealStart
	leg.RealEnd = in.RealEnd
	leg.RealCost = in.RealCost

	if err := s.legs.Save(ctx, leg); err != nil {
		return nil, fmt.Errorf("update leg: persist leg %d: %w: %w", id, domain.ErrStorage, err)
	}
	return leg, nil
}

// DeleteLeg removes a leg in any state; deletion is independent of the
// lifecycle.
func (s *LegService) DeleteLeg(ctx context.Context, id int64) error {
	ok, err := s.legs.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete leg: check leg %d: %w: %w", id, domain.ErrStorage, err)
	}
	if !ok {
		return fmt.Errorf("delete leg: leg %d: %w", id, domain.ErrNotFound)
	}
	if err := s.legs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete leg %d: %w: %w", id, domain.ErrStorage, err)
	}
	return nil
}

// AssignTruck validates capacity with the fleet service and, on success,
// records the truck and moves the leg to ASSIGNED in one store write.
//
// An unreachable fleet service is treated as "capacity not valid": assignment
// is the one place where a failed call degrades to the conservative answer
// instead of propagating.
func (s *LegService) AssignTruck(ctx context.Context, legID int64, plate string) (_ *domain.Leg, err error) {
	defer obs.Time(ctx, "legs.AssignTruck")(&err)

	leg, err := s.legs.Get(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("assign truck: %w", err)
	}

	// Cargo weight/volume are not modeled on the leg yet; the check runs
	// with zeros until a real source of dimensions exists.
	const cargoWeight, cargoVolume = 0.0, 0.0

	valid, err := s.fleet.CheckCapacity(ctx, plate, cargoWeight, cargoVolume)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"leg_id": legID,
			"plate":  plate,
		}).Warn("capacity check unreachable, treating as rejected")
		valid = false
	}
	if !valid {
		return nil, fmt.Errorf("assign truck %s to leg %d: %w", plate, legID, domain.ErrCapacityRejected)
	}

	log.WithFields(log.Fields{
		"leg_id": legID,
		"plate":  plate,
	}).Info("capacity accepted with placeholder zero cargo dimensions")

	leg.Assign(plate)
	if err := s.legs.Save(ctx, leg); err != nil {
		return nil, fmt.Errorf("assign truck: persist leg %d: %w: %w", legID, domain.ErrStorage, err)
	}
	return leg, nil
}

// StartLeg stamps the real departure time and moves the leg to STARTED.
// A leg that skipped ASSIGNED is logged but not rejected; whether to enforce
// the stage order is a pending product decision.
func (s *LegService) StartLeg(ctx context.Context, legID int64) (*domain.Leg, error) {
	leg, err := s.legs.Get(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("start leg: %w", err)
	}

	if !domain.CanTransition(leg.Status, domain.LegStarted) {
		log.WithFields(log.Fields{
			"leg_id": legID,
			"from":   leg.Status,
		}).Warn("starting leg outside the canonical order")
	}

	leg.Start(s.now())
	if err := s.legs.Save(ctx, leg); err != nil {
		return nil, fmt.Errorf("start leg: persist leg %d: %w: %w", legID, domain.ErrStorage, err)
	}
	return leg, nil
}

// FinishLeg records the caller-supplied real figures and moves the leg to
// FINISHED. End time is trusted as given (no check against the real start).
func (s *LegService) FinishLeg(
	ctx context.Context,
	legID int64,
	end time.Time,
	odometer, realCost, elapsedHours float64,
) (*domain.Leg, error) {
	leg, err := s.legs.Get(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("finish leg: %w", err)
	}

	if !domain.CanTransition(leg.Status, domain.LegFinished) {
		log.WithFields(log.Fields{
			"leg_id": legID,
			"from":   leg.Status,
		}).Warn("finishing leg outside the canonical order")
	}

	leg.Finish(end, odometer, realCost, elapsedHours)
	if err := s.legs.Save(ctx, leg); err != nil {
		return nil, fmt.Errorf("finish leg: persist leg %d: %w: %w", legID, domain.ErrStorage, err)
	}
	return leg, nil
}
