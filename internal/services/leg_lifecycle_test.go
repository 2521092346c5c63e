package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment-leg-service/internal/adapters/directions"
	"shipment-leg-service/internal/adapters/fleet"
	"shipment-leg-service/internal/domain"
)

func newTestService(legs *fakeLegRepo, gw *fleet.MockFleetGateway) *LegService {
	return NewLegService(legs, newFakeRequestRepo(7), gw, &directions.MockRouteGateway{})
}

func pendingLeg() *domain.Leg {
	return &domain.Leg{
		ID:          1,
		RequestID:   7,
		Origin:      "Depot Rosario",
		Destination: "Puerto Buenos Aires",
		Status:      domain.LegPending,
	}
}

func TestCreateLegDefaultsToPending(t *testing.T) {
	legs := newFakeLegRepo()
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	leg, err := svc.CreateLeg(context.Background(), 7, CreateLegInput{
		Origin:      "Depot Rosario",
		Destination: "Puerto Buenos Aires",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leg.Status != domain.LegPending {
		t.Fatalf("status = %s, want %s", leg.Status, domain.LegPending)
	}
	if leg.ID == 0 {
		t.Fatal("expected an assigned leg id")
	}
}

func TestCreateLegRequestMissing(t *testing.T) {
	legs := newFakeLegRepo()
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	_, err := svc.CreateLeg(context.Background(), 999, CreateLegInput{Origin: "A", Destination: "B"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignTruckSuccess(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{Valid: true})

	leg, err := svc.AssignTruck(context.Background(), 1, "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leg.Status != domain.LegAssigned {
		t.Fatalf("status = %s, want %s", leg.Status, domain.LegAssigned)
	}
	if leg.TruckPlate == nil || *leg.TruckPlate != "ABC123" {
		t.Fatalf("truck plate = %v, want ABC123", leg.TruckPlate)
	}

	stored := legs.stored(1)
	if stored.Status != domain.LegAssigned || stored.TruckPlate == nil {
		t.Fatal("assignment was not persisted")
	}
}

func TestAssignTruckCapacityRejected(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{Valid: false})

	_, err := svc.AssignTruck(context.Background(), 1, "ABC123")
	if !errors.Is(err, domain.ErrCapacityRejected) {
		t.Fatalf("expected ErrCapacityRejected, got %v", err)
	}

	stored := legs.stored(1)
	if stored.TruckPlate != nil || stored.Status != domain.LegPending {
		t.Fatalf("leg was modified after rejection: plate=%v status=%s", stored.TruckPlate, stored.Status)
	}
	if legs.saves != 0 {
		t.Fatalf("expected no store writes, got %d", legs.saves)
	}
}

// An unreachable fleet service degrades to "capacity not valid", never to
// "valid".
func TestAssignTruckGatewayUnreachable(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{CapacityErr: errors.New("connection refused")})

	_, err := svc.AssignTruck(context.Background(), 1, "ABC123")
	if !errors.Is(err, domain.ErrCapacityRejected) {
		t.Fatalf("expected ErrCapacityRejected, got %v", err)
	}

	stored := legs.stored(1)
	if stored.TruckPlate != nil || stored.Status != domain.LegPending {
		t.Fatal("leg was modified after unreachable gateway")
	}
}

func TestAssignTruckIdempotent(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{Valid: true})

	if _, err := svc.AssignTruck(context.Background(), 1, "ABC123"); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	leg, err := svc.AssignTruck(context.Background(), 1, "ABC123")
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}

	if leg.Status != domain.LegAssigned || *leg.TruckPlate != "ABC123" {
		t.Fatalf("second assign changed outcome: status=%s plate=%v", leg.Status, leg.TruckPlate)
	}
}

func TestAssignTruckNotFound(t *testing.T) {
	legs := newFakeLegRepo()
	svc := newTestService(legs, &fleet.MockFleetGateway{Valid: true})

	_, err := svc.AssignTruck(context.Background(), 42, "ABC123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignTruckStorageError(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	legs.saveErr = errors.New("connection reset")
	svc := newTestService(legs, &fleet.MockFleetGateway{Valid: true})

	_, err := svc.AssignTruck(context.Background(), 1, "ABC123")
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestStartLegStampsRealStart(t *testing.T) {
	leg := pendingLeg()
	leg.Status = domain.LegAssigned
	plate := "ABC123"
	leg.TruckPlate = &plate

	legs := newFakeLegRepo(leg)
	svc := newTestService(legs, &fleet.MockFleetGateway{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.StartLeg(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.LegStarted {
		t.Fatalf("status = %s, want %s", got.Status, domain.LegStarted)
	}
	if got.RealStart == nil || !got.RealStart.Equal(now) {
		t.Fatalf("real start = %v, want %v", got.RealStart, now)
	}
}

func TestFinishLegRecordsRealFigures(t *testing.T) {
	leg := pendingLeg()
	leg.Status = domain.LegStarted
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	leg.RealStart = &start

	legs := newFakeLegRepo(leg)
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	end := start.Add(5 * time.Hour)
	got, err := svc.FinishLeg(context.Background(), 1, end, 183000, 1250.50, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.LegFinished {
		t.Fatalf("status = %s, want %s", got.Status, domain.LegFinished)
	}
	if got.RealEnd == nil || !got.RealEnd.Equal(end) {
		t.Fatalf("real end = %v, want %v", got.RealEnd, end)
	}
	if *got.FinalOdometer != 183000 || *got.RealCost != 1250.50 || *got.RealElapsedHours != 5.0 {
		t.Fatal("real figures not recorded")
	}
}

// Finish accepts an end time earlier than the recorded start. This documents
// current behavior; enforcing monotonicity is a pending product decision.
func TestFinishLegAcceptsEndBeforeStart(t *testing.T) {
	leg := pendingLeg()
	leg.Status = domain.LegStarted
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	leg.RealStart = &start

	legs := newFakeLegRepo(leg)
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	got, err := svc.FinishLeg(context.Background(), 1, start.Add(-time.Hour), 183000, 1250.50, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.RealEnd.Before(*got.RealStart) {
		t.Fatal("expected recorded end to precede start")
	}
}

func TestUpdateLegOverwritesStatusDirectly(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	plate := "AB123CD"
	got, err := svc.UpdateLeg(context.Background(), 1, UpdateLegInput{
		Origin:      "Depot Rosario",
		Destination: "Puerto Buenos Aires",
		TruckPlate:  &plate,
		Status:      domain.LegFinished,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.LegFinished {
		t.Fatalf("status = %s, want %s (escape hatch must bypass the state machine)", got.Status, domain.LegFinished)
	}
}

func TestUpdateLegRejectsUnknownStatus(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	_, err := svc.UpdateLeg(context.Background(), 1, UpdateLegInput{Status: "TELEPORTED"})
	if !errors.Is(err, domain.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestDeleteLeg(t *testing.T) {
	legs := newFakeLegRepo(pendingLeg())
	svc := newTestService(legs, &fleet.MockFleetGateway{})

	if err := svc.DeleteLeg(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteLeg(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
