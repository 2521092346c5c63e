package fleet

import (
	"context"
	"fmt"

	"shipment-leg-service/internal/domain"
)

// MockFleetGateway is an in-memory ports.TruckGateway for tests.
type MockFleetGateway struct {
	Valid       bool
	CapacityErr error

	Trucks   map[string]*domain.TruckRecord
	TruckErr error

	CapacityCalls int
	TruckCalls    int
}

func (m *MockFleetGateway) CheckCapacity(ctx context.Context, plate string, weight, volume float64) (bool, error) {
	m.CapacityCalls++
	if m.CapacityErr != nil {
		return false, m.CapacityErr
	}
	return m.Valid, nil
}

func (m *MockFleetGateway) GetTruck(ctx context.Context, plate string) (*domain.TruckRecord, error) {
	m.TruckCalls++
	if m.TruckErr != nil {
		return nil, m.TruckErr
	}
	t, ok := m.Trucks[plate]
	if !ok {
		return nil, fmt.Errorf("mock fleet: truck %s: %w", plate, domain.ErrNotFound)
	}
	return t, nil
}

func (m *MockFleetGateway) FleetStatus(ctx context.Context) (map[string]any, error) {
	return map[string]any{"trucks": len(m.Trucks)}, nil
}
