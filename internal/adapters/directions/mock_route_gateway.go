package directions

import (
	"context"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
)

// MockRouteGateway is an in-memory ports.RouteGateway for tests.
type MockRouteGateway struct {
	Result ports.RouteResult
	Err    error
	Calls  int
}

func (m *MockRouteGateway) GetDistanceAndDuration(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	return m.Result, nil
}
