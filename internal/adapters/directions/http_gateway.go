package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/platform/httpx"
	"shipment-leg-service/internal/ports"
)

// Gateway implements ports.RouteGateway against the routing service's HTTP
// API. Failures propagate as errors; the adapter never substitutes zero
// distances or durations.
type Gateway struct {
	client  *httpx.Client
	baseURL string
}

func NewGateway(baseURL string, timeout time.Duration) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("directions gateway: base URL is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Gateway{
		client:  httpx.New(timeout),
		baseURL: baseURL,
	}, nil
}

type directionsResponse struct {
	DistanceKm      *float64 `json:"distanceKm"`
	DurationMinutes *int64   `json:"durationMinutes"`
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GetDistanceAndDuration returns the routed distance (km) and travel
// duration (minutes) between two coordinate pairs.
func (g *Gateway) GetDistanceAndDuration(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	q := url.Values{}
	q.Set("originLat", formatCoord(origin.Lat))
	q.Set("originLng", formatCoord(origin.Lng))
	q.Set("destLat", formatCoord(destination.Lat))
	q.Set("destLng", formatCoord(destination.Lng))

	endpoint := g.baseURL + "/api/directions?" + q.Encode()
	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get directions: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get directions: decode response: %w", err)
	}
	if dr.DistanceKm == nil || dr.DurationMinutes == nil {
		return ports.RouteResult{}, errors.New("get directions: response missing distanceKm or durationMinutes")
	}

	return ports.RouteResult{
		DistanceKm:      *dr.DistanceKm,
		DurationMinutes: *dr.DurationMinutes,
	}, nil
}
