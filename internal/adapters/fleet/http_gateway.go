package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/platform/httpx"
)

// Gateway implements ports.TruckGateway against the fleet inventory
// service's HTTP API. An optional Redis-backed TruckCache fronts GetTruck;
// cache failures are logged, never fatal.
//
// The gateway is safe for concurrent use.
type Gateway struct {
	client  *httpx.Client
	baseURL string
	cache   *TruckCache
}

func NewGateway(baseURL string, timeout time.Duration, cache *TruckCache) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("fleet gateway: base URL is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Gateway{
		client:  httpx.New(timeout),
		baseURL: baseURL,
		cache:   cache,
	}, nil
}

func (g *Gateway) newRequest(ctx context.Context, method, endpoint string, payload []byte) (*http.Request, error) {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

type capacityRequest struct {
	Plate  string  `json:"plate"`
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
}

type capacityResponse struct {
	Valid *bool `json:"valid"`
}

// CheckCapacity asks the fleet service whether the truck can carry the given
// weight and volume. A malformed response is an error, not a "no".
func (g *Gateway) CheckCapacity(ctx context.Context, plate string, weight, volume float64) (bool, error) {
	if plate == "" {
		return false, errors.New("check capacity: plate must be non-empty")
	}

	payload, err := json.Marshal(capacityRequest{Plate: plate, Weight: weight, Volume: volume})
	if err != nil {
		return false, fmt.Errorf("check capacity: marshal request: %w", err)
	}

	endpoint := g.baseURL + "/api/trucks/capacity-check"
	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodPost, endpoint, payload)
	})
	if err != nil {
		return false, fmt.Errorf("check capacity for %s: %w", plate, err)
	}
	defer resp.Body.Close()

	var cr capacityResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return false, fmt.Errorf("check capacity for %s: decode response: %w", plate, err)
	}
	if cr.Valid == nil {
		return false, fmt.Errorf("check capacity for %s: response missing valid field", plate)
	}

	return *cr.Valid, nil
}

// GetTruck returns the full truck record for a plate, going through the
// cache when one is configured. A 404 maps to domain.ErrNotFound.
func (g *Gateway) GetTruck(ctx context.Context, plate string) (*domain.TruckRecord, error) {
	if plate == "" {
		return nil, errors.New("get truck: plate must be non-empty")
	}

	if g.cache != nil {
		cached, err := g.cache.Get(ctx, plate)
		if err != nil {
			log.WithError(err).WithField("plate", plate).Warn("truck cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	endpoint := g.baseURL + "/api/trucks/" + url.PathEscape(plate)
	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		var se *httpx.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("get truck %s: %w", plate, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get truck %s: %w", plate, err)
	}
	defer resp.Body.Close()

	var record domain.TruckRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("get truck %s: decode response: %w", plate, err)
	}
	if record.Plate == "" {
		record.Plate = plate
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, plate, &record); err != nil {
			log.WithError(err).WithField("plate", plate).Warn("truck cache write failed")
		}
	}

	return &record, nil
}

// FleetStatus forwards the fleet service's free/busy overview unchanged.
func (g *Gateway) FleetStatus(ctx context.Context) (map[string]any, error) {
	endpoint := g.baseURL + "/api/trucks/status"
	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fleet status: %w", err)
	}
	defer resp.Body.Close()

	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("fleet status: decode response: %w", err)
	}
	return status, nil
}
