package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipment-leg-service/internal/domain"
)

func TestCheckCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trucks/capacity-check" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req capacityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Plate != "ABC123" {
			t.Errorf("plate = %q, want ABC123", req.Plate)
		}

		json.NewEncoder(w).Encode(map[string]bool{"valid": true})
	}))
	defer srv.Close()

	gw, err := NewGateway(srv.URL, 0, nil)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}

	valid, err := gw.CheckCapacity(context.Background(), "ABC123", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected valid = true")
	}
}

func TestCheckCapacityRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"valid": false})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	valid, err := gw.CheckCapacity(context.Background(), "ABC123", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("expected valid = false")
	}
}

// A well-formed 200 with no valid field is malformed, not a "no".
func TestCheckCapacityMissingValidField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	if _, err := gw.CheckCapacity(context.Background(), "ABC123", 0, 0); err == nil {
		t.Fatal("expected an error for a response without valid field")
	}
}

func TestCheckCapacityServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	if _, err := gw.CheckCapacity(context.Background(), "ABC123", 0, 0); err == nil {
		t.Fatal("expected an error for a 4xx response")
	}
}

func TestGetTruck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trucks/ABC123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"plate":          "ABC123",
			"baseRatePerKm":  2.5,
			"weightCapacity": 24000,
			"volumeCapacity": 90,
			"available":      true,
		})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	truck, err := gw.GetTruck(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truck.BaseRatePerKm == nil || *truck.BaseRatePerKm != 2.5 {
		t.Fatalf("base rate = %v, want 2.5", truck.BaseRatePerKm)
	}
}

// An upstream payload without baseRatePerKm decodes fine; the nil rate is the
// engine's signal to fail with DataUnavailable.
func TestGetTruckWithoutBaseRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"plate": "ABC123"})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	truck, err := gw.GetTruck(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truck.BaseRatePerKm != nil {
		t.Fatalf("base rate = %v, want nil", truck.BaseRatePerKm)
	}
}

func TestGetTruckNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such truck", http.StatusNotFound)
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	_, err := gw.GetTruck(context.Background(), "ZZZ999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFleetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trucks/status" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"free": 3, "busy": 1})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0, nil)
	status, err := gw.FleetStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := status["free"]; !ok {
		t.Fatalf("status missing free field: %v", status)
	}
}
