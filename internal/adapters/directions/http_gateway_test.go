package directions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipment-leg-service/internal/domain"
)

var (
	origin      = domain.Coordinates{Lat: -32.9442, Lng: -60.6505}
	destination = domain.Coordinates{Lat: -34.6037, Lng: -58.3816}
)

func TestGetDistanceAndDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/directions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("originLat") != "-32.9442" || q.Get("destLng") != "-58.3816" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"distanceKm":      297.4,
			"durationMinutes": 218,
		})
	}))
	defer srv.Close()

	gw, err := NewGateway(srv.URL, 0)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}

	result, err := gw.GetDistanceAndDuration(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceKm != 297.4 {
		t.Fatalf("distance = %v, want 297.4", result.DistanceKm)
	}
	if result.DurationMinutes != 218 {
		t.Fatalf("duration = %v, want 218", result.DurationMinutes)
	}
}

// A response without both metrics is an error; zero must never be substituted
// for a missing distance.
func TestGetDistanceAndDurationMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"distanceKm": 297.4})
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0)
	if _, err := gw.GetDistanceAndDuration(context.Background(), origin, destination); err == nil {
		t.Fatal("expected an error for a response missing durationMinutes")
	}
}

func TestGetDistanceAndDurationServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no route", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	gw, _ := NewGateway(srv.URL, 0)
	if _, err := gw.GetDistanceAndDuration(context.Background(), origin, destination); err == nil {
		t.Fatal("expected an error for a 4xx response")
	}
}
