package fleet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"shipment-leg-service/internal/domain"
)

func newTestCache(t *testing.T) *TruckCache {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewTruckCache(rdb, time.Minute)
}

func TestTruckCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	rate := 2.5
	record := &domain.TruckRecord{Plate: "ABC123", BaseRatePerKm: &rate, Available: true}

	if err := cache.Put(ctx, "ABC123", record); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := cache.Get(ctx, "ABC123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.Plate != "ABC123" || got.BaseRatePerKm == nil || *got.BaseRatePerKm != 2.5 {
		t.Fatalf("cached record mismatch: %+v", got)
	}
}

func TestTruckCacheMiss(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "ZZZ999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected a miss, got %+v", got)
	}
}

// A cached record short-circuits the HTTP call on repeat lookups.
func TestGetTruckUsesCache(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"plate": "ABC123", "baseRatePerKm": 2.5})
	}))
	defer srv.Close()

	gw, err := NewGateway(srv.URL, 0, newTestCache(t))
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}

	ctx := context.Background()
	if _, err := gw.GetTruck(ctx, "ABC123"); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if _, err := gw.GetTruck(ctx, "ABC123"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}

	if hits.Load() != 1 {
		t.Fatalf("fleet service hit %d times, want 1", hits.Load())
	}
}
