package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"shipment-leg-service/internal/adapters/directions"
	"shipment-leg-service/internal/adapters/fleet"
	"shipment-leg-service/internal/adapters/repositories"
	"shipment-leg-service/internal/api"
	"shipment-leg-service/internal/config"
	"shipment-leg-service/internal/logger"
	"shipment-leg-service/internal/platform/db"
	"shipment-leg-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, fleet and directions gateways)
// behind ports and starts the HTTP server.
func main() {
	config.Load()
	logger.Setup(config.Get("LOG_LEVEL", "info"))

	databaseURL, err := config.MustGet("DATABASE_URL")
	if err != nil {
		log.Fatal(err)
	}
	fleetBaseURL, err := config.MustGet("FLEET_BASE_URL")
	if err != nil {
		log.Fatal(err)
	}
	directionsBaseURL, err := config.MustGet("DIRECTIONS_BASE_URL")
	if err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/logistics.json")
	gatewayTimeout := config.GetDuration("GATEWAY_TIMEOUT", 10*time.Second)

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}

	// The truck record cache is optional: without REDIS_ADDR every lookup
	// goes to the fleet service.
	var truckCache *fleet.TruckCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		truckCache = fleet.NewTruckCache(rdb, config.GetDuration("TRUCK_CACHE_TTL", 5*time.Minute))
		log.WithField("addr", addr).Info("truck record cache enabled")
	}

	fleetGateway, err := fleet.NewGateway(fleetBaseURL, gatewayTimeout, truckCache)
	if err != nil {
		log.Fatal(err)
	}
	routeGateway, err := directions.NewGateway(directionsBaseURL, gatewayTimeout)
	if err != nil {
		log.Fatal(err)
	}

	legRepo := repositories.NewPostgresLegRepository(conn)
	requestRepo := repositories.NewPostgresRequestRepository(conn)
	clientRepo := repositories.NewPostgresClientRepository(conn)
	depotRepo := repositories.NewPostgresDepotRepository(conn)

	router := api.NewRouter(
		services.NewLegService(legRepo, requestRepo, fleetGateway, routeGateway),
		services.NewRequestService(requestRepo),
		services.NewClientService(clientRepo),
		services.NewDepotService(depotRepo),
		fleetGateway,
	)

	// Timeouts leave headroom for estimation calls that fan out to both
	// upstream services with retries.
	log.WithField("addr", ":"+port).Info("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
