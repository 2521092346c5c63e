package main

import (
	log "github.com/sirupsen/logrus"

	"shipment-leg-service/internal/adapters/repositories"
	"shipment-leg-service/internal/config"
	"shipment-leg-service/internal/logger"
	"shipment-leg-service/internal/platform/db"
)

// dbtool initializes the schema and seeds demo data without starting the
// server. Useful for CI databases and local resets.
func main() {
	config.Load()
	logger.Setup(config.Get("LOG_LEVEL", "info"))

	databaseURL, err := config.MustGet("DATABASE_URL")
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Info("initializing database schema")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Info("schema ready")

	seedPath := config.Get("SEED_PATH", "data/seeds/logistics.json")
	log.WithField("path", seedPath).Info("seeding database")
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Info("seeding complete")
}
