package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"shipment-leg-service/internal/domain"
)

// InitSchema creates the database schema when it does not exist yet.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createClients := `
	CREATE TABLE IF NOT EXISTS clients (
		client_id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT ''
	);
	`

	createDepots := `
	CREATE TABLE IF NOT EXISTS depots (
		depot_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createRequests := `
	CREATE TABLE IF NOT EXISTS requests (
		request_id BIGSERIAL PRIMARY KEY,
		container_id BIGINT,
		client_id BIGINT REFERENCES clients(client_id),
		status TEXT NOT NULL,
		estimated_cost DOUBLE PRECISION,
		final_cost DOUBLE PRECISION,
		real_elapsed_hours DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`

	createLegs := `
	CREATE TABLE IF NOT EXISTS legs (
		leg_id BIGSERIAL PRIMARY KEY,
		request_id BIGINT NOT NULL REFERENCES requests(request_id) ON DELETE CASCADE,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		truck_plate TEXT,
		status TEXT NOT NULL,
		real_start TIMESTAMPTZ,
		real_end TIMESTAMPTZ,
		final_odometer DOUBLE PRECISION,
		real_cost DOUBLE PRECISION,
		real_elapsed_hours DOUBLE PRECISION,
		approximate_cost DOUBLE PRECISION,
		estimated_start TIMESTAMPTZ,
		estimated_end TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexes := `
	CREATE INDEX IF NOT EXISTS idx_legs_status ON legs(status);
	CREATE INDEX IF NOT EXISTS idx_legs_truck_plate ON legs(truck_plate);
	CREATE INDEX IF NOT EXISTS idx_legs_real_start ON legs(real_start);
	CREATE INDEX IF NOT EXISTS idx_legs_request_id ON legs(request_id);
	`

	statements := []string{
		createClients,
		createDepots,
		createRequests,
		createLegs,
		createIndexes,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}
	return nil
}

type seedFile struct {
	Clients []struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"clients"`
	Depots []struct {
		Name    string  `json:"name"`
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	} `json:"depots"`
	Requests []struct {
		ContainerID *int64               `json:"container_id"`
		ClientIndex int                  `json:"client_index"`
		Status      domain.RequestStatus `json:"status"`
	} `json:"requests"`
}

// SeedFromJSON loads demo clients, depots and requests for local runs.
// It is a no-op when the clients table already has rows.
func SeedFromJSON(db *sql.DB, path string) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM clients;`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count clients: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed: parse %q: %w", path, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	clientIDs := make([]int64, 0, len(seed.Clients))
	for _, c := range seed.Clients {
		var id int64
		err := tx.QueryRow(
			`INSERT INTO clients (first_name, last_name, email, phone) VALUES ($1, $2, $3, $4) RETURNING client_id;`,
			c.FirstName, c.LastName, c.Email, c.Phone,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert client: %w", err)
		}
		clientIDs = append(clientIDs, id)
	}

	for _, d := range seed.Depots {
		_, err := tx.Exec(
			`INSERT INTO depots (name, address, lat, lng) VALUES ($1, $2, $3, $4);`,
			d.Name, d.Address, d.Lat, d.Lng,
		)
		if err != nil {
			return fmt.Errorf("seed: insert depot: %w", err)
		}
	}

	for _, req := range seed.Requests {
		status := req.Status
		if status == "" {
			status = domain.RequestDraft
		}

		var clientID *int64
		if req.ClientIndex >= 0 && req.ClientIndex < len(clientIDs) {
			clientID = &clientIDs[req.ClientIndex]
		}

		_, err := tx.Exec(
			`INSERT INTO requests (container_id, client_id, status, created_at, updated_at) VALUES ($1, $2, $3, now(), now());`,
			req.ContainerID, clientID, status,
		)
		if err != nil {
			return fmt.Errorf("seed: insert request: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}
