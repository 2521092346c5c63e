package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
)

const legColumns = `
	leg_id, request_id, origin, destination, truck_plate, status,
	real_start, real_end, final_odometer, real_cost, real_elapsed_hours,
	approximate_cost, estimated_start, estimated_end, created_at, updated_at`

// Postgres-backed implementation of the LegRepository port.
type PostgresLegRepository struct{ DB *sql.DB }

func NewPostgresLegRepository(db *sql.DB) *PostgresLegRepository {
	return &PostgresLegRepository{DB: db}
}

func scanLeg(row interface{ Scan(...any) error }) (*domain.Leg, error) {
	var leg domain.Leg
	err := row.Scan(
		&leg.ID, &leg.RequestID, &leg.Origin, &leg.Destination, &leg.TruckPlate, &leg.Status,
		&leg.RealStart, &leg.RealEnd, &leg.FinalOdometer, &leg.RealCost, &leg.RealElapsedHours,
		&leg.ApproximateCost, &leg.EstimatedStart, &leg.EstimatedEnd, &leg.CreatedAt, &leg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &leg, nil
}

func (r *PostgresLegRepository) Create(ctx context.Context, leg *domain.Leg) (*domain.Leg, error) {
	if r.DB == nil {
		return nil, errors.New("leg repository: DB is nil")
	}

	now := time.Now().UTC()
	query := `
	INSERT INTO legs (
		request_id, origin, destination, truck_plate, status,
		real_start, real_end, final_odometer, real_cost, real_elapsed_hours,
		approximate_cost, estimated_start, estimated_end, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	RETURNING leg_id;
	`
	created := *leg
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.DB.QueryRowContext(ctx, query,
		leg.RequestID, leg.Origin, leg.Destination, leg.TruckPlate, leg.Status,
		leg.RealStart, leg.RealEnd, leg.FinalOdometer, leg.RealCost, leg.RealElapsedHours,
		leg.ApproximateCost, leg.EstimatedStart, leg.EstimatedEnd, now,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create leg: insert: %w", err)
	}

	return &created, nil
}

func (r *PostgresLegRepository) Get(ctx context.Context, id int64) (*domain.Leg, error) {
	if r.DB == nil {
		return nil, errors.New("leg repository: DB is nil")
	}

	query := `SELECT ` + legColumns + ` FROM legs WHERE leg_id = $1;`
	leg, err := scanLeg(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("leg %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get leg %d: %w", id, err)
	}
	return leg, nil
}

// Save writes the full row back. The single UPDATE is the atomic commit
// point for every lifecycle operation.
func (r *PostgresLegRepository) Save(ctx context.Context, leg *domain.Leg) error {
	if r.DB == nil {
		return errors.New("leg repository: DB is nil")
	}

	query := `
	UPDATE legs SET
		request_id = $2, origin = $3, destination = $4, truck_plate = $5, status = $6,
		real_start = $7, real_end = $8, final_odometer = $9, real_cost = $10,
		real_elapsed_hours = $11, approximate_cost = $12, estimated_start = $13,
		estimated_end = $14, updated_at = $15
	WHERE leg_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query,
		leg.ID, leg.RequestID, leg.Origin, leg.Destination, leg.TruckPlate, leg.Status,
		leg.RealStart, leg.RealEnd, leg.FinalOdometer, leg.RealCost, leg.RealElapsedHours,
		leg.ApproximateCost, leg.EstimatedStart, leg.EstimatedEnd, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save leg %d: %w", leg.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save leg %d: rows affected: %w", leg.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save leg %d: %w", leg.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresLegRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if r.DB == nil {
		return false, errors.New("leg repository: DB is nil")
	}

	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM legs WHERE leg_id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("leg exists %d: %w", id, err)
	}
	return exists, nil
}

func (r *PostgresLegRepository) Delete(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("leg repository: DB is nil")
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM legs WHERE leg_id = $1;`, id); err != nil {
		return fmt.Errorf("delete leg %d: %w", id, err)
	}
	return nil
}

// List returns legs matching the filter, most recent first. The real-start
// range only applies when the caller provides at least one bound; legs that
// never started have a NULL real_start and would otherwise vanish from plain
// listings.
func (r *PostgresLegRepository) List(ctx context.Context, f ports.LegFilter) ([]*domain.Leg, error) {
	if r.DB == nil {
		return nil, errors.New("leg repository: DB is nil")
	}

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 6)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conditions = append(conditions, "status = "+arg(f.Status))
	}
	if f.TruckPlate != "" {
		conditions = append(conditions, "truck_plate = "+arg(f.TruckPlate))
	}
	if f.RequestID != 0 {
		conditions = append(conditions, "request_id = "+arg(f.RequestID))
	}
	if !f.StartFrom.IsZero() || !f.StartTo.IsZero() {
		from := f.StartFrom
		if from.IsZero() {
			from = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		to := f.StartTo
		if to.IsZero() {
			to = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		}
		conditions = append(conditions, "real_start BETWEEN "+arg(from)+" AND "+arg(to))
	}

	query := `SELECT ` + legColumns + ` FROM legs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY leg_id DESC"

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT " + arg(limit)
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}
	query += ";"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list legs: query: %w", err)
	}
	defer rows.Close()

	legs := make([]*domain.Leg, 0, limit)
	for rows.Next() {
		leg, err := scanLeg(rows)
		if err != nil {
			return nil, fmt.Errorf("list legs: scan row: %w", err)
		}
		legs = append(legs, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list legs: row iteration: %w", err)
	}

	return legs, nil
}
