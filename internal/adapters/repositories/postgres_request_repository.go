package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shipment-leg-service/internal/domain"
)

const requestColumns = `
	request_id, container_id, client_id, status,
	estimated_cost, final_cost, real_elapsed_hours, created_at, updated_at`

// Postgres-backed implementation of the RequestRepository port.
type PostgresRequestRepository struct{ DB *sql.DB }

func NewPostgresRequestRepository(db *sql.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{DB: db}
}

func scanRequest(row interface{ Scan(...any) error }) (*domain.ShipmentRequest, error) {
	var req domain.ShipmentRequest
	err := row.Scan(
		&req.ID, &req.ContainerID, &req.ClientID, &req.Status,
		&req.EstimatedCost, &req.FinalCost, &req.RealElapsedHours, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PostgresRequestRepository) Create(ctx context.Context, req *domain.ShipmentRequest) (*domain.ShipmentRequest, error) {
	if r.DB == nil {
		return nil, errors.New("request repository: DB is nil")
	}

	now := time.Now().UTC()
	query := `
	INSERT INTO requests (
		container_id, client_id, status,
		estimated_cost, final_cost, real_elapsed_hours, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	RETURNING request_id;
	`
	created := *req
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.DB.QueryRowContext(ctx, query,
		req.ContainerID, req.ClientID, req.Status,
		req.EstimatedCost, req.FinalCost, req.RealElapsedHours, now,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create request: insert: %w", err)
	}

	return &created, nil
}

func (r *PostgresRequestRepository) Get(ctx context.Context, id int64) (*domain.ShipmentRequest, error) {
	if r.DB == nil {
		return nil, errors.New("request repository: DB is nil")
	}

	query := `SELECT ` + requestColumns + ` FROM requests WHERE request_id = $1;`
	req, err := scanRequest(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return req, nil
}

func (r *PostgresRequestRepository) Save(ctx context.Context, req *domain.ShipmentRequest) error {
	if r.DB == nil {
		return errors.New("request repository: DB is nil")
	}

	query := `
	UPDATE requests SET
		container_id = $2, client_id = $3, status = $4,
		estimated_cost = $5, final_cost = $6, real_elapsed_hours = $7, updated_at = $8
	WHERE request_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query,
		req.ID, req.ContainerID, req.ClientID, req.Status,
		req.EstimatedCost, req.FinalCost, req.RealElapsedHours, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save request %d: %w", req.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save request %d: rows affected: %w", req.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save request %d: %w", req.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRequestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if r.DB == nil {
		return false, errors.New("request repository: DB is nil")
	}

	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM requests WHERE request_id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("request exists %d: %w", id, err)
	}
	return exists, nil
}

func (r *PostgresRequestRepository) Delete(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("request repository: DB is nil")
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM requests WHERE request_id = $1;`, id); err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.ShipmentRequest, error) {
	if r.DB == nil {
		return nil, errors.New("request repository: DB is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY request_id DESC LIMIT $1 OFFSET $2;`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: query: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.ShipmentRequest, 0, limit)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("list requests: scan row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requests: row iteration: %w", err)
	}

	return requests, nil
}
