package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-leg-service/internal/domain"
)

// Postgres-backed implementation of the DepotRepository port.
type PostgresDepotRepository struct{ DB *sql.DB }

func NewPostgresDepotRepository(db *sql.DB) *PostgresDepotRepository {
	return &PostgresDepotRepository{DB: db}
}

func (r *PostgresDepotRepository) Create(ctx context.Context, d *domain.Depot) (*domain.Depot, error) {
	if r.DB == nil {
		return nil, errors.New("depot repository: DB is nil")
	}

	query := `
	INSERT INTO depots (name, address, lat, lng)
	VALUES ($1, $2, $3, $4)
	RETURNING depot_id;
	`
	created := *d
	err := r.DB.QueryRowContext(ctx, query, d.Name, d.Address, d.Lat, d.Lng).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create depot: insert: %w", err)
	}
	return &created, nil
}

func (r *PostgresDepotRepository) Get(ctx context.Context, id int64) (*domain.Depot, error) {
	if r.DB == nil {
		return nil, errors.New("depot repository: DB is nil")
	}

	var d domain.Depot
	query := `SELECT depot_id, name, address, lat, lng FROM depots WHERE depot_id = $1;`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Address, &d.Lat, &d.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("depot %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get depot %d: %w", id, err)
	}
	return &d, nil
}

func (r *PostgresDepotRepository) Save(ctx context.Context, d *domain.Depot) error {
	if r.DB == nil {
		return errors.New("depot repository: DB is nil")
	}

	query := `
	UPDATE depots SET name = $2, address = $3, lat = $4, lng = $5
	WHERE depot_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query, d.ID, d.Name, d.Address, d.Lat, d.Lng)
	if err != nil {
		return fmt.Errorf("save depot %d: %w", d.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save depot %d: rows affected: %w", d.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save depot %d: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresDepotRepository) Delete(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("depot repository: DB is nil")
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM depots WHERE depot_id = $1;`, id); err != nil {
		return fmt.Errorf("delete depot %d: %w", id, err)
	}
	return nil
}

func (r *PostgresDepotRepository) List(ctx context.Context, limit, offset int) ([]*domain.Depot, error) {
	if r.DB == nil {
		return nil, errors.New("depot repository: DB is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	query := `SELECT depot_id, name, address, lat, lng FROM depots ORDER BY depot_id LIMIT $1 OFFSET $2;`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depots: query: %w", err)
	}
	defer rows.Close()

	depots := make([]*domain.Depot, 0, limit)
	for rows.Next() {
		var d domain.Depot
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.Lat, &d.Lng); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}
