package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-leg-service/internal/domain"
)

// Postgres-backed implementation of the ClientRepository port.
type PostgresClientRepository struct{ DB *sql.DB }

func NewPostgresClientRepository(db *sql.DB) *PostgresClientRepository {
	return &PostgresClientRepository{DB: db}
}

func (r *PostgresClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if r.DB == nil {
		return nil, errors.New("client repository: DB is nil")
	}

	query := `
	INSERT INTO clients (first_name, last_name, email, phone)
	VALUES ($1, $2, $3, $4)
	RETURNING client_id;
	`
	created := *c
	err := r.DB.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create client: insert: %w", err)
	}
	return &created, nil
}

func (r *PostgresClientRepository) Get(ctx context.Context, id int64) (*domain.Client, error) {
	if r.DB == nil {
		return nil, errors.New("client repository: DB is nil")
	}

	var c domain.Client
	query := `SELECT client_id, first_name, last_name, email, phone FROM clients WHERE client_id = $1;`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

func (r *PostgresClientRepository) Save(ctx context.Context, c *domain.Client) error {
	if r.DB == nil {
		return errors.New("client repository: DB is nil")
	}

	query := `
	UPDATE clients SET first_name = $2, last_name = $3, email = $4, phone = $5
	WHERE client_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query, c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return fmt.Errorf("save client %d: %w", c.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save client %d: rows affected: %w", c.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save client %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresClientRepository) Delete(ctx context.Context, id int64) error {
	if r.DB == nil {
		return errors.New("client repository: DB is nil")
	}

	if _, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE client_id = $1;`, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

func (r *PostgresClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if r.DB == nil {
		return nil, errors.New("client repository: DB is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	query := `SELECT client_id, first_name, last_name, email, phone FROM clients ORDER BY client_id LIMIT $1 OFFSET $2;`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0, limit)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("list clients: scan row: %w", err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: row iteration: %w", err)
	}

	return clients, nil
}
