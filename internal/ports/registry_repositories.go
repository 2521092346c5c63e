package ports

import (
	"context"

	"shipment-leg-service/internal/domain"
)

// Port: persistence boundary for Client entities.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Save(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

// Port: persistence boundary for Depot entities.
type DepotRepository interface {
	Create(ctx context.Context, d *domain.Depot) (*domain.Depot, error)
	Get(ctx context.Context, id int64) (*domain.Depot, error)
	Save(ctx context.Context, d *domain.Depot) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*domain.Depot, error)
}
