package ports

import (
	"context"

	"shipment-leg-service/internal/domain"
)

// Port: persistence boundary for ShipmentRequest entities.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ShipmentRequest) (*domain.ShipmentRequest, error)
	Get(ctx context.Context, id int64) (*domain.ShipmentRequest, error)
	Save(ctx context.Context, req *domain.ShipmentRequest) error
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*domain.ShipmentRequest, error)
}
