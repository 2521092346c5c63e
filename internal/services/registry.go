package services

import (
	"context"
	"fmt"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
)

// Thin CRUD services for the reference entities (clients, depots). No
// business rules live here beyond existence checks.

type ClientService struct {
	clients ports.ClientRepository
}

func NewClientService(clients ports.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (s *ClientService) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	created, err := s.clients.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create client: %w: %w", domain.ErrStorage, err)
	}
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *ClientService) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	return s.clients.List(ctx, limit, offset)
}

func (s *ClientService) Update(ctx context.Context, id int64, in *domain.Client) (*domain.Client, error) {
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone

	if err := s.clients.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("update client %d: %w: %w", id, domain.ErrStorage, err)
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if _, err := s.clients.Get(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w: %w", id, domain.ErrStorage, err)
	}
	return nil
}

type DepotService struct {
	depots ports.DepotRepository
}

func NewDepotService(depots ports.DepotRepository) *DepotService {
	return &DepotService{depots: depots}
}

func (s *DepotService) Create(ctx context.Context, d *domain.Depot) (*domain.Depot, error) {
	created, err := s.depots.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create depot: %w: %w", domain.ErrStorage, err)
	}
	return created, nil
}

func (s *DepotService) Get(ctx context.Context, id int64) (*domain.Depot, error) {
	return s.depots.Get(ctx, id)
}

func (s *DepotService) List(ctx context.Context, limit, offset int) ([]*domain.Depot, error) {
	return s.depots.List(ctx, limit, offset)
}

func (s *DepotService) Update(ctx context.Context, id int64, in *domain.Depot) (*domain.Depot, error) {
	d, err := s.depots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update depot: %w", err)
	}

	d.Name = in.Name
	d.Address = in.Address
	d.Lat = in.Lat
	d.Lng = in.Lng

	if err := s.depots.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("update depot %d: %w: %w", id, domain.ErrStorage, err)
	}
	return d, nil
}

func (s *DepotService) Delete(ctx context.Context, id int64) error {
	if _, err := s.depots.Get(ctx, id); err != nil {
		return fmt.Errorf("delete depot: %w", err)
	}
	if err := s.depots.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete depot %d: %w: %w", id, domain.ErrStorage, err)
	}
	return nil
}
