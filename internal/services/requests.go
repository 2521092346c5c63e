package services

import (
	"context"
	"fmt"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
)

// RequestService covers shipment request CRUD. Requests have no guarded
// workflow here; their status set is owned upstream.
type RequestService struct {
	requests ports.RequestRepository
}

func NewRequestService(requests ports.RequestRepository) *RequestService {
	return &RequestService{requests: requests}
}

type RequestInput struct {
	ContainerID      *int64
	ClientID         *int64
	Status           domain.RequestStatus
	EstimatedCost    *float64
	FinalCost        *float64
	RealElapsedHours *float64
}

func (s *RequestService) Create(ctx context.Context, in RequestInput) (*domain.ShipmentRequest, error) {
	status := in.Status
	if status == "" {
		status = domain.RequestDraft
	}

	req := &domain.ShipmentRequest{
		ContainerID:      in.ContainerID,
		ClientID:         in.ClientID,
		Status:           status,
		EstimatedCost:    in.EstimatedCost,
		FinalCost:        in.FinalCost,
		RealElapsedHours: in.RealElapsedHours,
	}

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", domain.ErrStorage, err)
	}
	return created, nil
}

func (s *RequestService) Get(ctx context.Context, id int64) (*domain.ShipmentRequest, error) {
	return s.requests.Get(ctx, id)
}

func (s *RequestService) List(ctx context.Context, limit, offset int) ([]*domain.ShipmentRequest, error) {
	return s.requests.List(ctx, limit, offset)
}

func (s *RequestService) Update(ctx context.Context, id int64, in RequestInput) (*domain.ShipmentRequest, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	req.ContainerID = in.ContainerID
	req.ClientID = in.ClientID
	if in.Status != "" {
		req.Status = in.Status
	}
	req.EstimatedCost = in.EstimatedCost
	req.FinalCost = in.FinalCost
	req.RealElapsedHours = in.RealElapsedHours

	if err := s.requests.Save(ctx, req); err != nil {
		return nil, fmt.Errorf("update request %d: %w: %w", id, domain.ErrStorage, err)
	}
	return req, nil
}

func (s *RequestService) Delete(ctx context.Context, id int64) error {
	ok, err := s.requests.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete request: check request %d: %w: %w", id, domain.ErrStorage, err)
	}
	if !ok {
		return fmt.Errorf("delete request: request %d: %w", id, domain.ErrNotFound)
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete request %d: %w: %w", id, domain.ErrStorage, err)
	}
	return nil
}
