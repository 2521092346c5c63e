package services

import (
	"context"
	"fmt"

	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
)

// fakeLegRepo is an in-memory LegRepository. Get and Save copy the leg so a
// test can observe the stored snapshot independently of what the engine
// mutates in flight.
type fakeLegRepo struct {
	legs    map[int64]*domain.Leg
	nextID  int64
	saveErr error
	saves   int
}

func newFakeLegRepo(legs ...*domain.Leg) *fakeLegRepo {
	r := &fakeLegRepo{legs: make(map[int64]*domain.Leg), nextID: 1}
	for _, l := range legs {
		cp := *l
		r.legs[l.ID] = &cp
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
	}
	return r
}

func (r *fakeLegRepo) Create(ctx context.Context, leg *domain.Leg) (*domain.Leg, error) {
	cp := *leg
	cp.ID = r.nextID
	r.nextID++
	r.legs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeLegRepo) Get(ctx context.Context, id int64) (*domain.Leg, error) {
	l, ok := r.legs[id]
	if !ok {
		return nil, fmt.Errorf("leg %d: %w", id, domain.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLegRepo) Save(ctx context.Context, leg *domain.Leg) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.legs[leg.ID]; !ok {
		return fmt.Errorf("leg %d: %w", leg.ID, domain.ErrNotFound)
	}
	cp := *leg
	r.legs[leg.ID] = &cp
	r.saves++
	return nil
}

func (r *fakeLegRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.legs[id]
	return ok, nil
}

func (r *fakeLegRepo) Delete(ctx context.Context, id int64) error {
	delete(r.legs, id)
	return nil
}

func (r *fakeLegRepo) List(ctx context.Context, f ports.LegFilter) ([]*domain.Leg, error) {
	out := make([]*domain.Leg, 0, len(r.legs))
	for _, l := range r.legs {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.TruckPlate != "" && (l.TruckPlate == nil || *l.TruckPlate != f.TruckPlate) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// stored returns the persisted snapshot for assertions.
func (r *fakeLegRepo) stored(id int64) *domain.Leg {
	return r.legs[id]
}

type fakeRequestRepo struct {
	requests map[int64]*domain.ShipmentRequest
}

func newFakeRequestRepo(ids ...int64) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[int64]*domain.ShipmentRequest)}
	for _, id := range ids {
		r.requests[id] = &domain.ShipmentRequest{ID: id, Status: domain.RequestConfirmed}
	}
	return r
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *domain.ShipmentRequest) (*domain.ShipmentRequest, error) {
	cp := *req
	cp.ID = int64(len(r.requests) + 1)
	r.requests[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeRequestRepo) Get(ctx context.Context, id int64) (*domain.ShipmentRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) Save(ctx context.Context, req *domain.ShipmentRequest) error {
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.requests[id]
	return ok, nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id int64) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) List(ctx context.Context, limit, offset int) ([]*domain.ShipmentRequest, error) {
	out := make([]*domain.ShipmentRequest, 0, len(r.requests))
	for _, req := range r.requests {
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}
