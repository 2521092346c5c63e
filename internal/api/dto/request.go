package dto

import (
	"time"

	"shipment-leg-service/internal/domain"
)

type RequestWriteRequest struct {
	ContainerID      *int64   `json:"container_id"`
	ClientID         *int64   `json:"client_id"`
	Status           string   `json:"status"`
	EstimatedCost    *float64 `json:"estimated_cost"`
	FinalCost        *float64 `json:"final_cost"`
	RealElapsedHours *float64 `json:"real_elapsed_hours"`
}

type RequestResponse struct {
	ID               int64     `json:"id"`
	ContainerID      *int64    `json:"container_id"`
	ClientID         *int64    `json:"client_id"`
	Status           string    `json:"status"`
	EstimatedCost    *float64  `json:"estimated_cost"`
	FinalCost        *float64  `json:"final_cost"`
	RealElapsedHours *float64  `json:"real_elapsed_hours"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ListRequestResponse struct {
	Requests []RequestResponse `json:"requests"`
}

func FromRequest(req *domain.ShipmentRequest) RequestResponse {
	return RequestResponse{
		ID:               req.ID,
		ContainerID:      req.ContainerID,
		ClientID:         req.ClientID,
		Status:           string(req.Status),
		EstimatedCost:    req.EstimatedCost,
		FinalCost:        req.FinalCost,
		RealElapsedHours: req.RealElapsedHours,
		CreatedAt:        req.CreatedAt,
		UpdatedAt:        req.UpdatedAt,
	}
}
