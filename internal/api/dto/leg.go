package dto

import (
	"time"

	"shipment-leg-service/internal/domain"
)

type LegWriteRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	TruckPlate  *string    `json:"truck_plate"`
	Status      string     `json:"status"`
	RealStart   *time.Time `json:"real_start"`
	RealEnd     *time.Time `json:"real_end"`
	RealCost    *float64   `json:"real_cost"`
}

type AssignTruckRequest struct {
	TruckPlate string `json:"truck_plate"`
}

type FinishLegRequest struct {
	EndTime          *time.Time `json:"end_time"`
	FinalOdometer    *float64   `json:"final_odometer"`
	RealCost         *float64   `json:"real_cost"`
	RealElapsedHours *float64   `json:"real_elapsed_hours"`
}

type EstimateRequest struct {
	OriginLat *float64 `json:"origin_lat"`
	OriginLng *float64 `json:"origin_lng"`
	DestLat   *float64 `json:"dest_lat"`
	DestLng   *float64 `json:"dest_lng"`
}

type LegResponse struct {
	ID          int64   `json:"id"`
	RequestID   int64   `json:"request_id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	TruckPlate  *string `json:"truck_plate"`
	Status      string  `json:"status"`

	RealStart        *time.Time `json:"real_start"`
	RealEnd          *time.Time `json:"real_end"`
	FinalOdometer    *float64   `json:"final_odometer"`
	RealCost         *float64   `json:"real_cost"`
	RealElapsedHours *float64   `json:"real_elapsed_hours"`

	ApproximateCost *float64   `json:"approximate_cost"`
	EstimatedStart  *time.Time `json:"estimated_start"`
	EstimatedEnd    *time.Time `json:"estimated_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListLegResponse struct {
	Legs []LegResponse `json:"legs"`
}

func FromLeg(leg *domain.Leg) LegResponse {
	return LegResponse{
		ID:               leg.ID,
		RequestID:        leg.RequestID,
		Origin:           leg.Origin,
		Destination:      leg.Destination,
		TruckPlate:       leg.TruckPlate,
		Status:           string(leg.Status),
		RealStart:        leg.RealStart,
		RealEnd:          leg.RealEnd,
		FinalOdometer:    leg.FinalOdometer,
		RealCost:         leg.RealCost,
		RealElapsedHours: leg.RealElapsedHours,
		ApproximateCost:  leg.ApproximateCost,
		EstimatedStart:   leg.EstimatedStart,
		EstimatedEnd:     leg.EstimatedEnd,
		CreatedAt:        leg.CreatedAt,
		UpdatedAt:        leg.UpdatedAt,
	}
}
