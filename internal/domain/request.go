package domain

import "time"

// RequestStatus is the workflow state of a shipment request. The full
// workflow is owned upstream; legs only require the request to exist.
type RequestStatus string

const (
	RequestDraft      RequestStatus = "DRAFT"
	RequestConfirmed  RequestStatus = "CONFIRMED"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
	RequestCancelled  RequestStatus = "CANCELLED"
)

// ShipmentRequest is the overall booking that owns zero or more legs.
type ShipmentRequest struct {
	ID          int64
	ContainerID *int64
	ClientID    *int64
	Status      RequestStatus

	EstimatedCost    *float64
	FinalCost        *float64
	RealElapsedHours *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
