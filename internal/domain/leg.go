package domain

import (
	"regexp"
	"time"
)

// LegStatus is the lifecycle state of a leg (persisted as a string).
type LegStatus string

const (
	LegPending  LegStatus = "PENDING"  // created, no truck yet
	LegAssigned LegStatus = "ASSIGNED" // truck assigned, not departed
	LegStarted  LegStatus = "STARTED"  // truck on the road
	LegFinished LegStatus = "FINISHED" // arrived, real figures recorded
)

// LegTransitions is the canonical forward order of the guarded lifecycle
// operations. The generic update endpoint can still overwrite the status
// field directly; that path is an administrative escape hatch and is not
// checked against this table.
var LegTransitions = map[LegStatus][]LegStatus{
	LegPending:  {LegAssigned},
	LegAssigned: {LegStarted},
	LegStarted:  {LegFinished},
	LegFinished: {},
}

// CanTransition reports whether from -> to follows the canonical order.
func CanTransition(from, to LegStatus) bool {
	if from == to {
		return true
	}
	for _, s := range LegTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// KnownLegStatus reports whether s is one of the defined lifecycle states.
func KnownLegStatus(s LegStatus) bool {
	_, ok := LegTransitions[s]
	return ok
}

var platePattern = regexp.MustCompile(`^([A-Z]{3}[0-9]{3}|[A-Z]{2}[0-9]{3}[A-Z]{2})$`)

// ValidPlate reports whether plate matches the fleet registration format
// (three letters + three digits, or two letters + three digits + two letters).
func ValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// Leg is one truck-driven segment of a shipment request.
//
// Origin and Destination are free-form location descriptors; the coordinates
// used for routing are supplied per estimation call, not stored here.
// Real* fields are only written by the lifecycle operation that owns them.
type Leg struct {
	ID        int64
	RequestID int64

	Origin      string
	Destination string

	TruckPlate *string
	Status     LegStatus

	RealStart        *time.Time
	RealEnd          *time.Time
	FinalOdometer    *float64
	RealCost         *float64
	RealElapsedHours *float64

	ApproximateCost *float64
	EstimatedStart  *time.Time
	EstimatedEnd    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assign records the truck on the leg and moves it to ASSIGNED.
// Capacity has already been validated by the caller.
func (l *Leg) Assign(plate string) {
	p := plate
	l.TruckPlate = &p
	l.Status = LegAssigned
}

// Start moves the leg to STARTED and stamps the real departure time.
func (l *Leg) Start(now time.Time) {
	l.Status = LegStarted
	t := now
	l.RealStart = &t
}

// Finish moves the leg to FINISHED and records the caller-supplied real
// figures. End time is trusted as given; no ordering check against RealStart.
func (l *Leg) Finish(end time.Time, odometer, cost, elapsedHours float64) {
	l.Status = LegFinished
	e := end
	l.RealEnd = &e
	l.FinalOdometer = &odometer
	l.RealCost = &cost
	l.RealElapsedHours = &elapsedHours
}

// Assigned reports whether the leg has a truck.
func (l *Leg) Assigned() bool {
	return l.TruckPlate != nil && *l.TruckPlate != ""
}
