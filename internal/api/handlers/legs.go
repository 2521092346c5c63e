package handlers

import (
	"net/http"
	"strconv"
	"time"

	"shipment-leg-service/internal/api/dto"
	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/ports"
	"shipment-leg-service/internal/services"
)

// LegHandler translates HTTP requests into lifecycle engine calls. All
// business rules live in the service; this layer only parses, validates
// shapes, and maps errors.
type LegHandler struct {
	Service *services.LegService
}

// Create handles POST /api/requests/{id}/legs.
func (h *LegHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.LegWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if req.TruckPlate != nil && !domain.ValidPlate(*req.TruckPlate) {
		writeError(w, r, http.StatusBadRequest, "invalid truck plate format")
		return
	}

	leg, err := h.Service.CreateLeg(r.Context(), requestID, services.CreateLegInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		TruckPlate:  req.TruckPlate,
		Status:      domain.LegStatus(req.Status),
		RealStart:   req.RealStart,
		RealEnd:     req.RealEnd,
		RealCost:    req.RealCost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.FromLeg(leg))
}

// Get handles GET /api/legs/{id}.
func (h *LegHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	leg, err := h.Service.GetLeg(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}

// Update handles PUT /api/legs/{id}: the unguarded field overwrite.
func (h *LegHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	var req dto.LegWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.TruckPlate != nil && !domain.ValidPlate(*req.TruckPlate) {
		writeError(w, r, http.StatusBadRequest, "invalid truck plate format")
		return
	}

	leg, err := h.Service.UpdateLeg(r.Context(), id, services.UpdateLegInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		TruckPlate:  req.TruckPlate,
		Status:      domain.LegStatus(req.Status),
		RealStart:   req.RealStart,
		RealEnd:     req.RealEnd,
		RealCost:    req.RealCost,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}

// Delete handles DELETE /api/legs/{id}. Deletion is independent of the
// lifecycle state.
func (h *LegHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	if err := h.Service.DeleteLeg(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/legs with optional status, truck_plate, request_id,
// from/to (real start range) and limit/offset query parameters.
func (h *LegHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := ports.LegFilter{
		Status:     domain.LegStatus(q.Get("status")),
		TruckPlate: q.Get("truck_plate"),
	}
	if filter.Status != "" && !domain.KnownLegStatus(filter.Status) {
		writeError(w, r, http.StatusBadRequest, "unknown status")
		return
	}
	if v := q.Get("request_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request_id")
			return
		}
		filter.RequestID = id
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		filter.StartFrom = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		filter.StartTo = t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	legs, err := h.Service.ListLegs(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListLegResponse{Legs: make([]dto.LegResponse, 0, len(legs))}
	for _, leg := range legs {
		res.Legs = append(res.Legs, dto.FromLeg(leg))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// ListByRequest handles GET /api/requests/{id}/legs.
func (h *LegHandler) ListByRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	legs, err := h.Service.ListLegs(r.Context(), ports.LegFilter{RequestID: requestID})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListLegResponse{Legs: make([]dto.LegResponse, 0, len(legs))}
	for _, leg := range legs {
		res.Legs = append(res.Legs, dto.FromLeg(leg))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Assign handles PUT /api/legs/{id}/assign-truck. The plate format is
// validated here; the capacity decision belongs to the engine.
func (h *LegHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	var req dto.AssignTruckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if !domain.ValidPlate(req.TruckPlate) {
		writeError(w, r, http.StatusBadRequest, "invalid truck plate format")
		return
	}

	leg, err := h.Service.AssignTruck(r.Context(), id, req.TruckPlate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}

// Start handles PUT /api/legs/{id}/start.
func (h *LegHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	leg, err := h.Service.StartLeg(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}

// Finish handles PUT /api/legs/{id}/finish.
func (h *LegHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	var req dto.FinishLegRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.EndTime == nil || req.FinalOdometer == nil || req.RealCost == nil || req.RealElapsedHours == nil {
		writeError(w, r, http.StatusBadRequest, "end_time, final_odometer, real_cost and real_elapsed_hours are required")
		return
	}

	leg, err := h.Service.FinishLeg(r.Context(), id, *req.EndTime, *req.FinalOdometer, *req.RealCost, *req.RealElapsedHours)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}

// Estimate handles PUT /api/legs/{id}/estimate.
func (h *LegHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid leg id")
		return
	}

	var req dto.EstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.OriginLat == nil || req.OriginLng == nil || req.DestLat == nil || req.DestLng == nil {
		writeError(w, r, http.StatusBadRequest, "origin_lat, origin_lng, dest_lat and dest_lng are required")
		return
	}

	leg, err := h.Service.EstimateCostAndTime(r.Context(), id,
		domain.Coordinates{Lat: *req.OriginLat, Lng: *req.OriginLng},
		domain.Coordinates{Lat: *req.DestLat, Lng: *req.DestLng},
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromLeg(leg))
}
