package handlers

import (
	"net/http"
	"strconv"

	"shipment-leg-service/internal/api/dto"
	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/services"
)

// RequestHandler covers shipment request CRUD.
type RequestHandler struct {
	Service *services.RequestService
}

func parsePaging(r *http.Request) (limit, offset int, ok bool) {
	limit, offset = 50, 0
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			return 0, 0, false
		}
		limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

func (h *RequestHandler) input(req dto.RequestWriteRequest) services.RequestInput {
	return services.RequestInput{
		ContainerID:      req.ContainerID,
		ClientID:         req.ClientID,
		Status:           domain.RequestStatus(req.Status),
		EstimatedCost:    req.EstimatedCost,
		FinalCost:        req.FinalCost,
		RealElapsedHours: req.RealElapsedHours,
	}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Service.Create(r.Context(), h.input(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FromRequest(created))
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromRequest(req))
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePaging(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid paging parameters")
		return
	}

	requests, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListRequestResponse{Requests: make([]dto.RequestResponse, 0, len(requests))}
	for _, req := range requests {
		res.Requests = append(res.Requests, dto.FromRequest(req))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.RequestWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, h.input(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromRequest(updated))
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
