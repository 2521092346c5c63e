package handlers

import (
	"net/http"

	"shipment-leg-service/internal/api/dto"
	"shipment-leg-service/internal/domain"
	"shipment-leg-service/internal/services"
)

// ClientHandler and DepotHandler cover the reference entity CRUD.

type ClientHandler struct {
	Service *services.ClientService
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.FirstName == "" {
		writeError(w, r, http.StatusBadRequest, "first_name is required")
		return
	}

	created, err := h.Service.Create(r.Context(), &domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FromClient(created))
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid client id")
		return
	}

	c, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromClient(c))
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePaging(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid paging parameters")
		return
	}

	clients, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListClientResponse{Clients: make([]dto.ClientResponse, 0, len(clients))}
	for _, c := range clients {
		res.Clients = append(res.Clients, dto.FromClient(c))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid client id")
		return
	}

	var req dto.ClientWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, &domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromClient(updated))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DepotHandler struct {
	Service *services.DepotService
}

func (h *DepotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepotWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.Service.Create(r.Context(), &domain.Depot{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FromDepot(created))
}

func (h *DepotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid depot id")
		return
	}

	d, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromDepot(d))
}

func (h *DepotHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePaging(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid paging parameters")
		return
	}

	depots, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListDepotResponse{Depots: make([]dto.DepotResponse, 0, len(depots))}
	for _, d := range depots {
		res.Depots = append(res.Depots, dto.FromDepot(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DepotHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid depot id")
		return
	}

	var req dto.DepotWriteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, &domain.Depot{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FromDepot(updated))
}

func (h *DepotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid depot id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
