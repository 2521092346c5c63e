package handlers

import (
	"net/http"

	"shipment-leg-service/internal/ports"
)

// IntegrationHandler proxies fleet service lookups for operators.
type IntegrationHandler struct {
	Fleet ports.TruckGateway
}

// FleetStatus handles GET /api/integration/trucks/status.
func (h *IntegrationHandler) FleetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Fleet.FleetStatus(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, status)
}
