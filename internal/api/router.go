package api

import (
	"net/http"

	"shipment-leg-service/internal/api/handlers"
	"shipment-leg-service/internal/ports"
	"shipment-leg-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	legs *services.LegService,
	requests *services.RequestService,
	clients *services.ClientService,
	depots *services.DepotService,
	fleet ports.TruckGateway,
) http.Handler {
	mux := http.NewServeMux()

	legHandler := &handlers.LegHandler{Service: legs}
	requestHandler := &handlers.RequestHandler{Service: requests}
	clientHandler := &handlers.ClientHandler{Service: clients}
	depotHandler := &handlers.DepotHandler{Service: depots}
	integrationHandler := &handlers.IntegrationHandler{Fleet: fleet}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /api/requests", requestHandler.Create)
	mux.HandleFunc("GET /api/requests", requestHandler.List)
	mux.HandleFunc("GET /api/requests/{id}", requestHandler.Get)
	mux.HandleFunc("PUT /api/requests/{id}", requestHandler.Update)
	mux.HandleFunc("DELETE /api/requests/{id}", requestHandler.Delete)

	mux.HandleFunc("POST /api/requests/{id}/legs", legHandler.Create)
	mux.HandleFunc("GET /api/requests/{id}/legs", legHandler.ListByRequest)

	mux.HandleFunc("GET /api/legs", legHandler.List)
	mux.HandleFunc("GET /api/legs/{id}", legHandler.Get)
	mux.HandleFunc("PUT /api/legs/{id}", legHandler.Update)
	mux.HandleFunc("DELETE /api/legs/{id}", legHandler.Delete)
	mux.HandleFunc("PUT /api/legs/{id}/assign-truck", legHandler.Assign)
	mux.HandleFunc("PUT /api/legs/{id}/start", legHandler.Start)
	mux.HandleFunc("PUT /api/legs/{id}/finish", legHandler.Finish)
	mux.HandleFunc("PUT /api/legs/{id}/estimate", legHandler.Estimate)

	mux.HandleFunc("POST /api/clients", clientHandler.Create)
	mux.HandleFunc("GET /api/clients", clientHandler.List)
	mux.HandleFunc("GET /api/clients/{id}", clientHandler.Get)
	mux.HandleFunc("PUT /api/clients/{id}", clientHandler.Update)
	mux.HandleFunc("DELETE /api/clients/{id}", clientHandler.Delete)

	mux.HandleFunc("POST /api/depots", depotHandler.Create)
	mux.HandleFunc("GET /api/depots", depotHandler.List)
	mux.HandleFunc("GET /api/depots/{id}", depotHandler.Get)
	mux.HandleFunc("PUT /api/depots/{id}", depotHandler.Update)
	mux.HandleFunc("DELETE /api/depots/{id}", depotHandler.Delete)

	mux.HandleFunc("GET /api/integration/trucks/status", integrationHandler.FleetStatus)

	return requestIDMiddleware(loggingMiddleware(mux))
}
