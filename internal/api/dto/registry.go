package dto

import "shipment-leg-service/internal/domain"

type ClientWriteRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ClientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ListClientResponse struct {
	Clients []ClientResponse `json:"clients"`
}

func FromClient(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

type DepotWriteRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type DepotResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type ListDepotResponse struct {
	Depots []DepotResponse `json:"depots"`
}

func FromDepot(d *domain.Depot) DepotResponse {
	return DepotResponse{
		ID:      d.ID,
		Name:    d.Name,
		Address: d.Address,
		Lat:     d.Lat,
		Lng:     d.Lng,
	}
}
