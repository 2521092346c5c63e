package domain

// Client is the booking party on a shipment request.
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
