package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}
