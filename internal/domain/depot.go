package domain

// Depot is a fixed warehouse location legs can originate from or end at.
type Depot struct {
	ID      int64
	Name    string
	Address string
	Lat     float64
	Lng     float64
}
