package domain

// TruckRecord is the fleet service's view of a truck. It is owned by the
// external fleet inventory; this service only reads it.
//
// BaseRatePerKm is a pointer because upstream payloads may omit it; the
// estimation flow must treat a missing rate as an error, never as zero.
type TruckRecord struct {
	Plate          string   `json:"plate"`
	BaseRatePerKm  *float64 `json:"baseRatePerKm"`
	WeightCapacity float64  `json:"weightCapacity"`
	VolumeCapacity float64  `json:"volumeCapacity"`
	Available      bool     `json:"available"`
}
