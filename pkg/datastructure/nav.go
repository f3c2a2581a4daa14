package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// NewCoordinatePtr helper buat intersection yang koordinatnya optional.
func NewCoordinatePtr(lat, lon float64) *Coordinate {
	c := NewCoordinate(lat, lon)
	return &c
}
