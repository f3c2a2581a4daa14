package routedata

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Document route data file. intersections and segments describe the map, initial/final
// the routing query, candidates and number_stations the facility location variant.
type Document struct {
	Address        string             `json:"address,omitempty"`
	Distance       float64            `json:"distance,omitempty"`
	Initial        *int64             `json:"initial" validate:"required"`
	Final          *int64             `json:"final" validate:"required"`
	Intersections  []IntersectionItem `json:"intersections" validate:"required,min=1,dive"`
	Segments       []SegmentItem      `json:"segments" validate:"dive"`
	Candidates     []Candidate        `json:"candidates,omitempty" validate:"dive"`
	NumberStations int                `json:"number_stations,omitempty" validate:"gte=0"`
}

// IntersectionItem identifier pointer biar id 0 valid tapi key yang hilang tetap ketahuan.
type IntersectionItem struct {
	Identifier *int64   `json:"identifier" validate:"required"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

type SegmentItem struct {
	Origin      *int64   `json:"origin" validate:"required"`
	Destination *int64   `json:"destination" validate:"required"`
	Distance    *float64 `json:"distance" validate:"required,gte=0"`
	Speed       float64  `json:"speed" validate:"gt=0"`
	Name        string   `json:"name,omitempty"`
}

// Candidate possible station location. encoded as [identifier, population].
type Candidate struct {
	ID         int64   `validate:"-"`
	Population float64 `validate:"gte=0"`
}

func (c *Candidate) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("candidate must be [identifier, population]: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("candidate must be [identifier, population], got %d values", len(raw))
	}
	c.ID = int64(raw[0])
	c.Population = raw[1]
	return nil
}

func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{float64(c.ID), c.Population})
}
