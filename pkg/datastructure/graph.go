package datastructure

import (
	"fmt"
	"strconv"

	"github.com/twpayne/go-polyline"
)

// Intersection is a road network vertex. Coord is nil when the source data carries no position.
type Intersection struct {
	ID    int64
	Coord *Coordinate
}

func NewIntersection(id int64, coord *Coordinate) Intersection {
	return Intersection{ID: id, Coord: coord}
}

func (i Intersection) State() State {
	return State{ID: i.ID, Coord: i.Coord}
}

// Segment directed road segment. distance dalam meter, speed > 0.
type Segment struct {
	Origin      int64
	Destination int64
	Distance    float64
	Speed       float64
	StreetName  string
}

func (s Segment) TravelTime() float64 {
	return s.Distance / s.Speed
}

// State location descriptor used by the search. identity is the intersection id only,
// coordinates are informational.
type State struct {
	ID    int64
	Coord *Coordinate
}

func NewState(id int64, coord *Coordinate) State {
	return State{ID: id, Coord: coord}
}

func (s State) Equal(other State) bool {
	return s.ID == other.ID
}

func (s State) HasCoordinate() bool {
	return s.Coord != nil
}

func (s State) String() string {
	return strconv.FormatInt(s.ID, 10)
}

// Action symbolic transition origin -> destination. the zero value is NoAction.
type Action struct {
	Origin      int64
	Destination int64
	valid       bool
}

var NoAction = Action{}

func NewAction(origin, destination int64) Action {
	return Action{Origin: origin, Destination: destination, valid: true}
}

func (a Action) IsValid() bool {
	return a.valid
}

func (a Action) String() string {
	if !a.valid {
		return ""
	}
	return fmt.Sprintf("%d → %d", a.Origin, a.Destination)
}

// Successor one outgoing transition of a state, cost already evaluated with the problem cost function.
type Successor struct {
	Action  Action
	State   State
	Cost    float64
	Segment Segment
}

func RoadTypeMaxSpeed(roadType string) float64 {
	switch roadType {
	case "motorway":
		return 95
	case "trunk":
		return 85
	case "primary":
		return 75
	case "secondary":
		return 65
	case "tertiary":
		return 50
	case "unclassified":
		return 50
	case "residential":
		return 30
	case "service":
		return 20
	case "motorway_link":
		return 90
	case "trunk_link":
		return 80
	case "primary_link":
		return 70
	case "secondary_link":
		return 60
	case "tertiary_link":
		return 50
	case "living_street":
		return 20
	default:
		return 40
	}
}

// RenderPath encode koordinat state di path ke google polyline. state tanpa koordinat di skip.
func RenderPath(path []State) string {
	coords := make([][]float64, 0, len(path))
	for _, s := range path {
		if s.Coord == nil {
			continue
		}
		coords = append(coords, []float64{s.Coord.Lat, s.Coord.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
