package heuristics

import (
	"fmt"
	"math"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/geo"
)

// DefaultAverageSpeed assumed speed (cost units per second) used to turn a surface
// distance into a travel time estimate.
const DefaultAverageSpeed = 120.0

// Heuristic estimate of the remaining cost from a state to the goal it was built for.
// +Inf when coordinates are unavailable.
type Heuristic func(s datastructure.State) float64

const (
	NameZero      = "zero"
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameGeodesic  = "geodesic"
)

func Zero() Heuristic {
	return func(datastructure.State) float64 { return 0 }
}

// Manhattan |Δlat| + |Δlon| in raw coordinate units. only meaningful when coordinate
// units already approximate cost units.
func Manhattan(goal datastructure.State) Heuristic {
	return func(s datastructure.State) float64 {
		if s.Coord == nil || goal.Coord == nil {
			return math.Inf(1)
		}
		return geo.ManhattanDistance(s.Coord.Lat, s.Coord.Lon, goal.Coord.Lat, goal.Coord.Lon)
	}
}

// Euclidean straight line distance in the lat/lon plane, scaled to meters then divided by avgSpeed.
func Euclidean(goal datastructure.State, avgSpeed float64) Heuristic {
	avgSpeed = speedOrDefault(avgSpeed)
	return func(s datastructure.State) float64 {
		if s.Coord == nil || goal.Coord == nil {
			return math.Inf(1)
		}
		d := geo.EuclideanDistance(s.Coord.Lat, s.Coord.Lon, goal.Coord.Lat, goal.Coord.Lon) * geo.MetersPerDegree
		return d / avgSpeed
	}
}

// Geodesic haversine surface distance divided by avgSpeed.
func Geodesic(goal datastructure.State, avgSpeed float64) Heuristic {
	avgSpeed = speedOrDefault(avgSpeed)
	var goalLoc geo.Location
	if goal.Coord != nil {
		goalLoc = geo.NewLocation(goal.Coord.Lat, goal.Coord.Lon)
	}
	return func(s datastructure.State) float64 {
		if s.Coord == nil || goal.Coord == nil {
			return math.Inf(1)
		}
		return geo.HaversineDistance(geo.NewLocation(s.Coord.Lat, s.Coord.Lon), goalLoc) / avgSpeed
	}
}

func speedOrDefault(v float64) float64 {
	if v <= 0 {
		return DefaultAverageSpeed
	}
	return v
}

// Factory builds a heuristic for a goal. the goal is bound per invocation so
// every search gets its own closure.
type Factory func(goal datastructure.State) Heuristic

// NewFactory resolve heuristic by name. avgSpeed <= 0 means DefaultAverageSpeed.
func NewFactory(name string, avgSpeed float64) (Factory, error) {
	switch name {
	case NameZero, "":
		return func(datastructure.State) Heuristic { return Zero() }, nil
	case NameManhattan:
		return Manhattan, nil
	case NameEuclidean:
		return func(goal datastructure.State) Heuristic { return Euclidean(goal, avgSpeed) }, nil
	case NameGeodesic, "haversine":
		return func(goal datastructure.State) Heuristic { return Geodesic(goal, avgSpeed) }, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

// Names of the supported heuristics.
func Names() []string {
	return []string{NameZero, NameManhattan, NameEuclidean, NameGeodesic}
}
