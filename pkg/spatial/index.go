package spatial

import (
	"errors"
	"sort"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/geo"
)

var ErrNoIntersection = errors.New("no intersection around location")

// Index snap koordinat ke intersection terdekat.
type Index interface {
	Nearest(lat, lon float64) (Match, error)
}

// Match intersection hasil snapping plus jarak haversine (m) dari titik query.
type Match struct {
	Intersection datastructure.Intersection
	DistanceM    float64
}

// closest pilih intersection dengan jarak haversine terkecil, tie -> id terkecil.
func closest(lat, lon float64, candidates []datastructure.Intersection) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}
	matches := make([]Match, 0, len(candidates))
	for _, in := range candidates {
		if in.Coord == nil {
			continue
		}
		matches = append(matches, Match{
			Intersection: in,
			DistanceM:    geo.HaversineDegrees(lat, lon, in.Coord.Lat, in.Coord.Lon),
		})
	}
	if len(matches) == 0 {
		return Match{}, false
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceM != matches[j].DistanceM {
			return matches[i].DistanceM < matches[j].DistanceM
		}
		return matches[i].Intersection.ID < matches[j].Intersection.ID
	})
	return matches[0], true
}
