package spatial

import (
	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/geo"

	"github.com/golang/geo/s2"
)

// ProjectToSegment titik terdekat dari p di great circle segment a-b.
func ProjectToSegment(p, a, b datastructure.Coordinate) datastructure.Coordinate {
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	pS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	projection := s2.Project(pS2, aS2, bS2)
	ll := s2.LatLngFromPoint(projection)
	return datastructure.NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// DistanceToSegmentM jarak (m) dari p ke segment a-b.
func DistanceToSegmentM(p, a, b datastructure.Coordinate) float64 {
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	pS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	return s2.DistanceFromSegment(pS2, aS2, bS2).Radians() * geo.EarthRadiusM
}
