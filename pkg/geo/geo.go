package geo

import (
	"math"
)

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

/*
BearingTo. initial bearing (derajat, -180..180) dari p1 ke p2.
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {
	dLon := degToRad(p2Lon - p1Lon)

	lat1 := degToRad(p1Lat)
	lat2 := degToRad(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return radToDeg(math.Atan2(y, x))
}

// CardinalDirection nama arah dari bearing, dipakai di step report.
func CardinalDirection(bearing float64) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	b := math.Mod(bearing+360, 360)
	idx := int(math.Round(b/45)) % 8
	return dirs[idx]
}
