package geo

import "math"

// EarthRadiusM spherical earth radius in meters.
const EarthRadiusM = 6371000.0

// MetersPerDegree panjang busur 1 derajat di great circle.
const MetersPerDegree = EarthRadiusM * math.Pi / 180.0

type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// NewLocation lat lon dalam derajat, disimpan dalam radian.
func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

// HaversineDistance great-circle distance in meters.
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2( √a, √(1−a) )
func HaversineDistance(one Location, two Location) float64 {
	dLat := two.Latitude - one.Latitude
	dLon := two.Longitude - one.Longitude

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(one.Latitude)*math.Cos(two.Latitude)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusM * c
}

// HaversineDegrees same as HaversineDistance but takes degrees directly.
func HaversineDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(NewLocation(lat1, lon1), NewLocation(lat2, lon2))
}

// EuclideanDistance straight line distance in coordinate units (degrees).
func EuclideanDistance(lat1, lon1, lat2, lon2 float64) float64 {
	latDif := lat1 - lat2
	lonDif := lon1 - lon2
	return math.Sqrt(latDif*latDif + lonDif*lonDif)
}

// ManhattanDistance |Δlat| + |Δlon| in coordinate units.
func ManhattanDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Abs(lat1-lat2) + math.Abs(lon1-lon2)
}
