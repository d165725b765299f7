package model

import "math"

const degToRad = math.Pi / 180.0

// LatLonToXYZ converts a latitude/longitude pair on the unit sphere,
// in degrees, to Cartesian coordinates. lat must be in [-90, 90] and lon
// must be in [-180, 180]; callers are responsible for staying in range.
func LatLonToXYZ(lat, lon float64) (x, y, z float64) {
	latRad := lat * degToRad
	lonRad := lon * degToRad
	r := math.Cos(latRad)
	x = r * math.Cos(lonRad)
	y = math.Sin(latRad)
	z = r * math.Sin(lonRad)
	return x, y, z
}
