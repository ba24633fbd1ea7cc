package utils

import "math"

const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance in meters between two
// coordinate pairs.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox returns a rough lat/lng box around the center that contains
// every point within radiusMeters. Used as a coarse store-side prefilter
// before the exact distance check.
func BoundingBox(lat, lng, radiusMeters float64) (minLat, maxLat, minLng, maxLng float64) {
	deltaLat := radiusMeters / 111320.0
	deltaLng := radiusMeters / (111320.0 * math.Cos(toRadians(lat)))

	return lat - deltaLat, lat + deltaLat, lng - deltaLng, lng + deltaLng
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
