package algorithm

import "math"

const (
	// earth radius in meters
	earthRadius = 6371000

	// average collection truck speed in meters per second, about 30km/h
	avgTruckSpeed = 8.3
)

// HaversineDistance computes the great-circle distance between two points
// in meters using the haversine formula.
func HaversineDistance(loc1, loc2 Location) float64 {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// EstimateTime estimates driving time in minutes for a distance in meters.
func EstimateTime(distanceMeters float64) int {
	if distanceMeters <= 0 {
		return 0
	}
	seconds := distanceMeters / avgTruckSpeed
	return int(math.Ceil(seconds / 60))
}

// toRadians converts degrees to radians
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// CenterPoint computes the centroid of a set of points
func CenterPoint(locations []Location) Location {
	if len(locations) == 0 {
		return Location{}
	}
	if len(locations) == 1 {
		return locations[0]
	}

	var sumLat, sumLng float64
	for _, loc := range locations {
		sumLat += loc.Latitude
		sumLng += loc.Longitude
	}

	n := float64(len(locations))
	return Location{
		Longitude: sumLng / n,
		Latitude:  sumLat / n,
	}
}
