package algorithm

// NearestNeighborRoute orders stops with a greedy nearest-neighbor walk.
// When origin is nil the walk starts from the first stop's own location,
// so that stop is visited first with a zero-length leg. Ties on distance
// keep the earlier stop in the input slice.
func NearestNeighborRoute(stops []Stop, origin *Location) RoutePlan {
	if len(stops) == 0 {
		return RoutePlan{Stops: []RouteStop{}}
	}

	current := stops[0].Location
	if origin != nil {
		current = *origin
	}

	remaining := make([]Stop, len(stops))
	copy(remaining, stops)

	plan := RoutePlan{Stops: make([]RouteStop, 0, len(stops))}

	for len(remaining) > 0 {
		nearest := 0
		nearestDist := HaversineDistance(current, remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			d := HaversineDistance(current, remaining[i].Location)
			if d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := remaining[nearest]
		plan.Stops = append(plan.Stops, RouteStop{
			PickupID:    next.PickupID,
			Order:       len(plan.Stops) + 1,
			Location:    next.Location,
			LegDistance: nearestDist,
		})
		plan.TotalDistance += nearestDist

		current = next.Location
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}

	plan.TotalTimeMinutes = EstimateTime(plan.TotalDistance)
	return plan
}
