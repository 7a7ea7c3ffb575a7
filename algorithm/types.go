// Package algorithm provides the geo math and route planning used by
// dispatch and collection scheduling. It is independent of the business
// layer so it can be tested and tuned in isolation.
package algorithm

// Location is a geographic point
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Stop is a pickup waiting to be visited by a collection route
type Stop struct {
	PickupID int64    `json:"pickup_id"`
	Location Location `json:"location"`
}

// RouteStop is a stop placed in visiting order
type RouteStop struct {
	PickupID    int64    `json:"pickup_id"`
	Order       int      `json:"order"` // 1-based position in the route
	Location    Location `json:"location"`
	LegDistance float64  `json:"leg_distance"` // meters from the previous point
}

// RoutePlan is the result of route optimization
type RoutePlan struct {
	Stops            []RouteStop `json:"stops"`
	TotalDistance    float64     `json:"total_distance"` // meters
	TotalTimeMinutes int         `json:"total_time_minutes"`
}
