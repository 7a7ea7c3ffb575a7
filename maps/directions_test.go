package maps

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func getTestClient(t *testing.T) *GoogleDirectionsClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		t.Skip("GOOGLE_MAPS_API_KEY not set, skipping integration test")
	}
	return NewGoogleDirectionsClient(key, 10*time.Second)
}

func TestOptimizeWaypoints(t *testing.T) {
	client := getTestClient(t)

	origin := Location{Lat: 40.7128, Lng: -74.0060}
	waypoints := []Location{
		{Lat: 40.7306, Lng: -73.9866},
		{Lat: 40.7484, Lng: -73.9857},
		{Lat: 40.7061, Lng: -74.0087},
	}

	result, err := client.OptimizeWaypoints(context.Background(), origin, waypoints)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.WaypointOrder, len(waypoints))
	require.Greater(t, result.Distance, 0)
	require.Greater(t, result.Duration, 0)

	t.Logf("order: %v, distance: %d m, duration: %d s", result.WaypointOrder, result.Distance, result.Duration)
}

func TestOptimizeWaypointsNoKey(t *testing.T) {
	client := NewGoogleDirectionsClient("", time.Second)

	_, err := client.OptimizeWaypoints(context.Background(), Location{}, []Location{{Lat: 1, Lng: 1}})
	require.Error(t, err)
}

func TestOptimizeWaypointsNoWaypoints(t *testing.T) {
	client := NewGoogleDirectionsClient("test-key", time.Second)

	_, err := client.OptimizeWaypoints(context.Background(), Location{}, nil)
	require.Error(t, err)
}
