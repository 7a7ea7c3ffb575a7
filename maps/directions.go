// Package maps wraps the Google Directions web service used for
// waypoint-optimized collection routes. Callers treat it as a best
// effort hint provider and must be able to fall back to the local
// heuristic when it fails.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	baseURL       = "https://maps.googleapis.com"
	directionsURL = "/maps/api/directions/json"
)

// Location is a geographic point in the order the API expects
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns the "lat,lng" form used in request parameters
func (l Location) String() string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

// OptimizedRoute is the result of a directions call with waypoint
// optimization enabled.
type OptimizedRoute struct {
	// WaypointOrder[i] is the input index of the waypoint visited i-th
	WaypointOrder []int `json:"waypoint_order"`
	// LegDistances[i] is the driving distance in meters to the i-th
	// visited waypoint
	LegDistances []int `json:"leg_distances"`
	// Distance is the total driving distance in meters over the
	// collection legs, always the sum of LegDistances. The return leg
	// to the depot is not counted.
	Distance int `json:"distance"`
	// Duration is the driving time in seconds over the collection legs
	Duration int `json:"duration"`
}

// DirectionsClient resolves an optimized visiting order for a set of
// waypoints starting from origin.
type DirectionsClient interface {
	OptimizeWaypoints(ctx context.Context, origin Location, waypoints []Location) (*OptimizedRoute, error)
}

// GoogleDirectionsClient calls the Google Directions API
type GoogleDirectionsClient struct {
	key        string
	httpClient *http.Client
}

// NewGoogleDirectionsClient creates a directions client with the given
// API key and request timeout.
func NewGoogleDirectionsClient(key string, timeout time.Duration) *GoogleDirectionsClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleDirectionsClient{
		key: key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type directionsAPIResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		WaypointOrder []int `json:"waypoint_order"`
		Legs          []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// OptimizeWaypoints asks the API for the best visiting order of the
// waypoints. The origin doubles as the destination since collection
// trucks return to their depot.
func (c *GoogleDirectionsClient) OptimizeWaypoints(ctx context.Context, origin Location, waypoints []Location) (*OptimizedRoute, error) {
	if c.key == "" {
		return nil, fmt.Errorf("directions API key is not configured")
	}
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("no waypoints to optimize")
	}

	wpStrs := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		wpStrs = append(wpStrs, wp.String())
	}

	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", origin.String())
	params.Set("waypoints", "optimize:true|"+strings.Join(wpStrs, "|"))
	params.Set("key", c.key)

	reqURL := baseURL + directionsURL + "?" + params.Encode()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var apiResp directionsAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Status != "OK" {
		return nil, fmt.Errorf("API error: %s (status=%s)", apiResp.ErrorMessage, apiResp.Status)
	}
	if len(apiResp.Routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	route := apiResp.Routes[0]
	if len(route.WaypointOrder) != len(waypoints) {
		return nil, fmt.Errorf("waypoint order has %d entries, want %d", len(route.WaypointOrder), len(waypoints))
	}

	if len(route.Legs) < len(waypoints) {
		return nil, fmt.Errorf("route has %d legs, want at least %d", len(route.Legs), len(waypoints))
	}

	result := &OptimizedRoute{
		WaypointOrder: route.WaypointOrder,
		LegDistances:  make([]int, 0, len(waypoints)),
	}
	// The last leg closes the loop back at the depot and is not part
	// of the collection distance.
	for _, leg := range route.Legs[:len(waypoints)] {
		result.Distance += leg.Distance.Value
		result.Duration += leg.Duration.Value
		result.LegDistances = append(result.LegDistances, leg.Distance.Value)
	}

	return result, nil
}

func (c *GoogleDirectionsClient) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return body, nil
}
