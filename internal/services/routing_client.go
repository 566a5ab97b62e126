package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

type WaypointOrderRequest struct {
	Origin      string
	Destination string
	Waypoints   []string
	TravelMode  db_models.TravelMode
}

type WaypointOrderResponse struct {
	// Permutation of the waypoint indices, as returned by the provider.
	WaypointOrder []int
	// Per-leg durations for the resulting route, in whatever shape the
	// provider used; normalize with DurationMinutes.
	LegDurations []interface{}
}

type DirectionsRequest struct {
	Origin      string
	Destination string
	TravelMode  db_models.TravelMode
}

type DirectionsStep struct {
	Mode         string
	DurationText string
	Instructions string // may contain markup
}

type DirectionsResponse struct {
	DurationText string
	DurationRaw  interface{}
	Instruction  string           // driving summary
	Steps        []DirectionsStep // transit steps
}

// RouteProvider is the external routing service boundary: one call for
// waypoint reordering, one per-leg directions call.
type RouteProvider interface {
	OptimizeWaypointOrder(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error)
	GetDirections(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error)
}

// --------- In-memory cache per (mode, origin, destination) leg ---------

type legKey struct {
	Mode string
	A    string
	B    string
}

type legCacheEntry struct {
	Resp      DirectionsResponse
	ExpiresAt time.Time
}

type LegCache interface {
	Get(k legKey) (DirectionsResponse, bool)
	Set(k legKey, v DirectionsResponse, ttl time.Duration)
}

type inMemoryLegCache struct {
	mu    sync.RWMutex
	store map[legKey]legCacheEntry
}

func NewInMemoryLegCache() LegCache {
	return &inMemoryLegCache{store: make(map[legKey]legCacheEntry)}
}

func (c *inMemoryLegCache) Get(k legKey) (DirectionsResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return DirectionsResponse{}, false
	}
	return it.Resp, true
}

func (c *inMemoryLegCache) Set(k legKey, v DirectionsResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = legCacheEntry{Resp: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Google Routes client ---------------

type GoogleRoutesClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      LegCache
	DefaultTTL time.Duration
}

func NewGoogleRoutesClient(cache LegCache) *GoogleRoutesClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		panic("GOOGLE_MAPS_API_KEY is empty")
	}
	return &GoogleRoutesClient{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		APIKey:     key,
		BaseURL:    "https://routes.googleapis.com",
		Cache:      cache,
		DefaultTTL: 30 * time.Minute,
	}
}

func providerMode(mode db_models.TravelMode) string {
	if mode == db_models.TravelModeTransit {
		return "TRANSIT"
	}
	return "DRIVE"
}

type routesWaypoint struct {
	Address string `json:"address"`
}

type computeRoutesRequest struct {
	Origin                routesWaypoint   `json:"origin"`
	Destination           routesWaypoint   `json:"destination"`
	Intermediates         []routesWaypoint `json:"intermediates,omitempty"`
	TravelMode            string           `json:"travelMode"`
	OptimizeWaypointOrder bool             `json:"optimizeWaypointOrder,omitempty"`
}

type routesLeg struct {
	Duration        json.RawMessage `json:"duration"`
	LocalizedValues struct {
		Duration struct {
			Text string `json:"text"`
		} `json:"duration"`
	} `json:"localizedValues"`
	Steps []struct {
		TravelMode            string `json:"travelMode"`
		NavigationInstruction struct {
			Instructions string `json:"instructions"`
		} `json:"navigationInstruction"`
		LocalizedValues struct {
			StaticDuration struct {
				Text string `json:"text"`
			} `json:"staticDuration"`
		} `json:"localizedValues"`
	} `json:"steps"`
}

type computeRoutesResponse struct {
	Routes []struct {
		OptimizedIntermediateWaypointIndex []int       `json:"optimizedIntermediateWaypointIndex"`
		Legs                               []routesLeg `json:"legs"`
	} `json:"routes"`
}

func (c *GoogleRoutesClient) computeRoutes(ctx context.Context, body computeRoutesRequest, fieldMask string) (*computeRoutesResponse, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("routes encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/directions/v2:computeRoutes", bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("routes request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: status %s", utils.ErrProviderUnavailable, resp.Status)
	}

	var payload computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrMalformedProviderResponse, err)
	}
	return &payload, nil
}

func (c *GoogleRoutesClient) OptimizeWaypointOrder(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error) {
	body := computeRoutesRequest{
		Origin:                routesWaypoint{Address: req.Origin},
		Destination:           routesWaypoint{Address: req.Destination},
		TravelMode:            providerMode(req.TravelMode),
		OptimizeWaypointOrder: true,
	}
	for _, w := range req.Waypoints {
		body.Intermediates = append(body.Intermediates, routesWaypoint{Address: w})
	}

	payload, err := c.computeRoutes(ctx, body,
		"routes.optimizedIntermediateWaypointIndex,routes.legs.duration")
	if err != nil {
		return nil, err
	}
	if len(payload.Routes) == 0 {
		return nil, fmt.Errorf("%w: no routes", utils.ErrMalformedProviderResponse)
	}

	route := payload.Routes[0]
	out := &WaypointOrderResponse{
		WaypointOrder: route.OptimizedIntermediateWaypointIndex,
	}
	for _, leg := range route.Legs {
		var raw interface{}
		if len(leg.Duration) > 0 {
			_ = json.Unmarshal(leg.Duration, &raw)
		}
		out.LegDurations = append(out.LegDurations, raw)
	}
	return out, nil
}

func (c *GoogleRoutesClient) GetDirections(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error) {
	k := legKey{Mode: providerMode(req.TravelMode), A: req.Origin, B: req.Destination}
	if v, ok := c.Cache.Get(k); ok {
		return &v, nil
	}

	body := computeRoutesRequest{
		Origin:      routesWaypoint{Address: req.Origin},
		Destination: routesWaypoint{Address: req.Destination},
		TravelMode:  providerMode(req.TravelMode),
	}

	payload, err := c.computeRoutes(ctx, body,
		"routes.legs.duration,routes.legs.localizedValues,routes.legs.steps")
	if err != nil {
		return nil, err
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("%w: no legs", utils.ErrMalformedProviderResponse)
	}

	leg := payload.Routes[0].Legs[0]
	out := DirectionsResponse{
		DurationText: leg.LocalizedValues.Duration.Text,
	}
	if len(leg.Duration) > 0 {
		var raw interface{}
		_ = json.Unmarshal(leg.Duration, &raw)
		out.DurationRaw = raw
	}
	for _, s := range leg.Steps {
		out.Steps = append(out.Steps, DirectionsStep{
			Mode:         s.TravelMode,
			DurationText: s.LocalizedValues.StaticDuration.Text,
			Instructions: s.NavigationInstruction.Instructions,
		})
	}
	if len(leg.Steps) > 0 {
		out.Instruction = leg.Steps[0].NavigationInstruction.Instructions
	}

	c.Cache.Set(k, out, c.DefaultTTL)
	return &out, nil
}
