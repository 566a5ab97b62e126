package services

import (
	"context"
	"fmt"
	"log"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

type OptimizerConfig struct {
	// Consecutive events further apart than this are considered long-haul
	// and not worth automatic reordering.
	MaxLegDistanceKm float64
	// When true the distance gate aborts optimization; when false it only
	// logs and proceeds.
	StrictDistanceGate bool
}

func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		MaxLegDistanceKm:   500,
		StrictDistanceGate: true,
	}
}

type RouteOptimizer struct {
	provider RouteProvider
	cfg      OptimizerConfig
}

func NewRouteOptimizer(provider RouteProvider, cfg OptimizerConfig) *RouteOptimizer {
	return &RouteOptimizer{provider: provider, cfg: cfg}
}

// Optimize asks the routing provider for a travel-efficient visiting order.
// The first and last events stay fixed; only the interior is reorderable.
// It returns the final order and the per-leg travel minutes for that order.
func (o *RouteOptimizer) Optimize(ctx context.Context, events []db_models.Event, mode db_models.TravelMode) ([]db_models.Event, []int, error) {
	if len(events) < 3 {
		return nil, nil, utils.ErrInsufficientEvents
	}

	for i := range events {
		if !events[i].HasLocation() {
			return nil, nil, fmt.Errorf("%w: %q", utils.ErrMissingLocation, events[i].Title)
		}
	}

	// Feasibility gate over the current order.
	for i := 0; i < len(events)-1; i++ {
		d := DistanceKm(events[i].Location(), events[i+1].Location())
		if d > o.cfg.MaxLegDistanceKm {
			if o.cfg.StrictDistanceGate {
				return nil, nil, fmt.Errorf("%w: %q to %q is %.0f km",
					utils.ErrRouteTooLong, events[i].Title, events[i+1].Title, d)
			}
			log.Printf("route optimizer: leg %q to %q is %.0f km, proceeding anyway",
				events[i].Title, events[i+1].Title, d)
		}
	}

	first := events[0]
	last := events[len(events)-1]
	interior := events[1 : len(events)-1]

	waypoints := make([]string, 0, len(interior))
	for i := range interior {
		waypoints = append(waypoints, interior[i].Address)
	}

	resp, err := o.provider.OptimizeWaypointOrder(ctx, WaypointOrderRequest{
		Origin:      first.Address,
		Destination: last.Address,
		Waypoints:   waypoints,
		TravelMode:  mode,
	})
	if err != nil {
		return nil, nil, err
	}

	ordered := make([]db_models.Event, 0, len(events))
	ordered = append(ordered, first)
	ordered = append(ordered, applyWaypointOrder(interior, resp.WaypointOrder)...)
	ordered = append(ordered, last)

	legMinutes := make([]int, len(ordered)-1)
	for i := range legMinutes {
		if i < len(resp.LegDurations) {
			legMinutes[i] = DurationMinutes(resp.LegDurations[i])
		}
	}

	return ordered, legMinutes, nil
}

// applyWaypointOrder maps the provider's index permutation back onto the
// interior events. A malformed permutation (wrong length, duplicate or
// out-of-range index) is discarded and the original interior order is kept;
// this is a soft degradation, not a failure.
func applyWaypointOrder(interior []db_models.Event, order []int) []db_models.Event {
	if len(order) != len(interior) {
		if len(order) != 0 {
			log.Printf("route optimizer: permutation length %d for %d waypoints, keeping original order",
				len(order), len(interior))
		}
		return interior
	}

	seen := make(map[int]bool, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(interior) || seen[idx] {
			log.Printf("route optimizer: invalid waypoint index %d, keeping original order", idx)
			return interior
		}
		seen[idx] = true
	}

	out := make([]db_models.Event, len(interior))
	for pos, idx := range order {
		out[pos] = interior[idx]
	}
	return out
}
