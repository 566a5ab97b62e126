package services

import (
	"context"

	"github.com/google/uuid"

	"gatortrips/internal/models/db_models"
)

// stubRouteProvider lets tests script both provider calls.
type stubRouteProvider struct {
	optimizeFn   func(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error)
	directionsFn func(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error)
}

func (s *stubRouteProvider) OptimizeWaypointOrder(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error) {
	return s.optimizeFn(ctx, req)
}

func (s *stubRouteProvider) GetDirections(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error) {
	return s.directionsFn(ctx, req)
}

func located(title string, start, end int, lat, lng float64) db_models.Event {
	return db_models.Event{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       title,
		Category:    db_models.CategorySightseeing,
		StartMinute: start,
		EndMinute:   end,
		Address:     title + " address",
		Latitude:    &lat,
		Longitude:   &lng,
	}
}
