package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"gatortrips/internal/models/db_models"
	"gatortrips/internal/models/request_models"
	"gatortrips/internal/models/response_models"
	"gatortrips/internal/repositories"
	mem "gatortrips/pkg/memcache"
	"gatortrips/pkg/utils"
)

type DaySchedulerServiceInterface interface {
	AddEvent(ctx context.Context, accountID, dayID string, payload request_models.EventPayload) (*response_models.DayResponse, error)
	EditEvent(ctx context.Context, accountID, dayID, eventID string, payload request_models.EventPayload) (*response_models.DayResponse, error)
	RemoveEvent(ctx context.Context, accountID, dayID, eventID string) (*response_models.DayResponse, error)
	OptimizeDay(ctx context.Context, accountID, dayID string) (*response_models.DayResponse, error)
}

// DayScheduler owns every mutation of a day. All other components are pure
// or provider-facing; this is the only place a new day snapshot is committed.
type DayScheduler struct {
	tripRepo  repositories.TripRepository
	optimizer *RouteOptimizer
	annotator *LegAnnotator
	locks     mem.DayLockRegistry
}

func NewDayScheduler(
	tripRepo repositories.TripRepository,
	optimizer *RouteOptimizer,
	annotator *LegAnnotator,
	locks mem.DayLockRegistry,
) DaySchedulerServiceInterface {
	return &DayScheduler{
		tripRepo:  tripRepo,
		optimizer: optimizer,
		annotator: annotator,
		locks:     locks,
	}
}

func (s *DayScheduler) AddEvent(ctx context.Context, accountID, dayID string, payload request_models.EventPayload) (*response_models.DayResponse, error) {
	release := s.locks.Acquire(dayID)
	defer release()

	day, err := s.loadDayForEdit(ctx, accountID, dayID)
	if err != nil {
		return nil, err
	}

	event, err := eventFromPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := ValidateEventWindow(event.Window(), day.Events, -1); err != nil {
		return nil, err
	}

	event.DayID = day.ID
	day.Events = append(day.Events, *event)
	invalidateRouteCache(day)

	if err := s.tripRepo.ReplaceDaySnapshot(ctx, day); err != nil {
		log.Printf("day scheduler: commit add: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildDayResponse(day), nil
}

func (s *DayScheduler) EditEvent(ctx context.Context, accountID, dayID, eventID string, payload request_models.EventPayload) (*response_models.DayResponse, error) {
	release := s.locks.Acquire(dayID)
	defer release()

	day, err := s.loadDayForEdit(ctx, accountID, dayID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range day.Events {
		if day.Events[i].ID.String() == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, utils.ErrEventNotFound
	}

	event, err := eventFromPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := ValidateEventWindow(event.Window(), day.Events, idx); err != nil {
		return nil, err
	}

	// Editing in place keeps the day's optimization state; only the event
	// set changing invalidates the cached route.
	event.ID = day.Events[idx].ID
	event.DayID = day.ID
	day.Events[idx] = *event

	if err := s.tripRepo.ReplaceDaySnapshot(ctx, day); err != nil {
		log.Printf("day scheduler: commit edit: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildDayResponse(day), nil
}

func (s *DayScheduler) RemoveEvent(ctx context.Context, accountID, dayID, eventID string) (*response_models.DayResponse, error) {
	release := s.locks.Acquire(dayID)
	defer release()

	day, err := s.loadDayForEdit(ctx, accountID, dayID)
	if err != nil {
		return nil, err
	}

	kept := make([]db_models.Event, 0, len(day.Events))
	found := false
	for i := range day.Events {
		if day.Events[i].ID.String() == eventID {
			found = true
			continue
		}
		kept = append(kept, day.Events[i])
	}
	if !found {
		return nil, utils.ErrEventNotFound
	}

	day.Events = kept
	invalidateRouteCache(day)

	if err := s.tripRepo.ReplaceDaySnapshot(ctx, day); err != nil {
		log.Printf("day scheduler: commit remove: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildDayResponse(day), nil
}

func (s *DayScheduler) OptimizeDay(ctx context.Context, accountID, dayID string) (*response_models.DayResponse, error) {
	release := s.locks.Acquire(dayID)
	defer release()

	trip, err := s.tripRepo.GetTripByDayId(ctx, dayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrDayNotFound
	}
	if !trip.CanEdit(accountID) {
		return nil, utils.ErrForbidden
	}

	day, err := s.tripRepo.GetDayById(ctx, dayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}

	ordered, legMinutes, err := s.optimizer.Optimize(ctx, day.Events, trip.TravelMode)
	if err != nil {
		return nil, err
	}

	recalced, err := RecalculateSchedule(ordered, legMinutes)
	if err != nil {
		return nil, err
	}

	// The final order is known only now; leg annotation fans out per leg.
	legs := s.annotator.AnnotateLegs(ctx, recalced, trip.TravelMode)

	day.Events = recalced
	day.OptimizedRoute = true
	day.TravelOptions = legs

	if err := s.tripRepo.ReplaceDaySnapshot(ctx, day); err != nil {
		log.Printf("day scheduler: commit optimize: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildDayResponse(day), nil
}

func (s *DayScheduler) loadDayForEdit(ctx context.Context, accountID, dayID string) (*db_models.Day, error) {
	trip, err := s.tripRepo.GetTripByDayId(ctx, dayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrDayNotFound
	}
	if !trip.CanEdit(accountID) {
		return nil, utils.ErrForbidden
	}

	day, err := s.tripRepo.GetDayById(ctx, dayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}
	return day, nil
}

// invalidateRouteCache returns the day to its unoptimized state: the cached
// order and legs describe an event set that no longer exists.
func invalidateRouteCache(day *db_models.Day) {
	day.OptimizedRoute = false
	day.TravelOptions = nil
	for i := range day.Events {
		day.Events[i].BufferBefore = nil
		day.Events[i].BufferAfter = nil
	}
}

func eventFromPayload(payload request_models.EventPayload) (*db_models.Event, error) {
	start, err := utils.ParseClock(payload.StartTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseClock(payload.EndTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	category := db_models.EventCategory(payload.Category)
	if !category.Valid() {
		category = db_models.CategoryOther
	}

	return &db_models.Event{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       payload.Title,
		Category:    category,
		StartMinute: start,
		EndMinute:   end,
		Address:     payload.Address,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
	}, nil
}
