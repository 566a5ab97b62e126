package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatortrips/internal/models/db_models"
	"gatortrips/internal/models/request_models"
	"gatortrips/internal/repositories"
	mem "gatortrips/pkg/memcache"
	"gatortrips/pkg/utils"
)

// memTripRepo keeps one trip and its days in memory and records snapshot
// commits, standing in for the gorm repository.
type memTripRepo struct {
	trip    *db_models.Trip
	days    map[string]*db_models.Day
	commits int
}

var _ repositories.TripRepository = (*memTripRepo)(nil)

func newMemTripRepo(trip *db_models.Trip, days ...*db_models.Day) *memTripRepo {
	r := &memTripRepo{trip: trip, days: make(map[string]*db_models.Day)}
	for _, d := range days {
		d.TripID = trip.ID
		r.days[d.ID.String()] = d
	}
	return r
}

func (r *memTripRepo) CreateTripWithDays(ctx context.Context, trip *db_models.Trip) error {
	return nil
}

func (r *memTripRepo) GetTripsByOwner(ctx context.Context, ownerID string) ([]db_models.Trip, error) {
	return []db_models.Trip{*r.trip}, nil
}

func (r *memTripRepo) GetSharedTrips(ctx context.Context, accountID string) ([]db_models.Trip, error) {
	return nil, nil
}

func (r *memTripRepo) GetTripById(ctx context.Context, tripID string) (*db_models.Trip, error) {
	if r.trip.ID.String() != tripID {
		return nil, nil
	}
	return r.trip, nil
}

func (r *memTripRepo) GetTripByDayId(ctx context.Context, dayID string) (*db_models.Trip, error) {
	if _, ok := r.days[dayID]; !ok {
		return nil, nil
	}
	return r.trip, nil
}

func (r *memTripRepo) DeleteTrip(ctx context.Context, tripID string) error { return nil }

func (r *memTripRepo) UpdateCollaborators(ctx context.Context, trip *db_models.Trip) error {
	return nil
}

func (r *memTripRepo) UpdateTravelMode(ctx context.Context, tripID string, mode db_models.TravelMode) error {
	return nil
}

func (r *memTripRepo) GetDayById(ctx context.Context, dayID string) (*db_models.Day, error) {
	d, ok := r.days[dayID]
	if !ok {
		return nil, nil
	}
	cp := *d
	cp.Events = append([]db_models.Event(nil), d.Events...)
	return &cp, nil
}

func (r *memTripRepo) ReplaceDaySnapshot(ctx context.Context, day *db_models.Day) error {
	r.commits++
	cp := *day
	cp.Events = append([]db_models.Event(nil), day.Events...)
	r.days[day.ID.String()] = &cp
	return nil
}

func schedulerFixture(events ...db_models.Event) (*memTripRepo, *db_models.Day, DaySchedulerServiceInterface, *stubRouteProvider) {
	owner := uuid.New()
	trip := &db_models.Trip{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		OwnerID:    owner,
		Name:       "Florida",
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TravelMode: db_models.TravelModeDriving,
	}
	day := &db_models.Day{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Date:      trip.StartDate,
		Events:    events,
	}

	provider := &stubRouteProvider{
		optimizeFn: func(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error) {
			return &WaypointOrderResponse{LegDurations: []interface{}{"600s", "600s", "600s"}}, nil
		},
		directionsFn: func(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error) {
			return &DirectionsResponse{DurationText: "10 mins", DurationRaw: "600s", Instruction: "Drive"}, nil
		},
	}

	repo := newMemTripRepo(trip, day)
	scheduler := NewDayScheduler(repo, NewRouteOptimizer(provider, DefaultOptimizerConfig()), NewLegAnnotator(provider), mem.NewDayLocks())
	return repo, day, scheduler, provider
}

func eventPayload(title, start, end string) request_models.EventPayload {
	lat, lng := 29.65, -82.32
	return request_models.EventPayload{
		Title:     title,
		Category:  "Food",
		StartTime: start,
		EndTime:   end,
		Address:   title + " address",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func (r *memTripRepo) ownerID() string { return r.trip.OwnerID.String() }

func TestAddEventValidatesBeforeCommit(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("Breakfast", 540, 600, 29.65, -82.32), // 09:00-10:00
		located("Museum", 630, 660, 29.63, -82.37),    // 10:30-11:00
	)

	_, err := scheduler.AddEvent(context.Background(), repo.ownerID(), day.ID.String(), eventPayload("Clash", "09:30", "09:45"))
	assert.ErrorIs(t, err, utils.ErrOverlapConflict)
	assert.Zero(t, repo.commits)

	_, err = scheduler.AddEvent(context.Background(), repo.ownerID(), day.ID.String(), eventPayload("Backwards", "11:00", "10:00"))
	assert.ErrorIs(t, err, utils.ErrInvalidWindow)
	assert.Zero(t, repo.commits)

	resp, err := scheduler.AddEvent(context.Background(), repo.ownerID(), day.ID.String(), eventPayload("Snack", "10:00", "10:30"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.commits)
	assert.Len(t, resp.Events, 3)
}

func TestAddEventInvalidatesRouteCache(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("A", 480, 510, 29.65, -82.32),
		located("B", 540, 600, 29.83, -82.69),
		located("C", 630, 690, 29.63, -82.37),
	)

	_, err := scheduler.OptimizeDay(context.Background(), repo.ownerID(), day.ID.String())
	require.NoError(t, err)

	stored := repo.days[day.ID.String()]
	require.True(t, stored.OptimizedRoute)
	require.NotEmpty(t, stored.TravelOptions)

	_, err = scheduler.AddEvent(context.Background(), repo.ownerID(), day.ID.String(), eventPayload("Late dinner", "21:00", "22:00"))
	require.NoError(t, err)

	stored = repo.days[day.ID.String()]
	assert.False(t, stored.OptimizedRoute)
	assert.Empty(t, stored.TravelOptions)
	for i := range stored.Events {
		assert.Nil(t, stored.Events[i].BufferBefore)
		assert.Nil(t, stored.Events[i].BufferAfter)
	}
}

func TestRemoveEventInvalidatesRouteCache(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("A", 480, 510, 29.65, -82.32),
		located("B", 540, 600, 29.83, -82.69),
		located("C", 630, 690, 29.63, -82.37),
	)

	_, err := scheduler.OptimizeDay(context.Background(), repo.ownerID(), day.ID.String())
	require.NoError(t, err)

	removeID := repo.days[day.ID.String()].Events[1].ID.String()
	resp, err := scheduler.RemoveEvent(context.Background(), repo.ownerID(), day.ID.String(), removeID)
	require.NoError(t, err)

	assert.False(t, resp.OptimizedRoute)
	assert.Empty(t, resp.TravelOptions)
	assert.Len(t, resp.Events, 2)

	_, err = scheduler.RemoveEvent(context.Background(), repo.ownerID(), day.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrEventNotFound)
}

func TestEditEventKeepsOptimizationState(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("A", 480, 510, 29.65, -82.32),
		located("B", 540, 600, 29.83, -82.69),
		located("C", 630, 690, 29.63, -82.37),
	)

	_, err := scheduler.OptimizeDay(context.Background(), repo.ownerID(), day.ID.String())
	require.NoError(t, err)

	editID := repo.days[day.ID.String()].Events[0].ID.String()
	resp, err := scheduler.EditEvent(context.Background(), repo.ownerID(), day.ID.String(), editID, eventPayload("A moved", "07:30", "08:00"))
	require.NoError(t, err)

	assert.True(t, resp.OptimizedRoute)
	assert.Equal(t, "A moved", resp.Events[0].Title)

	// Edits still validate against the other events.
	_, err = scheduler.EditEvent(context.Background(), repo.ownerID(), day.ID.String(), editID, eventPayload("A clash", "09:00", "09:30"))
	assert.ErrorIs(t, err, utils.ErrOverlapConflict)
}

func TestOptimizeDayTooFewEventsLeavesDayUnchanged(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("A", 480, 510, 29.65, -82.32),
		located("B", 540, 600, 29.83, -82.69),
	)

	_, err := scheduler.OptimizeDay(context.Background(), repo.ownerID(), day.ID.String())
	assert.ErrorIs(t, err, utils.ErrInsufficientEvents)
	assert.Zero(t, repo.commits)

	stored := repo.days[day.ID.String()]
	assert.False(t, stored.OptimizedRoute)
	assert.Len(t, stored.Events, 2)
}

func TestOptimizeDayCommitsReorderedSchedule(t *testing.T) {
	repo, day, scheduler, provider := schedulerFixture(
		located("Hotel", 480, 510, 29.65, -82.32),   // 08:00-08:30
		located("Springs", 540, 600, 29.83, -82.69), // 09:00-10:00
		located("Museum", 630, 690, 29.63, -82.37),  // 10:30-11:30
		located("Dinner", 1080, 1140, 29.65, -82.32),
	)

	provider.optimizeFn = func(ctx context.Context, req WaypointOrderRequest) (*WaypointOrderResponse, error) {
		return &WaypointOrderResponse{
			WaypointOrder: []int{1, 0},
			LegDurations:  []interface{}{"600s", "600s", "600s"},
		}, nil
	}

	resp, err := scheduler.OptimizeDay(context.Background(), repo.ownerID(), day.ID.String())
	require.NoError(t, err)
	require.Len(t, resp.Events, 4)

	// Origin fixed, interior swapped.
	assert.Equal(t, "Hotel", resp.Events[0].Title)
	assert.Equal(t, "Museum", resp.Events[1].Title)
	assert.Equal(t, "Springs", resp.Events[2].Title)
	assert.Equal(t, "Dinner", resp.Events[3].Title)
	assert.Equal(t, "08:00", resp.Events[0].StartTime)

	assert.True(t, resp.OptimizedRoute)
	require.Len(t, resp.TravelOptions, 3)
	assert.Equal(t, 1, repo.commits)
}

func TestOptimizeDayAuthorization(t *testing.T) {
	repo, day, scheduler, _ := schedulerFixture(
		located("A", 480, 510, 29.65, -82.32),
		located("B", 540, 600, 29.83, -82.69),
		located("C", 630, 690, 29.63, -82.37),
	)

	_, err := scheduler.OptimizeDay(context.Background(), uuid.NewString(), day.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	repo.trip.Collaborators = append(repo.trip.Collaborators, "friend-id")
	_, err = scheduler.OptimizeDay(context.Background(), "friend-id", day.ID.String())
	assert.NoError(t, err)
}

func TestSchedulerUnknownDay(t *testing.T) {
	repo, _, scheduler, _ := schedulerFixture(located("A", 480, 510, 29.65, -82.32))

	_, err := scheduler.AddEvent(context.Background(), repo.ownerID(), uuid.NewString(), eventPayload("X", "09:00", "10:00"))
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}
