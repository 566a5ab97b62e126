// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "gatortrips/internal/models/db_models"
)

type TripRepository interface {
	CreateTripWithDays(ctx context.Context, trip *dbm.Trip) error
	GetTripsByOwner(ctx context.Context, ownerID string) ([]dbm.Trip, error)
	GetSharedTrips(ctx context.Context, accountID string) ([]dbm.Trip, error)
	GetTripById(ctx context.Context, tripID string) (*dbm.Trip, error)
	GetTripByDayId(ctx context.Context, dayID string) (*dbm.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
	UpdateCollaborators(ctx context.Context, trip *dbm.Trip) error
	UpdateTravelMode(ctx context.Context, tripID string, mode dbm.TravelMode) error
	GetDayById(ctx context.Context, dayID string) (*dbm.Day, error)
	ReplaceDaySnapshot(ctx context.Context, day *dbm.Day) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// CreateTripWithDays persists the trip and materializes one day per calendar
// date in [StartDate, EndDate]. Days are created exactly once here and never
// re-derived from the date range afterwards.
func (r *tripRepository) CreateTripWithDays(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		days := make([]dbm.Day, 0)
		for d := trip.StartDate; !d.After(trip.EndDate); d = d.Add(24 * time.Hour) {
			days = append(days, dbm.Day{
				TripID: trip.ID,
				Date:   d,
			})
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
			trip.Days = days
		}
		return nil
	})
}

func (r *tripRepository) GetTripsByOwner(ctx context.Context, ownerID string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_date").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetSharedTrips(ctx context.Context, accountID string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("? = ANY(collaborators)", accountID).
		Order("start_date").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("days.date") }).
		Preload("Days.Events", func(db *gorm.DB) *gorm.DB { return db.Order("events.start_minute") }).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetTripByDayId(ctx context.Context, dayID string) (*dbm.Trip, error) {
	var day dbm.Day
	err := r.db.WithContext(ctx).First(&day, "id = ?", dayID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var trip dbm.Trip
	err = r.db.WithContext(ctx).First(&trip, "id = ?", day.TripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.Day{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("day_id IN (?)", subDayIDs).
			Delete(&dbm.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Day{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripID).Delete(&dbm.Trip{}).Error
	})
}

func (r *tripRepository) UpdateCollaborators(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", trip.ID).
		Update("collaborators", trip.Collaborators).Error
}

func (r *tripRepository) UpdateTravelMode(ctx context.Context, tripID string, mode dbm.TravelMode) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("travel_mode", mode).Error
}

func (r *tripRepository) GetDayById(ctx context.Context, dayID string) (*dbm.Day, error) {
	var day dbm.Day
	err := r.db.WithContext(ctx).
		Where("id = ?", dayID).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("events.start_minute") }).
		First(&day).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &day, nil
}

// ReplaceDaySnapshot commits a full day snapshot: it wipes the day's events
// and rewrites them together with the cached route flags in one transaction.
// The scheduler is the only caller; it always hands over a complete snapshot.
func (r *tripRepository) ReplaceDaySnapshot(ctx context.Context, day *dbm.Day) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("day_id = ?", day.ID).
			Delete(&dbm.Event{}).Error; err != nil {
			return err
		}

		for i := range day.Events {
			day.Events[i].DayID = day.ID
			if day.Events[i].ID == uuid.Nil {
				day.Events[i].ID = uuid.New()
			}
		}
		if len(day.Events) > 0 {
			if err := tx.Create(&day.Events).Error; err != nil {
				return err
			}
		}

		return tx.Model(&dbm.Day{}).
			Where("id = ?", day.ID).
			Updates(map[string]interface{}{
				"optimized_route": day.OptimizedRoute,
				"travel_options":  day.TravelOptions,
			}).Error
	})
}
