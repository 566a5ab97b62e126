package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Day is one calendar date of a trip. Days are materialized once at trip
// creation and only ever mutated through the day scheduler, which commits
// whole snapshots.
type Day struct {
	BaseModel
	TripID uuid.UUID
	Date   time.Time // date-only, UTC midnight

	// OptimizedRoute and TravelOptions cache the result of the last
	// optimization. They describe the exact event sequence they were
	// computed for and are cleared on any add or remove.
	OptimizedRoute bool
	TravelOptions  LegList `gorm:"type:jsonb"`

	Events []Event `gorm:"constraint:OnDelete:CASCADE"`
}
