package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TravelMode string

const (
	TravelModeDriving TravelMode = "DRIVING"
	TravelModeTransit TravelMode = "TRANSIT"
)

func (m TravelMode) Valid() bool {
	return m == TravelModeDriving || m == TravelModeTransit
}

type Trip struct {
	BaseModel
	OwnerID   uuid.UUID
	Name      string
	StartDate time.Time // date-only, UTC midnight
	EndDate   time.Time // inclusive
	// Account IDs allowed to edit this trip alongside the owner.
	Collaborators pq.StringArray `gorm:"type:text[]"`
	TravelMode    TravelMode     `gorm:"type:varchar(16);default:'DRIVING'"`

	Days []Day `gorm:"constraint:OnDelete:CASCADE"`
}

func (t *Trip) IsOwner(accountID string) bool {
	return t.OwnerID.String() == accountID
}

// CanEdit reports whether the account is the owner or a collaborator.
func (t *Trip) CanEdit(accountID string) bool {
	if t.IsOwner(accountID) {
		return true
	}
	for _, id := range t.Collaborators {
		if id == accountID {
			return true
		}
	}
	return false
}
