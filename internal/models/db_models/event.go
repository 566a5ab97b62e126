package db_models

import (
	"github.com/google/uuid"
)

type EventCategory string

const (
	CategoryFood        EventCategory = "Food"
	CategoryConcert     EventCategory = "Concert"
	CategoryShopping    EventCategory = "Shopping"
	CategoryActivity    EventCategory = "Activity"
	CategoryMuseum      EventCategory = "Museum"
	CategoryPark        EventCategory = "Park"
	CategoryNightlife   EventCategory = "Nightlife"
	CategorySightseeing EventCategory = "Sightseeing"
	CategorySports      EventCategory = "Sports"
	CategoryWorkshop    EventCategory = "Workshop"
	CategoryOther       EventCategory = "Other"
)

var eventCategories = map[EventCategory]struct{}{
	CategoryFood: {}, CategoryConcert: {}, CategoryShopping: {},
	CategoryActivity: {}, CategoryMuseum: {}, CategoryPark: {},
	CategoryNightlife: {}, CategorySightseeing: {}, CategorySports: {},
	CategoryWorkshop: {}, CategoryOther: {},
}

func (c EventCategory) Valid() bool {
	_, ok := eventCategories[c]
	return ok
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeWindow is a half-open [start, end) interval in minutes since midnight.
type TimeWindow struct {
	StartMinute int
	EndMinute   int
}

func (w TimeWindow) Valid() bool {
	return w.StartMinute >= 0 && w.EndMinute < 1440 && w.StartMinute < w.EndMinute
}

func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.StartMinute < o.EndMinute && o.StartMinute < w.EndMinute
}

func (w TimeWindow) Duration() int {
	return w.EndMinute - w.StartMinute
}

type Event struct {
	BaseModel
	DayID    uuid.UUID
	Title    string
	Category EventCategory `gorm:"type:varchar(32)"`

	StartMinute int
	EndMinute   int

	Address   string
	Latitude  *float64
	Longitude *float64

	// Populated by optimization only; nil until a day has been optimized.
	BufferBefore *int
	BufferAfter  *int
}

func (e *Event) Window() TimeWindow {
	return TimeWindow{StartMinute: e.StartMinute, EndMinute: e.EndMinute}
}

func (e *Event) HasLocation() bool {
	return e.Address != "" && e.Latitude != nil && e.Longitude != nil
}

func (e *Event) Location() Coordinate {
	if !e.HasLocation() {
		return Coordinate{}
	}
	return Coordinate{Lat: *e.Latitude, Lng: *e.Longitude}
}
