package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// LegDetail is the mode-specific portion of a leg: a single instruction when
// driving, an ordered list of steps when using transit.
type LegDetail interface {
	Summary() string
}

type DrivingDetail struct {
	Instruction string `json:"instruction"`
}

func (d DrivingDetail) Summary() string { return d.Instruction }

type TransitStep struct {
	Mode         string `json:"mode"`
	DurationText string `json:"duration_text"`
	Instruction  string `json:"instruction"`
}

type TransitDetail struct {
	Steps []TransitStep `json:"steps"`
}

func (t TransitDetail) Summary() string {
	parts := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		parts = append(parts, s.Instruction)
	}
	return strings.Join(parts, "; ")
}

// Leg is the travel segment between two consecutive events in a day's
// current order. Legs only ever live inside their day's TravelOptions cache.
type Leg struct {
	Mode            TravelMode `json:"mode"`
	DurationText    string     `json:"duration_text"`
	DurationMinutes int        `json:"duration_minutes"`
	LeaveByStart    string     `json:"leave_by_start"`
	LeaveByEnd      string     `json:"leave_by_end"`
	Detail          LegDetail  `json:"-"`
}

type legJSON struct {
	Mode            TravelMode     `json:"mode"`
	DurationText    string         `json:"duration_text"`
	DurationMinutes int            `json:"duration_minutes"`
	LeaveByStart    string         `json:"leave_by_start"`
	LeaveByEnd      string         `json:"leave_by_end"`
	Driving         *DrivingDetail `json:"driving,omitempty"`
	Transit         *TransitDetail `json:"transit,omitempty"`
}

func (l Leg) MarshalJSON() ([]byte, error) {
	out := legJSON{
		Mode:            l.Mode,
		DurationText:    l.DurationText,
		DurationMinutes: l.DurationMinutes,
		LeaveByStart:    l.LeaveByStart,
		LeaveByEnd:      l.LeaveByEnd,
	}
	switch d := l.Detail.(type) {
	case DrivingDetail:
		out.Driving = &d
	case *DrivingDetail:
		out.Driving = d
	case TransitDetail:
		out.Transit = &d
	case *TransitDetail:
		out.Transit = d
	}
	return json.Marshal(out)
}

func (l *Leg) UnmarshalJSON(data []byte) error {
	var in legJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	l.Mode = in.Mode
	l.DurationText = in.DurationText
	l.DurationMinutes = in.DurationMinutes
	l.LeaveByStart = in.LeaveByStart
	l.LeaveByEnd = in.LeaveByEnd
	switch {
	case in.Driving != nil:
		l.Detail = *in.Driving
	case in.Transit != nil:
		l.Detail = *in.Transit
	default:
		l.Detail = nil
	}
	return nil
}

// LegList stores a day's cached legs as a single jsonb column.
type LegList []Leg

func (l LegList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *LegList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan LegList: unsupported type %T", src)
	}
	return json.Unmarshal(data, l)
}
