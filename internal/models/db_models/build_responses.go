package db_models

import (
	"gatortrips/internal/models/response_models"
	"gatortrips/pkg/utils"
)

func BuildTripResponse(t *Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		StartDate:     t.StartDate.Format("2006-01-02"),
		EndDate:       t.EndDate.Format("2006-01-02"),
		TravelMode:    string(t.TravelMode),
		Collaborators: []string(t.Collaborators),
	}
}

func BuildTripDetailResponse(t *Trip) *response_models.TripDetailResponse {
	out := &response_models.TripDetailResponse{
		TripResponse: BuildTripResponse(t),
		Days:         make([]response_models.DayResponse, 0, len(t.Days)),
	}
	for i := range t.Days {
		out.Days = append(out.Days, *BuildDayResponse(&t.Days[i]))
	}
	return out
}

func BuildDayResponse(d *Day) *response_models.DayResponse {
	out := &response_models.DayResponse{
		ID:             d.ID.String(),
		Date:           d.Date.Format("2006-01-02"),
		OptimizedRoute: d.OptimizedRoute,
		Events:         make([]response_models.EventResponse, 0, len(d.Events)),
	}

	for i := range d.Events {
		e := &d.Events[i]
		out.Events = append(out.Events, response_models.EventResponse{
			ID:           e.ID.String(),
			Title:        e.Title,
			Category:     string(e.Category),
			StartTime:    utils.FormatClock(e.StartMinute),
			EndTime:      utils.FormatClock(e.EndMinute),
			Address:      e.Address,
			Latitude:     e.Latitude,
			Longitude:    e.Longitude,
			BufferBefore: e.BufferBefore,
			BufferAfter:  e.BufferAfter,
		})
	}

	for _, leg := range d.TravelOptions {
		view := response_models.LegResponse{
			Mode:         string(leg.Mode),
			DurationText: leg.DurationText,
			LeaveByStart: leg.LeaveByStart,
			LeaveByEnd:   leg.LeaveByEnd,
		}
		switch detail := leg.Detail.(type) {
		case DrivingDetail:
			view.Summary = detail.Summary()
		case TransitDetail:
			view.Summary = detail.Summary()
			for _, s := range detail.Steps {
				view.Steps = append(view.Steps, response_models.TransitStepView{
					Mode:         s.Mode,
					DurationText: s.DurationText,
					Instruction:  s.Instruction,
				})
			}
		}
		out.TravelOptions = append(out.TravelOptions, view)
	}

	return out
}
