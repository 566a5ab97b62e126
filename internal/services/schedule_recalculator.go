package services

import (
	"fmt"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

// RecalculateSchedule produces a self-consistent schedule for events in their
// final visiting order. Each event keeps its authored duration; only its
// position in time shifts. The function is pure: it returns new event values
// and never touches its input.
//
// Slack policy (applied uniformly): an event never starts before its authored
// start time. When travel delivers us early, the idle minutes are dead time
// recorded entirely as BufferAfter on the earlier event; when we arrive late,
// the event is pushed to the arrival time. BufferBefore is always zero under
// this policy and is kept only so optimized events carry both fields.
func RecalculateSchedule(events []db_models.Event, legMinutes []int) ([]db_models.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}
	if len(legMinutes) != len(events)-1 {
		return nil, fmt.Errorf("recalculate: %d legs for %d events", len(legMinutes), len(events))
	}

	out := make([]db_models.Event, len(events))
	copy(out, events)

	currentTime := out[0].StartMinute

	for i := range out {
		duration := out[i].EndMinute - out[i].StartMinute
		if duration <= 0 {
			return nil, utils.ErrInvalidWindow
		}

		out[i].StartMinute = currentTime
		out[i].EndMinute = currentTime + duration

		zero := 0
		out[i].BufferBefore = &zero
		bufAfter := 0
		out[i].BufferAfter = &bufAfter

		currentTime = out[i].EndMinute

		if i < len(out)-1 {
			travel := legMinutes[i]
			if travel < 0 {
				travel = 0
			}
			arrival := currentTime + travel

			// events[i+1] still carries its authored start here.
			gap := events[i+1].StartMinute - arrival
			if gap > 0 {
				*out[i].BufferAfter = gap
				currentTime = arrival + gap
			} else {
				currentTime = arrival
			}
		}

		if currentTime > utils.MinutesPerDay {
			return nil, fmt.Errorf("%w: schedule reaches %s past midnight",
				utils.ErrDayOverflow, utils.FormatClock(currentTime))
		}
	}

	return out, nil
}
