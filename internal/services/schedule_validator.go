package services

import (
	"fmt"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

// ValidateEventWindow checks a candidate window against every other event on
// the day. excludeIndex names the event being edited so it does not conflict
// with itself; pass -1 when adding. This runs before any mutation commits,
// so a failure leaves the day untouched.
func ValidateEventWindow(candidate db_models.TimeWindow, events []db_models.Event, excludeIndex int) error {
	if !candidate.Valid() {
		return utils.ErrInvalidWindow
	}

	for i := range events {
		if i == excludeIndex {
			continue
		}
		if candidate.Overlaps(events[i].Window()) {
			return fmt.Errorf("%w: conflicts with %q (%s-%s)",
				utils.ErrOverlapConflict,
				events[i].Title,
				utils.FormatClock(events[i].StartMinute),
				utils.FormatClock(events[i].EndMinute))
		}
	}
	return nil
}
