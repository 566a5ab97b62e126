package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

func window(start, end int) db_models.TimeWindow {
	return db_models.TimeWindow{StartMinute: start, EndMinute: end}
}

func dayEvents() []db_models.Event {
	return []db_models.Event{
		{Title: "Breakfast", StartMinute: 540, EndMinute: 600},  // 09:00-10:00
		{Title: "Museum", StartMinute: 630, EndMinute: 660},     // 10:30-11:00
	}
}

func TestValidateEventWindowRejectsInvertedWindow(t *testing.T) {
	err := ValidateEventWindow(window(600, 600), dayEvents(), -1)
	assert.ErrorIs(t, err, utils.ErrInvalidWindow)

	err = ValidateEventWindow(window(700, 600), dayEvents(), -1)
	assert.ErrorIs(t, err, utils.ErrInvalidWindow)
}

func TestValidateEventWindowOverlap(t *testing.T) {
	// 09:30-09:45 sits inside breakfast.
	err := ValidateEventWindow(window(570, 585), dayEvents(), -1)
	assert.ErrorIs(t, err, utils.ErrOverlapConflict)

	// 10:00-10:30 fits exactly between the two.
	err = ValidateEventWindow(window(600, 630), dayEvents(), -1)
	assert.NoError(t, err)
}

func TestValidateEventWindowTouchingEdgesDoNotOverlap(t *testing.T) {
	events := []db_models.Event{{Title: "A", StartMinute: 600, EndMinute: 660}}

	require.NoError(t, ValidateEventWindow(window(540, 600), events, -1))
	require.NoError(t, ValidateEventWindow(window(660, 700), events, -1))
	assert.ErrorIs(t, ValidateEventWindow(window(540, 601), events, -1), utils.ErrOverlapConflict)
	assert.ErrorIs(t, ValidateEventWindow(window(659, 700), events, -1), utils.ErrOverlapConflict)
}

func TestValidateEventWindowExcludesEditedEvent(t *testing.T) {
	events := dayEvents()

	// Shifting breakfast by 15 minutes conflicts only with itself.
	err := ValidateEventWindow(window(555, 615), events, 0)
	assert.NoError(t, err)

	// But not when the exclusion points elsewhere.
	err = ValidateEventWindow(window(555, 615), events, 1)
	assert.ErrorIs(t, err, utils.ErrOverlapConflict)
}
