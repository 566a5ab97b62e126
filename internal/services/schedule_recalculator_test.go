package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

func plainEvent(title string, start, end int) db_models.Event {
	return db_models.Event{Title: title, StartMinute: start, EndMinute: end}
}

func TestRecalculateKeepsAuthoredStartsWhenFeasible(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 540, 600),  // 09:00-10:00
		plainEvent("B", 630, 660),  // 10:30-11:00
		plainEvent("C", 720, 780),  // 12:00-13:00
	}

	out, err := RecalculateSchedule(events, []int{10, 20})
	require.NoError(t, err)

	// A ends 10:00, 10 min travel arrives 10:10, B authored at 10:30: 20 min slack.
	assert.Equal(t, 540, out[0].StartMinute)
	assert.Equal(t, 600, out[0].EndMinute)
	require.NotNil(t, out[0].BufferAfter)
	assert.Equal(t, 20, *out[0].BufferAfter)

	assert.Equal(t, 630, out[1].StartMinute)
	assert.Equal(t, 660, out[1].EndMinute)
	// B ends 11:00, 20 min travel arrives 11:20, C authored at 12:00: 40 min slack.
	assert.Equal(t, 40, *out[1].BufferAfter)

	assert.Equal(t, 720, out[2].StartMinute)
	assert.Equal(t, 780, out[2].EndMinute)
	assert.Equal(t, 0, *out[2].BufferAfter)
}

func TestRecalculatePushesLateArrivals(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 540, 600), // 09:00-10:00
		plainEvent("B", 605, 665), // authored 10:05, unreachable with 30 min travel
		plainEvent("C", 700, 760),
	}

	out, err := RecalculateSchedule(events, []int{30, 10})
	require.NoError(t, err)

	// B slides to the arrival time and keeps its 60 minute duration.
	assert.Equal(t, 630, out[1].StartMinute)
	assert.Equal(t, 690, out[1].EndMinute)
	assert.Equal(t, 0, *out[0].BufferAfter)

	// C authored at 11:40; arrival 11:40 exactly, no slack.
	assert.Equal(t, 700, out[2].StartMinute)
	assert.Equal(t, 760, out[2].EndMinute)
	assert.Equal(t, 0, *out[1].BufferAfter)
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 540, 600),
		plainEvent("B", 605, 665),
	}

	_, err := RecalculateSchedule(events, []int{30})
	require.NoError(t, err)

	assert.Equal(t, 605, events[1].StartMinute)
	assert.Nil(t, events[1].BufferBefore)
	assert.Nil(t, events[1].BufferAfter)
}

func TestRecalculateDayOverflow(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 1320, 1380), // 22:00-23:00
		plainEvent("B", 1385, 1430),
	}

	// 90 minutes of travel pushes B past midnight.
	_, err := RecalculateSchedule(events, []int{90})
	assert.ErrorIs(t, err, utils.ErrDayOverflow)
}

func TestRecalculateStaysWithinDay(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 0, 300),
		plainEvent("B", 310, 700),
		plainEvent("C", 710, 1100),
	}

	out, err := RecalculateSchedule(events, []int{10, 10})
	require.NoError(t, err)

	total := 0
	for i := range out {
		total += out[i].EndMinute - out[i].StartMinute
		total += *out[i].BufferAfter
	}
	total += 10 + 10
	assert.LessOrEqual(t, total, utils.MinutesPerDay)
}

func TestRecalculateLegCountMismatch(t *testing.T) {
	events := []db_models.Event{
		plainEvent("A", 540, 600),
		plainEvent("B", 630, 660),
	}

	_, err := RecalculateSchedule(events, []int{10, 20})
	assert.Error(t, err)
}
