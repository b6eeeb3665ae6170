package availability

import (
	"testing"
	"time"

	"teamflow-backend/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday returns a time on Monday 2026-08-24 at the given clock
func monday(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
}

func standupSchedule() []snapshot.ScheduleEntry {
	return []snapshot.ScheduleEntry{
		{ID: "s1", PersonID: "1", EventName: "Standup", DayOfWeek: snapshot.Monday, StartTime: 900, EndTime: 1000},
	}
}

func TestEvaluateBusyWithinInterval(t *testing.T) {
	result := Evaluate("1", standupSchedule(), monday(9, 30))

	assert.Equal(t, StatusBusy, result.Status)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "Standup", result.Entry.EventName)
}

func TestEvaluateBusyAtStart(t *testing.T) {
	// Half-open interval: the start instant is busy
	result := Evaluate("1", standupSchedule(), monday(9, 0))
	assert.Equal(t, StatusBusy, result.Status)
}

func TestEvaluateFreeAtEnd(t *testing.T) {
	// Half-open interval: the end instant is no longer busy
	result := Evaluate("1", standupSchedule(), monday(10, 0))
	assert.NotEqual(t, StatusBusy, result.Status)
}

func TestEvaluateInBetweenBeforeEvent(t *testing.T) {
	// 40 minutes before the event is within the 60-minute window
	result := Evaluate("1", standupSchedule(), monday(8, 20))

	assert.Equal(t, StatusInBetween, result.Status)
	assert.Equal(t, 40, result.GapMinutes)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "Standup", result.Entry.EventName)
}

func TestEvaluateFreeWhenGapTooLarge(t *testing.T) {
	// 70 minutes before the event is outside the window
	result := Evaluate("1", standupSchedule(), monday(7, 50))

	assert.Equal(t, StatusFree, result.Status)
	assert.Nil(t, result.Entry)
}

func TestEvaluateFreeExactlyOneHourBefore(t *testing.T) {
	// The window is exclusive at 60 minutes
	result := Evaluate("1", standupSchedule(), monday(8, 0))
	assert.Equal(t, StatusFree, result.Status)
}

func TestEvaluateNextIsEarliestUpcoming(t *testing.T) {
	schedule := []snapshot.ScheduleEntry{
		{ID: "a", PersonID: "1", EventName: "Later", DayOfWeek: snapshot.Monday, StartTime: 1500, EndTime: 1600},
		{ID: "b", PersonID: "1", EventName: "Sooner", DayOfWeek: snapshot.Monday, StartTime: 1430, EndTime: 1500},
	}

	result := Evaluate("1", schedule, monday(14, 0))

	assert.Equal(t, StatusInBetween, result.Status)
	assert.Equal(t, 30, result.GapMinutes)
	assert.Equal(t, "Sooner", result.Entry.EventName)
}

func TestEvaluateIgnoresOtherPeopleAndDays(t *testing.T) {
	schedule := []snapshot.ScheduleEntry{
		{ID: "a", PersonID: "2", EventName: "Not mine", DayOfWeek: snapshot.Monday, StartTime: 900, EndTime: 1700},
		{ID: "b", PersonID: "1", EventName: "Tomorrow", DayOfWeek: snapshot.Tuesday, StartTime: 900, EndTime: 1700},
	}

	result := Evaluate("1", schedule, monday(10, 0))
	assert.Equal(t, StatusFree, result.Status)
}

func TestEvaluateInvertedIntervalNeverBusy(t *testing.T) {
	schedule := []snapshot.ScheduleEntry{
		{ID: "a", PersonID: "1", EventName: "Backwards", DayOfWeek: snapshot.Monday, StartTime: 1500, EndTime: 900},
	}

	for _, clock := range [][2]int{{8, 0}, {12, 0}, {16, 0}} {
		result := Evaluate("1", schedule, monday(clock[0], clock[1]))
		assert.NotEqual(t, StatusBusy, result.Status, "at %02d:%02d", clock[0], clock[1])
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	snap := snapshot.Seed(monday(9, 30))
	first := Evaluate("1", snap.Schedule, monday(9, 30))
	second := Evaluate("1", snap.Schedule, monday(9, 30))
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.GapMinutes, second.GapMinutes)
}

func TestWeekdayWeekendFallsBackToMonday(t *testing.T) {
	saturday := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, snapshot.Monday, Weekday(saturday))
	assert.Equal(t, snapshot.Monday, Weekday(sunday))
	assert.Equal(t, snapshot.Wednesday, Weekday(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)))
}

func TestWeekendUsesMondaySchedule(t *testing.T) {
	// On Saturday the Monday standup is what renders
	saturday := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	result := Evaluate("1", standupSchedule(), saturday)
	assert.Equal(t, StatusBusy, result.Status)
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay(0))
	assert.Equal(t, 570, MinutesOfDay(930))
	assert.Equal(t, 870, MinutesOfDay(1430))
	assert.Equal(t, 1439, MinutesOfDay(2359))
}

func TestFormatHHMM(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatHHMM(900))
	assert.Equal(t, "2:30 PM", FormatHHMM(1430))
	assert.Equal(t, "12:00 PM", FormatHHMM(1200))
	assert.Equal(t, "12:05 AM", FormatHHMM(5))
	assert.Equal(t, "11:59 PM", FormatHHMM(2359))
}
