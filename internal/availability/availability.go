// Package availability computes a person's live busy/free status from a
// schedule snapshot and wall-clock time. It is pure and side-effect free;
// callers re-evaluate on a coarse timer as time advances.
package availability

import (
	"fmt"
	"time"

	"teamflow-backend/internal/snapshot"
)

// Status is the derived availability of a person at an instant.
type Status string

const (
	StatusBusy      Status = "Busy"
	StatusInBetween Status = "In Between"
	StatusFree      Status = "Free"
)

// inBetweenWindowMinutes bounds the gap that qualifies as "In Between":
// strictly between 0 and 60 minutes until the next event today.
const inBetweenWindowMinutes = 60

// Result describes a person's availability. Entry is the active entry for
// Busy, the next upcoming entry for InBetween, and nil for Free.
// GapMinutes is meaningful only for InBetween.
type Result struct {
	Status     Status
	Entry      *snapshot.ScheduleEntry
	GapMinutes int
}

// MinutesOfDay converts HHMM-encoded time to minutes since midnight.
func MinutesOfDay(hhmm int) int {
	return (hhmm/100)*60 + hhmm%100
}

// NowHHMM encodes the wall-clock time of t in HHMM form.
func NowHHMM(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// Weekday maps t to the Monday-Friday schedule domain. Weekends resolve to
// Monday: defined fallback behavior, not an error.
func Weekday(t time.Time) snapshot.DayOfWeek {
	switch t.Weekday() {
	case time.Tuesday:
		return snapshot.Tuesday
	case time.Wednesday:
		return snapshot.Wednesday
	case time.Thursday:
		return snapshot.Thursday
	case time.Friday:
		return snapshot.Friday
	default:
		return snapshot.Monday
	}
}

// FormatHHMM renders an HHMM time as a 12-hour clock string, e.g. 1430
// becomes "2:30 PM".
func FormatHHMM(hhmm int) string {
	hours := hhmm / 100
	mins := hhmm % 100
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	h12 := hours % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mins, ampm)
}

// Evaluate derives the availability of the given person from the schedule at
// instant now. Comparisons happen in HHMM space with a half-open interval:
// an entry ending exactly now is no longer active. When no entry is active,
// the nearest future entry today (smallest start time) yields InBetween if
// it starts within the window; otherwise the person is Free.
func Evaluate(personID string, schedule []snapshot.ScheduleEntry, now time.Time) Result {
	day := Weekday(now)
	nowHHMM := NowHHMM(now)
	nowMinutes := MinutesOfDay(nowHHMM)

	var next *snapshot.ScheduleEntry
	for i := range schedule {
		e := &schedule[i]
		if e.PersonID != personID || e.DayOfWeek != day {
			continue
		}
		if nowHHMM >= e.StartTime && nowHHMM < e.EndTime {
			return Result{Status: StatusBusy, Entry: e}
		}
		if e.StartTime > nowHHMM && (next == nil || e.StartTime < next.StartTime) {
			next = e
		}
	}

	if next != nil {
		gap := MinutesOfDay(next.StartTime) - nowMinutes
		if gap > 0 && gap < inBetweenWindowMinutes {
			return Result{Status: StatusInBetween, Entry: next, GapMinutes: gap}
		}
	}

	return Result{Status: StatusFree}
}
