package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePersonCascadesOnlyTheirEntries(t *testing.T) {
	snap := Seed(time.Now())

	ok := snap.DeletePerson("1")
	require.True(t, ok)

	assert.Len(t, snap.Persons, 4)
	_, found := snap.PersonByID("1")
	assert.False(t, found)

	// Sarah owned s1, s2, s3; everyone else's entries survive
	assert.Empty(t, snap.EntriesFor("1"))
	assert.Len(t, snap.Schedule, 7)
	assert.Len(t, snap.EntriesFor("2"), 2)
	assert.Len(t, snap.EntriesFor("3"), 3)
}

func TestDeletePersonUnknownID(t *testing.T) {
	snap := Seed(time.Now())
	before := len(snap.Schedule)

	assert.False(t, snap.DeletePerson("nope"))
	assert.Len(t, snap.Persons, 5)
	assert.Len(t, snap.Schedule, before)
}

func TestUpdatePerson(t *testing.T) {
	snap := Seed(time.Now())

	updated := Person{ID: "2", Name: "James W.", Role: "Design Lead"}
	assert.True(t, snap.UpdatePerson(updated))

	got, ok := snap.PersonByID("2")
	require.True(t, ok)
	assert.Equal(t, "James W.", got.Name)
	assert.Equal(t, "Design Lead", got.Role)

	assert.False(t, snap.UpdatePerson(Person{ID: "nope"}))
}

func TestMovePerson(t *testing.T) {
	snap := Seed(time.Now())

	// Move the second person up
	assert.True(t, snap.MovePerson("2", -1))
	assert.Equal(t, "2", snap.Persons[0].ID)
	assert.Equal(t, "1", snap.Persons[1].ID)

	// First person cannot move further up, last cannot move down
	assert.False(t, snap.MovePerson("2", -1))
	assert.False(t, snap.MovePerson("5", 1))
	assert.False(t, snap.MovePerson("nope", 1))
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	snap := Seed(time.Now())

	entry := ScheduleEntry{ID: "s1", PersonID: "1", EventName: "Renamed", DayOfWeek: Friday, StartTime: 800, EndTime: 900}
	assert.True(t, snap.UpdateEntry(entry))
	assert.Equal(t, "Renamed", snap.Schedule[0].EventName)

	assert.True(t, snap.DeleteEntry("s1"))
	assert.False(t, snap.DeleteEntry("s1"))
	assert.Len(t, snap.Schedule, 9)
}

func TestAddEntries(t *testing.T) {
	snap := New()
	snap.AddEntries([]ScheduleEntry{
		{ID: "a", PersonID: "1", EventName: "One", DayOfWeek: Monday, StartTime: 900, EndTime: 1000},
		{ID: "b", PersonID: "1", EventName: "Two", DayOfWeek: Tuesday, StartTime: 900, EndTime: 1000},
	})
	assert.Len(t, snap.Schedule, 2)
}

func TestCloneIsDeep(t *testing.T) {
	snap := Seed(time.Now())
	clone := snap.Clone()

	clone.Persons[0].Name = "Mutated"
	clone.Schedule[0].EventName = "Mutated"
	clone.AddPerson(Person{ID: "x"})

	assert.Equal(t, "Sarah Chen", snap.Persons[0].Name)
	assert.Equal(t, "Team Sync", snap.Schedule[0].EventName)
	assert.Len(t, snap.Persons, 5)
}

func TestHashStableAndTimestampIndependent(t *testing.T) {
	now := time.Now()
	a := Seed(now)
	b := Seed(now.Add(48 * time.Hour))

	// Same content, different timestamps: same hash
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), a.Hash())
}

func TestHashChangesWithContent(t *testing.T) {
	snap := Seed(time.Now())
	before := snap.Hash()

	snap.AddPerson(Person{ID: "6", Name: "New Hire"})
	afterPerson := snap.Hash()
	assert.NotEqual(t, before, afterPerson)

	snap.SetProfile(Profile{Name: "Team Atlas"})
	assert.NotEqual(t, afterPerson, snap.Hash())
}

func TestTouchStampsUnixMilliseconds(t *testing.T) {
	snap := New()
	at := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
	snap.Touch(at)
	assert.Equal(t, at.UnixMilli(), snap.LastUpdated)
}

func TestWireFormatIsFlat(t *testing.T) {
	snap := New()
	snap.AddPerson(Person{ID: "1", Name: "Sarah"})
	snap.AddEntry(ScheduleEntry{ID: "s1", PersonID: "1", EventName: "Sync", DayOfWeek: Monday, StartTime: 900, EndTime: 1000})
	snap.SetProfile(Profile{Name: "Atlas", Role: "Engineering"})
	snap.Touch(time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))

	// Profile fields sit alongside users/schedule, not nested
	assert.Contains(t, wire, "users")
	assert.Contains(t, wire, "schedule")
	assert.Contains(t, wire, "profileName")
	assert.Contains(t, wire, "profileRole")
	assert.Contains(t, wire, "lastUpdated")
	assert.NotContains(t, wire, "profile")

	// Entry ownership serializes as userId
	assert.Contains(t, string(wire["schedule"]), `"userId":"1"`)

	var back Snapshot
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, snap.Hash(), back.Hash())
	assert.Equal(t, snap.LastUpdated, back.LastUpdated)
}

func TestDayOfWeekIsValid(t *testing.T) {
	for _, d := range Days {
		assert.True(t, d.IsValid())
	}
	assert.False(t, DayOfWeek("Saturday").IsValid())
	assert.False(t, DayOfWeek("").IsValid())
}
