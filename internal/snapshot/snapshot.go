// Package snapshot defines the unit of synchronization: the complete
// serializable team state (people, weekly schedule, profile, timestamp).
// Reconciliation always compares and merges whole snapshots, never
// individual records.
package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek is a weekday in the Monday-Friday schedule domain.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
)

// Days lists the schedule weekdays in order.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday}

// IsValid reports whether d is one of the five schedule weekdays.
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// Person represents a tracked team member.
type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// ScheduleEntry is a recurring weekly event owned by exactly one person.
// StartTime and EndTime are integers in 24-hour HHMM form (1430 = 14:30).
// StartTime >= EndTime is tolerated, not rejected; such entries simply
// never satisfy the half-open busy interval.
type ScheduleEntry struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"userId"`
	EventName string    `json:"eventName"`
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	StartTime int       `json:"startTime"`
	EndTime   int       `json:"endTime"`
}

// Profile holds the owning account's display identity. It travels with the
// snapshot but carries no sync semantics of its own.
type Profile struct {
	Name  string `json:"profileName,omitempty"`
	Role  string `json:"profileRole,omitempty"`
	Photo string `json:"profilePhoto,omitempty"`
}

// Snapshot is the atomic unit of sync. LastUpdated is Unix milliseconds,
// stamped by whichever writer last mutated the state; it is
// monotonically-intended, not guaranteed.
// Profile fields are embedded so the wire form stays flat
// (profileName, profileRole, profilePhoto alongside users and schedule).
type Snapshot struct {
	Persons     []Person        `json:"users"`
	Schedule    []ScheduleEntry `json:"schedule"`
	Profile
	LastUpdated int64 `json:"lastUpdated"`
}

// New returns an empty snapshot with a zero timestamp.
func New() Snapshot {
	return Snapshot{Persons: []Person{}, Schedule: []ScheduleEntry{}}
}

// NewID returns a fresh identifier for persons and schedule entries.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy. The engine hands copies to callers so the
// in-memory working copy has a single writer.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Persons = make([]Person, len(s.Persons))
	copy(out.Persons, s.Persons)
	out.Schedule = make([]ScheduleEntry, len(s.Schedule))
	copy(out.Schedule, s.Schedule)
	return out
}

// Touch stamps LastUpdated with the given instant.
func (s *Snapshot) Touch(now time.Time) {
	s.LastUpdated = now.UnixMilli()
}

// AddPerson appends a person, preserving display order.
func (s *Snapshot) AddPerson(p Person) {
	s.Persons = append(s.Persons, p)
}

// UpdatePerson replaces the person with matching ID. Returns false when the
// person is unknown.
func (s *Snapshot) UpdatePerson(p Person) bool {
	for i := range s.Persons {
		if s.Persons[i].ID == p.ID {
			s.Persons[i] = p
			return true
		}
	}
	return false
}

// DeletePerson removes the person and cascades to every schedule entry
// owned by that person, and no others.
func (s *Snapshot) DeletePerson(id string) bool {
	found := false
	persons := s.Persons[:0]
	for _, p := range s.Persons {
		if p.ID == id {
			found = true
			continue
		}
		persons = append(persons, p)
	}
	s.Persons = persons
	if !found {
		return false
	}

	schedule := s.Schedule[:0]
	for _, e := range s.Schedule {
		if e.PersonID == id {
			continue
		}
		schedule = append(schedule, e)
	}
	s.Schedule = schedule
	return true
}

// MovePerson swaps the person one position up (delta -1) or down (delta +1)
// in display order. Out-of-range moves are no-ops.
func (s *Snapshot) MovePerson(id string, delta int) bool {
	idx := -1
	for i, p := range s.Persons {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	target := idx + delta
	if target < 0 || target >= len(s.Persons) {
		return false
	}
	s.Persons[idx], s.Persons[target] = s.Persons[target], s.Persons[idx]
	return true
}

// PersonByID looks up a person by ID.
func (s *Snapshot) PersonByID(id string) (Person, bool) {
	for _, p := range s.Persons {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// AddEntry appends a schedule entry.
func (s *Snapshot) AddEntry(e ScheduleEntry) {
	s.Schedule = append(s.Schedule, e)
}

// AddEntries appends a batch of entries. Bulk import and assistant-proposed
// batches land through this path.
func (s *Snapshot) AddEntries(entries []ScheduleEntry) {
	s.Schedule = append(s.Schedule, entries...)
}

// UpdateEntry replaces the entry with matching ID. Returns false when the
// entry is unknown.
func (s *Snapshot) UpdateEntry(e ScheduleEntry) bool {
	for i := range s.Schedule {
		if s.Schedule[i].ID == e.ID {
			s.Schedule[i] = e
			return true
		}
	}
	return false
}

// DeleteEntry removes the entry with matching ID.
func (s *Snapshot) DeleteEntry(id string) bool {
	for i := range s.Schedule {
		if s.Schedule[i].ID == id {
			s.Schedule = append(s.Schedule[:i], s.Schedule[i+1:]...)
			return true
		}
	}
	return false
}

// EntriesFor returns the entries owned by the given person.
func (s *Snapshot) EntriesFor(personID string) []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range s.Schedule {
		if e.PersonID == personID {
			out = append(out, e)
		}
	}
	return out
}

// SetProfile replaces the profile.
func (s *Snapshot) SetProfile(p Profile) {
	s.Profile = p
}
