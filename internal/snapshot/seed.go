package snapshot

import "time"

// Seed returns the demo team used to initialize a brand-new scope when the
// remote store has no data yet. A fresh account starts populated instead of
// staring at an empty dashboard.
func Seed(now time.Time) Snapshot {
	s := Snapshot{
		Persons: []Person{
			{ID: "1", Name: "Sarah Chen", Role: "Lead Developer", Email: "sarah.c@company.com", Photo: "https://picsum.photos/seed/sarah/200"},
			{ID: "2", Name: "James Wilson", Role: "UI/UX Designer", Email: "james.w@company.com", Photo: "https://picsum.photos/seed/james/200"},
			{ID: "3", Name: "Elena Rodriguez", Role: "Product Manager", Email: "elena.r@company.com", Photo: "https://picsum.photos/seed/elena/200"},
			{ID: "4", Name: "David Kim", Role: "Backend Engineer", Email: "david.k@company.com", Photo: "https://picsum.photos/seed/david/200"},
			{ID: "5", Name: "Amara Okoro", Role: "Marketing Lead", Email: "amara.o@company.com", Photo: "https://picsum.photos/seed/amara/200"},
		},
		Schedule: []ScheduleEntry{
			{ID: "s1", PersonID: "1", EventName: "Team Sync", DayOfWeek: Monday, StartTime: 900, EndTime: 1000},
			{ID: "s2", PersonID: "1", EventName: "Code Review", DayOfWeek: Monday, StartTime: 1400, EndTime: 1530},
			{ID: "s3", PersonID: "1", EventName: "Sprint Planning", DayOfWeek: Wednesday, StartTime: 1000, EndTime: 1200},
			{ID: "j1", PersonID: "2", EventName: "Design Critique", DayOfWeek: Tuesday, StartTime: 1100, EndTime: 1200},
			{ID: "j2", PersonID: "2", EventName: "Portfolio Review", DayOfWeek: Thursday, StartTime: 1500, EndTime: 1600},
			{ID: "e1", PersonID: "3", EventName: "Stakeholder Meeting", DayOfWeek: Monday, StartTime: 1000, EndTime: 1100},
			{ID: "e2", PersonID: "3", EventName: "Product Roadmap", DayOfWeek: Wednesday, StartTime: 1300, EndTime: 1430},
			{ID: "e3", PersonID: "3", EventName: "User Interviews", DayOfWeek: Friday, StartTime: 900, EndTime: 1200},
			{ID: "r1", PersonID: "4", EventName: "Database Migration", DayOfWeek: Tuesday, StartTime: 1400, EndTime: 1600},
			{ID: "r2", PersonID: "5", EventName: "Ad Campaign Prep", DayOfWeek: Thursday, StartTime: 1000, EndTime: 1100},
		},
	}
	s.Touch(now)
	return s
}
