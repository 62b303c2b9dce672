package repository

import (
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

const SeedUserID = "user-001"

// Seed is the demo data set the memory backend starts with.
type Seed struct {
	Users   []*domain.User
	Events  []*domain.Event
	Signups []*domain.Signup
}

// DemoSeed builds the demo data with events placed in the month of now.
func DemoSeed(now time.Time) Seed {
	now = now.UTC()
	day := func(d int) string {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
	}

	return Seed{
		Users: []*domain.User{
			{ID: SeedUserID, Name: "Taylor Nguyen", Role: domain.RoleParticipant, CreatedAt: now},
		},
		Events: []*domain.Event{
			{
				ID:          "evt-1001",
				Title:       "River Clean-Up Sprint",
				Description: "Join a morning sweep along the river. We provide gloves, bags, and snacks.",
				Date:        day(3),
				StartTime:   "08:30",
				EndTime:     "11:00",
				Location:    "Harbor Greenway",
				Capacity:    40,
				Questions: []string{
					"Do you have any accessibility needs we should plan for?",
					"Do you need us to provide gloves or other gear?",
				},
				CreatedBy: "staff-1",
				CreatedAt: now,
			},
			{
				ID:          "evt-1002",
				Title:       "Food Pantry Packathon",
				Description: "Help pack and label meal kits for families. Stations rotate every 20 minutes.",
				Date:        day(5),
				StartTime:   "13:00",
				EndTime:     "16:00",
				Location:    "Northside Community Hub",
				Capacity:    60,
				Questions: []string{
					"Do you have prior pantry or warehouse experience?",
					"Can you lift boxes up to 25 lbs?",
				},
				CreatedBy: "staff-2",
				CreatedAt: now,
			},
			{
				ID:          "evt-1003",
				Title:       "Youth Tech Mentoring",
				Description: "Support students with hardware builds and project demos in an open lab.",
				Date:        day(8),
				StartTime:   "17:30",
				EndTime:     "19:30",
				Location:    "Hope Learning Lab",
				Capacity:    25,
				Questions:   []string{},
				CreatedBy:   "staff-3",
				CreatedAt:   now,
			},
			{
				ID:          "evt-1004",
				Title:       "Neighborhood Story Night",
				Description: "Collect oral histories from longtime residents. Training included onsite.",
				Date:        day(12),
				StartTime:   "18:00",
				EndTime:     "20:00",
				Location:    "Edison Arts Center",
				Capacity:    30,
				Questions:   []string{},
				CreatedBy:   "staff-4",
				CreatedAt:   now,
			},
			{
				ID:          "evt-1005",
				Title:       "Shelter Garden Build",
				Description: "Assemble planter boxes and lay soil beds for the winter harvest.",
				Date:        day(18),
				StartTime:   "09:00",
				EndTime:     "12:30",
				Location:    "Westgate Shelter Courtyard",
				Capacity:    35,
				Questions:   []string{},
				CreatedBy:   "staff-5",
				CreatedAt:   now,
			},
		},
		Signups: []*domain.Signup{
			{ID: "signup-2001", EventID: "evt-1002", UserID: SeedUserID, Role: domain.RoleParticipant, CreatedAt: now},
		},
	}
}
