package domain

import "time"

type ActivityKind string

const (
	ActivitySignupAdmitted  ActivityKind = "signup_admitted"
	ActivitySignupWithdrawn ActivityKind = "signup_withdrawn"
	ActivityRosterChanged   ActivityKind = "roster_changed"
	ActivitySnapshot        ActivityKind = "snapshot"
)

// Activity is published whenever an event's signups or roster change.
type Activity struct {
	EventID          string       `json:"event_id"`
	Kind             ActivityKind `json:"kind"`
	ParticipantCount int          `json:"participant_count"`
	VolunteerCount   int          `json:"volunteer_count"`
	Volunteers       []string     `json:"volunteers"`
	At               time.Time    `json:"at"`
}

// RosterDrift describes an event whose name roster disagrees with its
// volunteer signups.
type RosterDrift struct {
	EventID        string
	RosterSize     int
	VolunteerCount int
}
