package domain

import "sort"

type EventColor string

const (
	ColorDefault EventColor = "default"
	ColorYellow  EventColor = "yellow"
	ColorGreen   EventColor = "green"
	ColorBlue    EventColor = "blue"
)

// IsQuotaReached treats the manual quota_reached type as authoritative
// regardless of the count.
func IsQuotaReached(e *Event, volunteerCount int) bool {
	if e.VolunteerEventType == VolunteerEventQuotaReached {
		return true
	}
	if e.VolunteerQuota != nil {
		return volunteerCount >= *e.VolunteerQuota
	}
	return false
}

// IsCapacityFull reports a full participant list. Capacity 0 means unlimited.
func IsCapacityFull(e *Event, participantCount int) bool {
	return e.Capacity > 0 && participantCount >= e.Capacity
}

// Admit evaluates a new signup against the event limits. Existing signups are
// the caller's concern: this only decides between Admitted, CapacityFull and
// QuotaFull.
func Admit(e *Event, role Role, participantCount, volunteerCount int) ToggleOutcome {
	switch role {
	case RoleParticipant:
		if IsCapacityFull(e, participantCount) {
			return OutcomeCapacityFull
		}
	case RoleVolunteer:
		if e.VolunteerEventType == VolunteerEventQuotaReached {
			return OutcomeQuotaFull
		}
		if e.VolunteerQuota != nil && *e.VolunteerQuota > 0 && volunteerCount >= *e.VolunteerQuota {
			return OutcomeQuotaFull
		}
	}
	return OutcomeAdmitted
}

// ColorFor returns the volunteer-facing colour of an event. Participants
// always get ColorDefault.
func ColorFor(e *Event, viewer Role, volunteerCount int) EventColor {
	if !viewer.Staff() {
		return ColorDefault
	}
	if IsQuotaReached(e, volunteerCount) {
		return ColorGreen
	}

	switch e.VolunteerEventType {
	case VolunteerEventExperienced:
		return ColorYellow
	case VolunteerEventVolunteerOnly:
		return ColorBlue
	default:
		return ColorDefault
	}
}

// VisibleTo hides volunteer-only events from participants.
func VisibleTo(e *Event, viewer Role) bool {
	if viewer == RoleParticipant {
		return e.VolunteerEventType != VolunteerEventVolunteerOnly
	}
	return true
}

// CountByRole splits signups into participant and volunteer counts. Admin
// signups count towards neither limit.
func CountByRole(signups []*Signup) (participants, volunteers int) {
	for _, s := range signups {
		switch s.Role {
		case RoleParticipant:
			participants++
		case RoleVolunteer:
			volunteers++
		}
	}
	return participants, volunteers
}

// SortByStart orders events by date, then start time. The sort is stable so
// events sharing a slot keep their listing order.
func SortByStart(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.StartTime < b.StartTime
	})
}
