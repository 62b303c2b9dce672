package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func quota(n int) *int { return &n }

func TestIsQuotaReached(t *testing.T) {
	e := &Event{VolunteerQuota: quota(8)}

	assert.True(t, IsQuotaReached(e, 8))
	assert.False(t, IsQuotaReached(e, 7))
}

func TestIsQuotaReached_ManualOverride(t *testing.T) {
	e := &Event{VolunteerQuota: quota(8), VolunteerEventType: VolunteerEventQuotaReached}

	assert.True(t, IsQuotaReached(e, 0))
}

func TestIsQuotaReached_NoQuota(t *testing.T) {
	assert.False(t, IsQuotaReached(&Event{}, 100))
}

func TestIsCapacityFull(t *testing.T) {
	assert.True(t, IsCapacityFull(&Event{Capacity: 1}, 1))
	assert.False(t, IsCapacityFull(&Event{Capacity: 2}, 1))
	assert.False(t, IsCapacityFull(&Event{Capacity: 0}, 1000), "zero capacity is unlimited")
}

func TestAdmit(t *testing.T) {
	tests := []struct {
		name         string
		event        Event
		role         Role
		participants int
		volunteers   int
		want         ToggleOutcome
	}{
		{"participant with room", Event{Capacity: 2}, RoleParticipant, 1, 0, OutcomeAdmitted},
		{"participant at capacity", Event{Capacity: 1}, RoleParticipant, 1, 0, OutcomeCapacityFull},
		{"participant unlimited", Event{}, RoleParticipant, 500, 0, OutcomeAdmitted},
		{"volunteer ignores capacity", Event{Capacity: 1}, RoleVolunteer, 1, 0, OutcomeAdmitted},
		{"volunteer under quota", Event{VolunteerQuota: quota(3)}, RoleVolunteer, 0, 2, OutcomeAdmitted},
		{"volunteer at quota", Event{VolunteerQuota: quota(3)}, RoleVolunteer, 0, 3, OutcomeQuotaFull},
		{"volunteer quota reached type", Event{VolunteerQuota: quota(8), VolunteerEventType: VolunteerEventQuotaReached}, RoleVolunteer, 0, 0, OutcomeQuotaFull},
		{"volunteer zero quota admits", Event{VolunteerQuota: quota(0)}, RoleVolunteer, 0, 4, OutcomeAdmitted},
		{"volunteer untracked", Event{}, RoleVolunteer, 0, 40, OutcomeAdmitted},
		{"admin always admitted", Event{Capacity: 1, VolunteerEventType: VolunteerEventQuotaReached}, RoleAdmin, 1, 1, OutcomeAdmitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Admit(&tt.event, tt.role, tt.participants, tt.volunteers))
		})
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name       string
		event      Event
		viewer     Role
		volunteers int
		want       EventColor
	}{
		{"participant never coloured", Event{VolunteerEventType: VolunteerEventExperienced}, RoleParticipant, 0, ColorDefault},
		{"quota reached type", Event{VolunteerEventType: VolunteerEventQuotaReached}, RoleVolunteer, 0, ColorGreen},
		{"quota numerically reached", Event{VolunteerQuota: quota(2), VolunteerEventType: VolunteerEventExperienced}, RoleAdmin, 2, ColorGreen},
		{"experienced", Event{VolunteerQuota: quota(5), VolunteerEventType: VolunteerEventExperienced}, RoleVolunteer, 1, ColorYellow},
		{"volunteer only", Event{VolunteerEventType: VolunteerEventVolunteerOnly}, RoleAdmin, 0, ColorBlue},
		{"plain event", Event{}, RoleVolunteer, 0, ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(&tt.event, tt.viewer, tt.volunteers))
		})
	}
}

func TestVisibleTo(t *testing.T) {
	hidden := &Event{VolunteerEventType: VolunteerEventVolunteerOnly}

	assert.False(t, VisibleTo(hidden, RoleParticipant))
	assert.True(t, VisibleTo(hidden, RoleVolunteer))
	assert.True(t, VisibleTo(hidden, RoleAdmin))
	assert.True(t, VisibleTo(&Event{}, RoleParticipant))
}

func TestCountByRole(t *testing.T) {
	signups := []*Signup{
		{Role: RoleParticipant},
		{Role: RoleVolunteer},
		{Role: RoleParticipant},
		{Role: RoleAdmin},
	}

	p, v := CountByRole(signups)

	assert.Equal(t, 2, p)
	assert.Equal(t, 1, v)
}

func TestSortByStart(t *testing.T) {
	events := []*Event{
		{ID: "c", Date: "2026-10-05", StartTime: "13:00"},
		{ID: "a", Date: "2026-10-03", StartTime: "08:30"},
		{ID: "b", Date: "2026-10-05", StartTime: "09:00"},
	}

	SortByStart(events)

	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestEvent_StartsAt(t *testing.T) {
	e := &Event{Date: "2026-10-05", StartTime: "13:00"}

	at, err := e.StartsAt()

	assert.NoError(t, err)
	assert.Equal(t, 13, at.Hour())

	_, err = (&Event{Date: "bad", StartTime: "13:00"}).StartsAt()
	assert.Error(t, err)
}

func TestToggleOutcome_Rejected(t *testing.T) {
	assert.False(t, OutcomeAdmitted.Rejected())
	assert.False(t, OutcomeWithdrawn.Rejected())
	assert.True(t, OutcomeCapacityFull.Rejected())
	assert.True(t, OutcomeQuotaFull.Rejected())
	assert.True(t, OutcomeAlreadyRegistered.Rejected())
}
