package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type VolunteerEventType string

const (
	VolunteerEventExperienced   VolunteerEventType = "experienced"
	VolunteerEventQuotaReached  VolunteerEventType = "quota_reached"
	VolunteerEventVolunteerOnly VolunteerEventType = "volunteer_only"
)

func (t VolunteerEventType) Valid() bool {
	switch t {
	case VolunteerEventExperienced, VolunteerEventQuotaReached, VolunteerEventVolunteerOnly:
		return true
	}
	return false
}

type Event struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Date               string             `json:"date"`
	StartTime          string             `json:"start_time"`
	EndTime            string             `json:"end_time"`
	Location           string             `json:"location"`
	ImageURL           string             `json:"image_url,omitempty"`
	Capacity           int                `json:"capacity"`
	VolunteerQuota     *int               `json:"volunteer_quota,omitempty"`
	VolunteerEventType VolunteerEventType `json:"volunteer_event_type,omitempty"`
	Questions          []string           `json:"questions"`
	CreatedBy          string             `json:"created_by"`
	CreatedAt          time.Time          `json:"created_at"`
}

// StartsAt combines Date and StartTime in UTC.
func (e *Event) StartsAt() (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+ClockLayout, e.Date+" "+e.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event start: %w", err)
	}
	return t, nil
}

// TracksVolunteers is false when the event has no volunteer quota at all.
func (e *Event) TracksVolunteers() bool {
	return e.VolunteerQuota != nil
}

type EventDetails struct {
	Event            Event      `json:"event"`
	ParticipantCount int        `json:"participant_count"`
	VolunteerCount   int        `json:"volunteer_count"`
	CapacityFull     bool       `json:"capacity_full"`
	QuotaReached     bool       `json:"quota_reached"`
	Color            EventColor `json:"color"`
	Volunteers       []string   `json:"volunteers"`
	Signups          []Signup   `json:"signups"`
}

type CreateEventInput struct {
	Title              string `validate:"required"`
	Description        string `validate:"required"`
	Date               string `validate:"required"`
	StartTime          string `validate:"required"`
	EndTime            string `validate:"required"`
	Location           string `validate:"required"`
	ImageURL           string `validate:"omitempty,url"`
	Capacity           int    `validate:"gte=0"`
	VolunteerQuota     *int   `validate:"omitempty,gte=0"`
	VolunteerEventType VolunteerEventType
	Questions          []string
}
