package dto

import (
	"time"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

type EventResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Date               string   `json:"date"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	Location           string   `json:"location"`
	ImageURL           string   `json:"image_url,omitempty"`
	Capacity           int      `json:"capacity"`
	VolunteerQuota     *int     `json:"volunteer_quota,omitempty"`
	VolunteerEventType string   `json:"volunteer_event_type,omitempty"`
	Questions          []string `json:"questions"`
	CreatedBy          string   `json:"created_by"`
	CreatedAt          string   `json:"created_at"`
}

type EventDetailsResponse struct {
	Event            EventResponse    `json:"event"`
	ParticipantCount int              `json:"participant_count"`
	VolunteerCount   int              `json:"volunteer_count"`
	CapacityFull     bool             `json:"capacity_full"`
	QuotaReached     bool             `json:"quota_reached"`
	Color            string           `json:"color"`
	Volunteers       []string         `json:"volunteers"`
	Signups          []SignupResponse `json:"signups"`
}

type SignupResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ToggleResponse struct {
	Outcome string           `json:"outcome"`
	Signups []SignupResponse `json:"signups"`
	Error   string           `json:"error,omitempty"`
}

type RosterResponse struct {
	EventID    string   `json:"event_id"`
	Volunteers []string `json:"volunteers"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	questions := e.Questions
	if questions == nil {
		questions = []string{}
	}

	return EventResponse{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Date:               e.Date,
		StartTime:          e.StartTime,
		EndTime:            e.EndTime,
		Location:           e.Location,
		ImageURL:           e.ImageURL,
		Capacity:           e.Capacity,
		VolunteerQuota:     e.VolunteerQuota,
		VolunteerEventType: string(e.VolunteerEventType),
		Questions:          questions,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	signups := make([]SignupResponse, 0, len(d.Signups))
	for _, s := range d.Signups {
		signups = append(signups, ToSignupResponse(&s))
	}

	volunteers := d.Volunteers
	if volunteers == nil {
		volunteers = []string{}
	}

	return EventDetailsResponse{
		Event:            ToEventResponse(&d.Event),
		ParticipantCount: d.ParticipantCount,
		VolunteerCount:   d.VolunteerCount,
		CapacityFull:     d.CapacityFull,
		QuotaReached:     d.QuotaReached,
		Color:            string(d.Color),
		Volunteers:       volunteers,
		Signups:          signups,
	}
}

func ToSignupResponse(s *domain.Signup) SignupResponse {
	return SignupResponse{
		ID:        s.ID,
		EventID:   s.EventID,
		UserID:    s.UserID,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSignupsResponse(signups []*domain.Signup) []SignupResponse {
	resp := make([]SignupResponse, 0, len(signups))
	for _, s := range signups {
		resp = append(resp, ToSignupResponse(s))
	}
	return resp
}

func ToToggleResponse(r *domain.ToggleResult) ToggleResponse {
	resp := ToggleResponse{
		Outcome: string(r.Outcome),
		Signups: ToSignupsResponse(r.Signups),
	}
	if err := domain.OutcomeError(r.Outcome); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
